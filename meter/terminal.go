package meter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cuthbertLab/meterspan/fraction"
)

// validDenominators are the note values a meter may be counted in.
var validDenominators = map[int]bool{
	1: true, 2: true, 4: true, 8: true, 16: true, 32: true, 64: true,
}

// Element is one slot of a partition tree: either a *Terminal leaf or
// a nested *Sequence.
type Element interface {
	Numerator() int
	Denominator() int

	// Duration is the element's quarter-length as an exact rational.
	Duration() fraction.Fraction

	// QuarterLength is Duration as a float, for position arithmetic at
	// the presentation boundary.
	QuarterLength() float64

	String() string

	copyElement() Element
}

// Terminal is a leaf meter unit: a single numerator/denominator
// fraction with no children. Subdividing a terminal produces a new
// Sequence; the terminal itself never changes shape.
type Terminal struct {
	numerator   int
	denominator int

	// overridden, when set, replaces the derived duration. Used by
	// callers that stretch or compress a unit (e.g. tuplet contexts).
	overridden *fraction.Fraction
}

func NewTerminal(numerator, denominator int) (*Terminal, error) {
	if numerator <= 0 {
		return nil, fmt.Errorf("meter: %w: %d", ErrInvalidNumerator, numerator)
	}
	if !validDenominators[denominator] {
		return nil, fmt.Errorf("meter: %w: %d", ErrInvalidDenominator, denominator)
	}
	return &Terminal{numerator: numerator, denominator: denominator}, nil
}

// ParseTerminal parses a single "N/D" token.
func ParseTerminal(src string) (*Terminal, error) {
	parts := strings.Split(strings.TrimSpace(src), "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("meter: %w: %q", ErrBadRatio, src)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("meter: %w: %q", ErrBadRatio, src)
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("meter: %w: %q", ErrBadRatio, src)
	}
	return NewTerminal(n, d)
}

func (t *Terminal) Numerator() int   { return t.numerator }
func (t *Terminal) Denominator() int { return t.denominator }

// SetNumerator changes the numerator; the derived duration follows and
// any override is discarded.
func (t *Terminal) SetNumerator(n int) error {
	if n <= 0 {
		return fmt.Errorf("meter: %w: %d", ErrInvalidNumerator, n)
	}
	t.numerator = n
	t.overridden = nil
	return nil
}

// SetDenominator changes the denominator; the derived duration follows
// and any override is discarded.
func (t *Terminal) SetDenominator(d int) error {
	if !validDenominators[d] {
		return fmt.Errorf("meter: %w: %d", ErrInvalidDenominator, d)
	}
	t.denominator = d
	t.overridden = nil
	return nil
}

// Duration returns the quarter-length 4*n/d, or the overridden value.
func (t *Terminal) Duration() fraction.Fraction {
	if t.overridden != nil {
		return *t.overridden
	}
	return fraction.New(4*t.numerator, t.denominator).Reduced()
}

// OverrideDuration pins the duration to an explicit quarter-length,
// decoupling it from the notated fraction.
func (t *Terminal) OverrideDuration(d fraction.Fraction) {
	t.overridden = &d
}

func (t *Terminal) QuarterLength() float64 {
	return t.Duration().Float()
}

func (t *Terminal) String() string {
	return fmt.Sprintf("%d/%d", t.numerator, t.denominator)
}

func (t *Terminal) copyElement() Element {
	cp := *t
	if t.overridden != nil {
		o := *t.overridden
		cp.overridden = &o
	}
	return &cp
}

// Subdivide splits the terminal into a new Sequence of count equal or
// near-equal parts. The terminal itself is unchanged.
func (t *Terminal) Subdivide(count int) (*Sequence, error) {
	s, err := NewSequence(t.String())
	if err != nil {
		return nil, err
	}
	if err := s.PartitionByCount(count, false); err != nil {
		return nil, err
	}
	return s, nil
}

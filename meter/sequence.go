package meter

import (
	"fmt"
	"strings"

	"github.com/cuthbertLab/meterspan/fraction"
)

// Sequence is an ordered partition of a meter into terminals and
// nested sequences. Its own numerator/denominator is always the
// common-denominator sum of the children's fractions, so 3/8+3/8 reads
// as 6/8 rather than 3/4.
//
// A Sequence is a single-owner value: share it across contexts by
// DeepCopy, not by pointer.
type Sequence struct {
	numerator   int
	denominator int
	children    []Element
}

// NewSequence parses a meter string of one or more "N/D" tokens joined
// by "+" (e.g. "6/8", "3/8+2/8") into a sequence with one terminal per
// token.
func NewSequence(source string) (*Sequence, error) {
	s := &Sequence{}
	if err := s.Load(source); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the sequence's contents from a meter string.
func (s *Sequence) Load(source string) error {
	tokens := strings.Split(source, "+")
	children := make([]Element, 0, len(tokens))
	for _, tok := range tokens {
		term, err := ParseTerminal(tok)
		if err != nil {
			return err
		}
		children = append(children, term)
	}
	s.children = children
	s.updateRatio()
	return nil
}

// FromElements builds a sequence directly from existing elements,
// deep-copying each one.
func FromElements(elements []Element) (*Sequence, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("meter: %w: empty element list", ErrBadRatio)
	}
	s := &Sequence{}
	for _, e := range elements {
		s.children = append(s.children, e.copyElement())
	}
	s.updateRatio()
	return s, nil
}

// updateRatio re-derives the sequence's numerator/denominator from its
// children. Every structural mutation must end here.
func (s *Sequence) updateRatio() {
	sum := fraction.Sum(s.childFractions())
	s.numerator = sum.Numerator
	s.denominator = sum.Denominator
}

func (s *Sequence) childFractions() []fraction.Fraction {
	fracs := make([]fraction.Fraction, len(s.children))
	for i, c := range s.children {
		fracs[i] = fraction.New(c.Numerator(), c.Denominator())
	}
	return fracs
}

func (s *Sequence) Numerator() int   { return s.numerator }
func (s *Sequence) Denominator() int { return s.denominator }

func (s *Sequence) Duration() fraction.Fraction {
	return fraction.New(4*s.numerator, s.denominator).Reduced()
}

func (s *Sequence) QuarterLength() float64 {
	return s.Duration().Float()
}

func (s *Sequence) Len() int {
	return len(s.children)
}

// Child returns the element at index i.
func (s *Sequence) Child(i int) Element {
	return s.children[i]
}

// SetChild replaces the element at index i. The replacement must have
// the same duration as the slot it fills.
func (s *Sequence) SetChild(i int, e Element) error {
	if i < 0 || i >= len(s.children) {
		return fmt.Errorf("meter: child index %d out of range", i)
	}
	if !e.Duration().Equals(s.children[i].Duration()) {
		return fmt.Errorf("meter: %w: slot %s, replacement %s",
			ErrDurationMismatch, s.children[i].Duration(), e.Duration())
	}
	s.children[i] = e
	s.updateRatio()
	return nil
}

// Children returns a copy of the child list. Mutating the slice does
// not affect the sequence; mutating the elements does.
func (s *Sequence) Children() []Element {
	return append([]Element(nil), s.children...)
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.children))
	for i, c := range s.children {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, "+") + "}"
}

func (s *Sequence) copyElement() Element {
	return s.DeepCopy()
}

// DeepCopy clones the whole partition tree.
func (s *Sequence) DeepCopy() *Sequence {
	cp := &Sequence{numerator: s.numerator, denominator: s.denominator}
	cp.children = make([]Element, len(s.children))
	for i, c := range s.children {
		cp.children[i] = c.copyElement()
	}
	return cp
}

func (s *Sequence) setPartition(parts []fraction.Fraction) {
	children := make([]Element, len(parts))
	for i, p := range parts {
		// generator output is always a valid terminal
		term, err := NewTerminal(p.Numerator, p.Denominator)
		if err != nil {
			panic("meter: generator produced invalid terminal: " + err.Error())
		}
		children[i] = term
	}
	s.children = children
	s.updateRatio()
}

// PartitionByCount replaces the children with the first generated
// option of the requested length. With loadDefault set, an
// unsatisfiable count falls back to the first option overall instead
// of failing.
func (s *Sequence) PartitionByCount(count int, loadDefault bool) error {
	opts := divisionOptions(s.numerator, s.denominator)
	for _, opt := range opts {
		if len(opt) == count {
			s.setPartition(opt)
			return nil
		}
	}
	if loadDefault && len(opts) > 0 {
		s.setPartition(opts[0])
		return nil
	}
	return fmt.Errorf("meter: %w: cannot divide %d/%d into %d parts",
		ErrNoMatchingPartition, s.numerator, s.denominator, count)
}

// PartitionDefault replaces the children with the highest-priority
// generated option, e.g. 3/8+3/8 for 6/8 and four quarters for 4/4.
func (s *Sequence) PartitionDefault() error {
	opts := divisionOptions(s.numerator, s.denominator)
	if len(opts) == 0 {
		return fmt.Errorf("meter: %w: no options for %d/%d",
			ErrNoMatchingPartition, s.numerator, s.denominator)
	}
	s.setPartition(opts[0])
	return nil
}

// PartitionByTokens replaces the children with explicit "N/D" tokens,
// which must sum to the sequence's current value. Tokens that parse
// but do not sum correctly are matched against the generated options
// before failing.
func (s *Sequence) PartitionByTokens(tokens []string) error {
	parts := make([]fraction.Fraction, 0, len(tokens))
	for _, tok := range tokens {
		term, err := ParseTerminal(tok)
		if err != nil {
			return err
		}
		parts = append(parts, fraction.New(term.Numerator(), term.Denominator()))
	}
	return s.partitionByFractions(parts)
}

// PartitionByNumerators replaces the children with integer numerators
// sharing the sequence's denominator; they must sum to the sequence's
// numerator, or match a generated option exactly.
func (s *Sequence) PartitionByNumerators(numerators []int) error {
	parts := make([]fraction.Fraction, 0, len(numerators))
	for _, n := range numerators {
		if n <= 0 {
			return fmt.Errorf("meter: %w: %d", ErrInvalidNumerator, n)
		}
		parts = append(parts, fraction.New(n, s.denominator))
	}
	return s.partitionByFractions(parts)
}

func (s *Sequence) partitionByFractions(parts []fraction.Fraction) error {
	if len(parts) > 0 {
		sum := fraction.Sum(parts)
		if sum.Equals(fraction.New(s.numerator, s.denominator)) {
			s.setPartition(parts)
			return nil
		}
	}
	for _, opt := range divisionOptions(s.numerator, s.denominator) {
		if fractionsEqual(opt, parts) {
			s.setPartition(opt)
			return nil
		}
	}
	return fmt.Errorf("meter: %w: %v does not partition %d/%d",
		ErrNoMatchingPartition, parts, s.numerator, s.denominator)
}

func fractionsEqual(a, b []fraction.Fraction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PartitionByOther copies another sequence's child shape. The two
// sequences must agree on numerator and denominator, not merely on
// total duration.
func (s *Sequence) PartitionByOther(o *Sequence) error {
	if s.numerator != o.numerator || s.denominator != o.denominator {
		return fmt.Errorf("meter: %w: %d/%d vs %d/%d",
			ErrDurationMismatch, s.numerator, s.denominator, o.numerator, o.denominator)
	}
	children := make([]Element, len(o.children))
	for i, c := range o.children {
		children[i] = c.copyElement()
	}
	s.children = children
	s.updateRatio()
	return nil
}

// OffsetToIndex maps a continuous quarter-length offset in
// [0, duration) to the index of the top-level child sounding there.
func (s *Sequence) OffsetToIndex(offset float64) (int, error) {
	if offset < 0 || offset >= s.QuarterLength() {
		return 0, fmt.Errorf("meter: %w: %v not in [0, %v)",
			ErrOffsetOutOfRange, offset, s.QuarterLength())
	}
	acc := fraction.New(0, 1)
	for i, c := range s.children {
		acc = fraction.Sum([]fraction.Fraction{acc, c.Duration()})
		if offset < acc.Float() {
			return i, nil
		}
	}
	// float slop at the very top of the range
	return len(s.children) - 1, nil
}

// OffsetToAddress maps an offset to the path of child indices down to
// the deepest active element. The path length is the nesting depth at
// that offset.
func (s *Sequence) OffsetToAddress(offset float64) ([]int, error) {
	i, err := s.OffsetToIndex(offset)
	if err != nil {
		return nil, err
	}
	address := []int{i}
	child, ok := s.children[i].(*Sequence)
	if !ok {
		return address, nil
	}
	var start float64
	for _, c := range s.children[:i] {
		start += c.QuarterLength()
	}
	rest, err := child.OffsetToAddress(offset - start)
	if err != nil {
		return nil, err
	}
	return append(address, rest...), nil
}

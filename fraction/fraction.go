// Package fraction provides the exact rational arithmetic that meter
// partitioning is built on. All structural duration math stays integral;
// callers convert to float quarter-lengths only at the presentation
// boundary.
package fraction

import "fmt"

// Fraction is a numerator/denominator pair. It is not automatically
// reduced: a meter of 6/8 must stay 6/8, not collapse to 3/4.
type Fraction struct {
	Numerator   int
	Denominator int
}

func New(numerator, denominator int) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// QuarterLength returns the duration of the fraction in quarter notes
// (4 * n / d). Exact for power-of-two denominators.
func (f Fraction) QuarterLength() float64 {
	return 4 * float64(f.Numerator) / float64(f.Denominator)
}

// Float returns the plain value n/d. Use QuarterLength when the
// fraction is a meter ratio rather than an already-scaled duration.
func (f Fraction) Float() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Reduced returns the fraction in lowest terms.
func (f Fraction) Reduced() Fraction {
	g := Gcd(f.Numerator, f.Denominator)
	if g == 0 {
		return f
	}
	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Equals reports whether two fractions represent the same value,
// e.g. 6/8 equals 3/4.
func (f Fraction) Equals(o Fraction) bool {
	return f.Numerator*o.Denominator == o.Numerator*f.Denominator
}

func Gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func Lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / Gcd(a, b) * b
}

// Sum adds a list of fractions over their least common denominator.
// The result keeps the common denominator rather than reducing, so
// 3/8 + 3/8 stays 6/8. Summing an empty list yields 0/1.
func Sum(fracs []Fraction) Fraction {
	if len(fracs) == 0 {
		return Fraction{Numerator: 0, Denominator: 1}
	}
	denom := fracs[0].Denominator
	for _, f := range fracs[1:] {
		denom = Lcm(denom, f.Denominator)
	}
	var num int
	for _, f := range fracs {
		num += f.Numerator * (denom / f.Denominator)
	}
	return Fraction{Numerator: num, Denominator: denom}
}

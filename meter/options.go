package meter

import "github.com/cuthbertLab/meterspan/fraction"

const maxDenominator = 64

func repeat(f fraction.Fraction, count int) []fraction.Fraction {
	parts := make([]fraction.Fraction, count)
	for i := range parts {
		parts[i] = f
	}
	return parts
}

// divisionOptions enumerates candidate partitions of n/d in priority
// order. Every option sums to the same total as n/d. The order is part
// of the contract: PartitionByCount takes the first option matching
// the requested count, and the default partition is the first option
// overall.
func divisionOptions(n, d int) [][]fraction.Fraction {
	var opts [][]fraction.Fraction
	add := func(parts ...fraction.Fraction) {
		opts = append(opts, parts)
	}

	// Preferred odd and compound groupings for short note values.
	if d > 4 {
		switch {
		case n == 5:
			add(fraction.New(2, d), fraction.New(3, d))
			add(fraction.New(3, d), fraction.New(2, d))
		case n == 7:
			add(fraction.New(2, d), fraction.New(2, d), fraction.New(3, d))
			add(fraction.New(3, d), fraction.New(2, d), fraction.New(2, d))
			add(fraction.New(2, d), fraction.New(3, d), fraction.New(2, d))
		case n > 3 && n%3 == 0:
			add(repeat(fraction.New(3, d), n/3)...)
		}
	}

	// Uniform split into single units of the denominator.
	if n > 1 {
		add(repeat(fraction.New(1, d), n)...)
	}

	// Successive halvings of the unit.
	for dd := d * 2; dd <= maxDenominator; dd *= 2 {
		add(repeat(fraction.New(1, dd), n*dd/d)...)
	}

	// The fraction itself.
	add(fraction.New(n, d))

	// Even groupings: pairs of units, then two halves.
	if n > 2 && n%2 == 0 {
		add(repeat(fraction.New(2, d), n/2)...)
	}
	if n > 1 && n%2 == 0 {
		add(fraction.New(n/2, d), fraction.New(n/2, d))
	}

	// Equivalent single fractions at smaller denominators.
	for nn, dd := n, d; nn%2 == 0 && dd%2 == 0 && validDenominators[dd/2]; {
		nn, dd = nn/2, dd/2
		add(fraction.New(nn, dd))
	}

	// Equivalent single fractions at larger denominators.
	for nn, dd := n, d; dd*2 <= maxDenominator; {
		nn, dd = nn*2, dd*2
		add(fraction.New(nn, dd))
	}

	return opts
}

package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustSequence(t *testing.T, source string) *Sequence {
	t.Helper()
	s, err := NewSequence(source)
	if err != nil {
		t.Fatalf("NewSequence(%q): %v", source, err)
	}
	return s
}

func TestLoadSimple(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "6/8")
	assert.Equal(6, s.Numerator())
	assert.Equal(8, s.Denominator())
	assert.Equal(3.0, s.QuarterLength())
	assert.Equal(1, s.Len())
	assert.Equal("{6/8}", s.String())
}

func TestLoadCompound(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "3/8+2/8")
	assert.Equal(5, s.Numerator())
	assert.Equal(8, s.Denominator())
	assert.Equal(2.5, s.QuarterLength())
	assert.Equal(2, s.Len())
	assert.Equal("{3/8+2/8}", s.String())

	// mixed denominators sum over the LCM
	s = mustSequence(t, "5/8+2/4")
	assert.Equal(9, s.Numerator())
	assert.Equal(8, s.Denominator())
	assert.Equal(4.5, s.QuarterLength())
}

func TestLoadRejectsBadSources(t *testing.T) {
	for _, src := range []string{"", "6/7", "3/8+", "abc", "3/8+x/8"} {
		_, err := NewSequence(src)
		assert.Error(t, err, "source %q", src)
	}
}

func TestPartitionByCount(t *testing.T) {
	cases := []struct {
		source string
		count  int
		want   string
	}{
		{"6/8", 2, "{3/8+3/8}"},
		{"6/8", 3, "{2/8+2/8+2/8}"},
		{"6/8", 6, "{1/8+1/8+1/8+1/8+1/8+1/8}"},
		{"5/8", 2, "{2/8+3/8}"},
		{"7/8", 3, "{2/8+2/8+3/8}"},
		{"4/4", 2, "{2/4+2/4}"},
		{"4/4", 4, "{1/4+1/4+1/4+1/4}"},
		{"9/8", 3, "{3/8+3/8+3/8}"},
		{"2/4", 2, "{1/4+1/4}"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			s := mustSequence(t, c.source)
			assert.NoError(t, s.PartitionByCount(c.count, false))
			assert.Equal(t, c.want, s.String())
		})
	}
}

func TestPartitionByCountUnsatisfiable(t *testing.T) {
	s := mustSequence(t, "6/8")
	err := s.PartitionByCount(5, false)
	assert.ErrorIs(t, err, ErrNoMatchingPartition)
	// the sequence is untouched after a failed partition
	assert.Equal(t, "{6/8}", s.String())
}

func TestPartitionByCountLoadDefault(t *testing.T) {
	s := mustSequence(t, "6/8")
	assert.NoError(t, s.PartitionByCount(5, true))
	// first generated option wins: the compound 3/8 grouping
	assert.Equal(t, "{3/8+3/8}", s.String())
}

func TestDurationConservation(t *testing.T) {
	sources := []string{"6/8", "5/8", "4/4", "7/8", "3/8+2/8", "9/8"}
	for _, src := range sources {
		s := mustSequence(t, src)
		total := s.QuarterLength()
		for count := 1; count <= 12; count++ {
			c := s.DeepCopy()
			if err := c.PartitionByCount(count, false); err != nil {
				continue
			}
			var sum float64
			for _, child := range c.Children() {
				sum += child.QuarterLength()
			}
			assert.Equal(t, total, sum, "%s partitioned by %d", src, count)
			assert.Equal(t, total, c.QuarterLength(), "%s partitioned by %d", src, count)
		}
	}
}

func TestFiveEightPartitionSumsExactly(t *testing.T) {
	s := mustSequence(t, "5/8")
	assert.NoError(t, s.PartitionByCount(2, false))
	var sum float64
	for _, child := range s.Children() {
		sum += child.QuarterLength()
	}
	assert.Equal(t, 2.5, sum)
}

func TestPartitionByNumerators(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "4/4")
	assert.NoError(s.PartitionByNumerators([]int{3, 1}))
	assert.Equal("{3/4+1/4}", s.String())

	s = mustSequence(t, "5/8")
	assert.NoError(s.PartitionByNumerators([]int{3, 2}))
	assert.Equal("{3/8+2/8}", s.String())

	s = mustSequence(t, "4/4")
	err := s.PartitionByNumerators([]int{3, 2})
	assert.ErrorIs(err, ErrNoMatchingPartition)
	assert.Equal("{4/4}", s.String())
}

func TestPartitionByTokens(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "4/4")
	assert.NoError(s.PartitionByTokens([]string{"2/4", "1/4", "1/4"}))
	assert.Equal("{2/4+1/4+1/4}", s.String())

	// equal value under a different denominator
	s = mustSequence(t, "4/4")
	assert.NoError(s.PartitionByTokens([]string{"2/4", "4/8"}))
	assert.Equal("{2/4+4/8}", s.String())

	s = mustSequence(t, "4/4")
	assert.ErrorIs(s.PartitionByTokens([]string{"2/4", "2/8"}), ErrNoMatchingPartition)
	assert.ErrorIs(s.PartitionByTokens([]string{"2/4", "x"}), ErrBadRatio)
}

func TestPartitionByOther(t *testing.T) {
	assert := assert.New(t)

	shape := mustSequence(t, "6/8")
	assert.NoError(shape.PartitionByCount(2, false))

	s := mustSequence(t, "6/8")
	assert.NoError(s.PartitionByOther(shape))
	assert.Equal("{3/8+3/8}", s.String())

	// the copy is deep: mutating the source does not leak through
	assert.NoError(shape.PartitionByCount(6, false))
	assert.Equal("{3/8+3/8}", s.String())

	// equal value is not enough, the ratio itself must match
	other := mustSequence(t, "3/4")
	assert.ErrorIs(s.PartitionByOther(other), ErrDurationMismatch)
}

func TestOffsetToIndex(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "4/4")
	assert.NoError(s.PartitionByCount(4, false))

	idx, err := s.OffsetToIndex(0.5)
	assert.NoError(err)
	assert.Equal(0, idx)

	idx, err = s.OffsetToIndex(3.5)
	assert.NoError(err)
	assert.Equal(3, idx)

	idx, err = s.OffsetToIndex(1.0)
	assert.NoError(err)
	assert.Equal(1, idx)

	_, err = s.OffsetToIndex(4.0)
	assert.ErrorIs(err, ErrOffsetOutOfRange)
	_, err = s.OffsetToIndex(-0.25)
	assert.ErrorIs(err, ErrOffsetOutOfRange)
}

func TestOffsetToAddress(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "6/8")
	assert.NoError(s.PartitionByCount(2, false))

	// replace the second 3/8 with a nested subdivision
	nested := mustSequence(t, "3/8")
	assert.NoError(nested.PartitionByCount(3, false))
	assert.NoError(s.SetChild(1, nested))

	addr, err := s.OffsetToAddress(0.25)
	assert.NoError(err)
	assert.Equal([]int{0}, addr)

	addr, err = s.OffsetToAddress(1.5)
	assert.NoError(err)
	assert.Equal([]int{1, 0}, addr)

	addr, err = s.OffsetToAddress(2.5)
	assert.NoError(err)
	assert.Equal([]int{1, 2}, addr)

	_, err = s.OffsetToAddress(3.0)
	assert.ErrorIs(err, ErrOffsetOutOfRange)
}

func TestSetChildRequiresEqualDuration(t *testing.T) {
	assert := assert.New(t)

	s := mustSequence(t, "6/8")
	assert.NoError(s.PartitionByCount(2, false))

	short, _ := NewTerminal(2, 8)
	assert.ErrorIs(s.SetChild(0, short), ErrDurationMismatch)

	// equal duration under a different denominator is fine
	equal, _ := NewTerminal(6, 16)
	assert.NoError(s.SetChild(0, equal))
	assert.Equal("{6/16+3/8}", s.String())
	assert.Equal(3.0, s.QuarterLength())
}

func TestFromElementsDeepCopies(t *testing.T) {
	assert := assert.New(t)

	a, _ := NewTerminal(3, 8)
	b, _ := NewTerminal(3, 8)
	s, err := FromElements([]Element{a, b})
	assert.NoError(err)
	assert.Equal("{3/8+3/8}", s.String())
	assert.Equal(6, s.Numerator())

	a.SetNumerator(2)
	assert.Equal("{3/8+3/8}", s.String())
}

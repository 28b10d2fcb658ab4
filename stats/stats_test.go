package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuthbertLab/meterspan/model"
)

func TestDurations(t *testing.T) {
	assert := assert.New(t)

	spans := []model.Span{
		{Start: 0, Stop: 1},
		{Start: 1, Stop: 3},
		{Start: 2, Stop: 5},
	}
	s := Durations(spans)
	assert.Equal(3, s.Count)
	assert.Equal(6.0, s.Total)
	assert.Equal(2.0, s.Mean)
	assert.Equal(1.0, s.Min)
	assert.Equal(3.0, s.Max)
	assert.Equal(2.0, s.Median)
	assert.InDelta(1.0, s.StdDev, 1e-12)
}

func TestDurationsEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Durations(nil))
}

func TestDurationsSingleSpan(t *testing.T) {
	s := Durations([]model.Span{{Start: 0, Stop: 0.5}})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.5, s.Median)
}

// Package stats summarizes span populations for reporting.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cuthbertLab/meterspan/model"
)

// Summary describes the note-duration distribution of a span set, in
// quarter-lengths.
type Summary struct {
	Count  int
	Total  float64
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Durations summarizes the quarter-length durations of the given
// spans. An empty input yields a zero Summary.
func Durations(spans []model.Span) Summary {
	if len(spans) == 0 {
		return Summary{}
	}

	durations := make([]float64, len(spans))
	for i, s := range spans {
		durations[i] = s.Stop - s.Start
	}
	sort.Float64s(durations)

	var total float64
	for _, d := range durations {
		total += d
	}

	res := Summary{
		Count:  len(durations),
		Total:  total,
		Mean:   stat.Mean(durations, nil),
		Median: stat.Quantile(0.5, stat.Empirical, durations, nil),
		Min:    durations[0],
		Max:    durations[len(durations)-1],
	}
	if len(durations) > 1 {
		res.StdDev = stat.StdDev(durations, nil)
	}
	return res
}

// Package score assembles the toolkit's two cores over one piece of
// music: every note span indexed in an interval tree, plus the piece's
// meter changes for metrical-position queries.
package score

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cuthbertLab/meterspan/interval"
	"github.com/cuthbertLab/meterspan/meter"
	"github.com/cuthbertLab/meterspan/midi"
	"github.com/cuthbertLab/meterspan/model"
)

// ErrOffsetBeforeStart indicates a metrical query at a negative
// offset.
var ErrOffsetBeforeStart = errors.New("score: offset before start of score")

// Score is one piece of music: its note spans indexed by start offset
// and its meter changes in offset order. Single-writer; build once,
// query freely.
type Score struct {
	ID     uuid.UUID
	Name   string
	Tree   *interval.Tree
	Spans  []model.Span
	Meters []model.MeterEvent
}

// Build extracts spans and meter events from a parsed SMF and indexes
// the spans.
func Build(name string, mf *smf.SMF) (*Score, error) {
	spans, err := midi.ExtractSpans(mf)
	if err != nil {
		return nil, err
	}
	meters, err := midi.ExtractMeterEvents(mf)
	if err != nil {
		return nil, err
	}

	sc := &Score{
		ID:     uuid.New(),
		Name:   name,
		Tree:   interval.NewTree(),
		Spans:  spans,
		Meters: meters,
	}
	for i := range sc.Spans {
		sc.Tree.Insert(&sc.Spans[i])
	}
	return sc, nil
}

// Duration is the quarter-length at which the last span stops.
func (sc *Score) Duration() float64 {
	if sc.Tree.Root == nil {
		return 0
	}
	return sc.Tree.Root.LatestStopOffset
}

// Overlapping returns the note spans sounding anywhere in [start,
// stop), in timeline order.
func (sc *Score) Overlapping(start, stop float64) []model.Span {
	found := sc.Tree.FindOverlapping(start, stop)
	res := make([]model.Span, 0, len(found))
	for _, ts := range found {
		res = append(res, *ts.(*model.Span))
	}
	return res
}

// SignatureAt returns the time signature governing the given offset
// and the offset at which that signature took effect.
func (sc *Score) SignatureAt(offset float64) (*meter.TimeSignature, float64, error) {
	if offset < 0 {
		return nil, 0, ErrOffsetBeforeStart
	}
	active := sc.Meters[0]
	for _, ev := range sc.Meters[1:] {
		if ev.Offset > offset {
			break
		}
		active = ev
	}
	sig, err := meter.NewTimeSignature(active.Ratio)
	if err != nil {
		return nil, 0, fmt.Errorf("score: meter event %q at %v: %w", active.Ratio, active.Offset, err)
	}
	return sig, active.Offset, nil
}

// Address locates a timeline offset metrically: the bar number (zero
// based, counted from the governing signature's start), the partition
// path within that bar, and the signature itself.
type Address struct {
	Bar       int
	Path      []int
	Signature string
}

// AddressAt resolves offset against the governing signature's beat
// sequence under its default partition.
func (sc *Score) AddressAt(offset float64) (*Address, error) {
	sig, sigStart, err := sc.SignatureAt(offset)
	if err != nil {
		return nil, err
	}
	if err := sig.Beat.PartitionDefault(); err != nil {
		return nil, err
	}

	barLen := sig.BarDuration()
	bar := int((offset - sigStart) / barLen)
	barOffset := offset - sigStart - float64(bar)*barLen
	path, err := sig.Beat.OffsetToAddress(barOffset)
	if err != nil {
		return nil, err
	}
	return &Address{Bar: bar, Path: path, Signature: sig.String()}, nil
}

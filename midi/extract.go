package midi

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cuthbertLab/meterspan/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrUnsupportedTimeFormat indicates an SMF without metric ticks
// (SMPTE-timed files cannot be mapped to quarter-lengths).
var ErrUnsupportedTimeFormat = errors.New("midi: unsupported time format, expected metric ticks")

// ExtractSpans pairs note-on/note-off events across all tracks into
// note spans on the quarter-length timeline. A note-on with velocity 0
// counts as a note-off. Unterminated notes are dropped. The result is
// sorted by start offset, then stop, then pitch.
func ExtractSpans(s *smf.SMF) ([]model.Span, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrUnsupportedTimeFormat
	}
	tpq := float64(ticks)

	type onNote struct {
		start    float64
		velocity uint8
	}

	var spans []model.Span
	for trackNum, events := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]onNote)
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				pressed[key] = onNote{start: float64(absTicks) / tpq, velocity: velocity}
			case event.Message.GetNoteEnd(&channel, &key):
				on, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				spans = append(spans, model.Span{
					Start:    on.start,
					Stop:     float64(absTicks) / tpq,
					Note:     key,
					Velocity: on.velocity,
					Track:    trackNum,
				})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		if spans[i].Stop != spans[j].Stop {
			return spans[i].Stop < spans[j].Stop
		}
		return spans[i].Note < spans[j].Note
	})
	return spans, nil
}

// ExtractMeterEvents collects meta time-signature events from all
// tracks, sorted by offset. When several signatures land on the same
// offset the last one wins. A file with no signature gets a default
// 4/4 at offset 0, as does a file whose first signature arrives late.
func ExtractMeterEvents(s *smf.SMF) ([]model.MeterEvent, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrUnsupportedTimeFormat
	}
	tpq := float64(ticks)

	var events []model.MeterEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var num, denom, cpt, dsqpq uint8
			if event.Message.GetMetaTimeSig(&num, &denom, &cpt, &dsqpq) {
				events = append(events, model.MeterEvent{
					Offset: float64(absTicks) / tpq,
					Ratio:  fmt.Sprintf("%d/%d", num, denom),
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Offset < events[j].Offset
	})
	var res []model.MeterEvent
	for _, ev := range events {
		if len(res) > 0 && res[len(res)-1].Offset == ev.Offset {
			res[len(res)-1] = ev
			continue
		}
		res = append(res, ev)
	}

	if len(res) == 0 || res[0].Offset > 0 {
		res = append([]model.MeterEvent{{Offset: 0, Ratio: "4/4"}}, res...)
	}
	return res, nil
}

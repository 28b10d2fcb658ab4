package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cuthbertLab/meterspan/util"
)

// Excerpt builds a short preview SMF: per track, the first maxNotes
// note events at or after ticksOffset, with all non-note events (meter,
// tempo, program changes) kept so the preview still plays correctly.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks >= ticksOffset {
					newTrack = append(newTrack, evt)
					numNoteOnOff++
					if numNoteOnOff >= maxNotes {
						newTrack.Close(0)
						break TrackEventLoop
					}
				}
			default:
				evt.Delta = util.Min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}

// Package midi turns Standard MIDI Files into the toolkit's timeline
// types: note spans in quarter-lengths and meter change events.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses an SMF from disk. The smf reader can panic on
// malformed input, so the panic is converted to an error here.
// https://github.com/gomidi/midi/issues/20
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

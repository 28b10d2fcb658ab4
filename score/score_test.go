package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const tpq = 960

// buildTestScore: a 6/8 piece with three notes, one quarter-length
// duration each at offsets 0, 1 and 2, plus a 4/4 change at the start
// of the second bar (offset 3).
func buildTestScore(t *testing.T) *Score {
	t.Helper()
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(tpq)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(6, 8))
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(tpq, gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOn(0, 64, 90))
	tr.Add(tpq, gomidi.NoteOff(0, 64))
	tr.Add(0, gomidi.NoteOn(0, 67, 80))
	tr.Add(tpq, gomidi.NoteOff(0, 67))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)

	sc, err := Build("test.mid", &s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	sc := buildTestScore(t)
	assert.Equal("test.mid", sc.Name)
	assert.NotEqual("00000000-0000-0000-0000-000000000000", sc.ID.String())
	assert.Equal(3, sc.Tree.Len())
	assert.Equal(3.0, sc.Duration())

	assert.Len(sc.Meters, 2)
	assert.Equal("6/8", sc.Meters[0].Ratio)
	assert.Equal(3.0, sc.Meters[1].Offset)
	assert.Equal("4/4", sc.Meters[1].Ratio)
}

func TestOverlapping(t *testing.T) {
	assert := assert.New(t)

	sc := buildTestScore(t)

	spans := sc.Overlapping(0.5, 1.5)
	assert.Len(spans, 2)
	assert.Equal(uint8(60), spans[0].Note)
	assert.Equal(uint8(64), spans[1].Note)

	spans = sc.Overlapping(2.5, 10)
	assert.Len(spans, 1)
	assert.Equal(uint8(67), spans[0].Note)

	assert.Empty(sc.Overlapping(3, 10))
}

func TestSignatureAt(t *testing.T) {
	assert := assert.New(t)

	sc := buildTestScore(t)

	sig, start, err := sc.SignatureAt(1.0)
	assert.NoError(err)
	assert.Equal("6/8", sig.String())
	assert.Equal(0.0, start)

	sig, start, err = sc.SignatureAt(5.0)
	assert.NoError(err)
	assert.Equal("4/4", sig.String())
	assert.Equal(3.0, start)

	_, _, err = sc.SignatureAt(-1)
	assert.ErrorIs(err, ErrOffsetBeforeStart)
}

func TestAddressAt(t *testing.T) {
	assert := assert.New(t)

	sc := buildTestScore(t)

	// 6/8 bar, default partition {3/8+3/8}: offset 2 is in the second
	// half of the first bar
	addr, err := sc.AddressAt(2.0)
	assert.NoError(err)
	assert.Equal(0, addr.Bar)
	assert.Equal([]int{1}, addr.Path)
	assert.Equal("6/8", addr.Signature)

	// the 4/4 signature takes over at offset 3; 4/4 defaults to four
	// quarters, so offset 6.5 is beat 3 of its first bar
	addr, err = sc.AddressAt(6.5)
	assert.NoError(err)
	assert.Equal(0, addr.Bar)
	assert.Equal([]int{3}, addr.Path)
	assert.Equal("4/4", addr.Signature)

	addr, err = sc.AddressAt(7.0)
	assert.NoError(err)
	assert.Equal(1, addr.Bar)
	assert.Equal([]int{0}, addr.Path)

	_, err = sc.AddressAt(-0.5)
	assert.ErrorIs(err, ErrOffsetBeforeStart)
}

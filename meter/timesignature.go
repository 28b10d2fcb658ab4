package meter

// TimeSignature bundles four independently partitionable views of one
// meter. Display governs how the signature is notated, Beam how notes
// group under beams, Beat how the bar is counted, and Accent where
// metrical weight falls. All four start from the same source string
// and are free to diverge afterwards.
type TimeSignature struct {
	Display *Sequence
	Beam    *Sequence
	Beat    *Sequence
	Accent  *Sequence
}

func NewTimeSignature(source string) (*TimeSignature, error) {
	ts := &TimeSignature{}
	for _, seq := range []**Sequence{&ts.Display, &ts.Beam, &ts.Beat, &ts.Accent} {
		s, err := NewSequence(source)
		if err != nil {
			return nil, err
		}
		*seq = s
	}
	return ts, nil
}

// Numerator reads through the beam sequence, by convention.
func (ts *TimeSignature) Numerator() int {
	return ts.Beam.Numerator()
}

func (ts *TimeSignature) Denominator() int {
	return ts.Beam.Denominator()
}

// BarDuration is the quarter-length of one bar of this signature.
func (ts *TimeSignature) BarDuration() float64 {
	return ts.Beam.QuarterLength()
}

func (ts *TimeSignature) String() string {
	parts := make([]string, 0, ts.Display.Len())
	for _, c := range ts.Display.Children() {
		parts = append(parts, c.String())
	}
	res := parts[0]
	for _, p := range parts[1:] {
		res += "+" + p
	}
	return res
}

package model

// Span is a concrete sounding event on the shared quarter-length
// timeline: one note held from Start to Stop. *Span satisfies the
// interval.Timespan contract.
type Span struct {
	Start    float64
	Stop     float64
	Note     uint8
	Velocity uint8
	Track    int
}

func (s *Span) StartOffset() float64 { return s.Start }
func (s *Span) StopOffset() float64  { return s.Stop }

// MeterEvent records a time-signature change at a quarter-length
// offset. Ratio is a meter string like "6/8" or "3/8+2/8".
type MeterEvent struct {
	Offset float64 `json:"offset"`
	Ratio  string  `json:"ratio"`
}

package model

type ScoreMetadata struct {
	Artist  string
	Release string
	Title   string
	Year    uint
}

type OverlapRequest struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
}

type SpanResult struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Note  uint8   `json:"note"`
	Track int     `json:"track"`
}

type OverlapResponse struct {
	NumMatches int          `json:"num_matches"`
	Spans      []SpanResult `json:"spans"`
}

type AddressResponse struct {
	Offset    float64 `json:"offset"`
	Bar       int     `json:"bar"`
	Address   []int   `json:"address"`
	Signature string  `json:"signature"`
}

type OverviewResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	NumSpans int            `json:"num_spans"`
	Duration float64        `json:"duration"`
	Meters   []MeterEvent   `json:"meters"`
	Metadata *ScoreMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

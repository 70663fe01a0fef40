package types

import "time"

// DatasetStats summarizes the launch records loaded at startup
type DatasetStats struct {
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	Records    int       `json:"records"`
	Successes  int       `json:"successes"`
	Sites      []string  `json:"sites"`
	MinPayload float64   `json:"min_payload_kg"`
	MaxPayload float64   `json:"max_payload_kg"`
}

// FullRange returns the observed payload bounds as a range
func (s DatasetStats) FullRange() PayloadRange {
	return PayloadRange{Low: s.MinPayload, High: s.MaxPayload}
}

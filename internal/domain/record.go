package domain

// Record is a temperature measurement produced for a matching. RecordID is
// the stable external UUID; Summary is rendered verbatim, never interpreted.
type Record struct {
	ID              int64          `json:"id"`
	RecordID        string         `json:"recordId"`
	MatchingID      int64          `json:"matchingId"`
	Temperature     float64        `json:"temperature"`
	TemperatureDiff float64        `json:"temperatureDiff"`
	IsActive        bool           `json:"isActive"`
	CreatedAt       string         `json:"createdAt"`
	Summary         map[string]any `json:"summary,omitempty"`
}

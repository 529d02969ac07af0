package domain

type MatchingStatus string

const (
	MatchingWaiting     MatchingStatus = "WAITING"
	MatchingEstablished MatchingStatus = "ESTABLISHED"
	MatchingCompleted   MatchingStatus = "COMPLETED"
)

type Participant struct {
	ID              int64  `json:"id"`
	ParticipantCode string `json:"participantCode"`
	MatchingID      int64  `json:"matchingId"`
	Name            string `json:"name,omitempty"`
}

type Matching struct {
	ID           int64          `json:"id"`
	Code         string         `json:"code"`
	Status       MatchingStatus `json:"status"`
	CreatedAt    string         `json:"createdAt"`
	CompletedAt  string         `json:"completedAt,omitempty"`
	Participants []Participant  `json:"participants,omitempty"`
}

type MatchingStatusInfo struct {
	Code             string         `json:"code"`
	Status           MatchingStatus `json:"status"`
	ParticipantCount int            `json:"participantCount"`
	MaxParticipants  int            `json:"maxParticipants"`
}

type JoinResult struct {
	ParticipantCode string `json:"participantCode"`
}

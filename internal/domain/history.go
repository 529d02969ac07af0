package domain

// UserHistory is assembled server-side; the client renders it as-is.
type UserHistory struct {
	User                User              `json:"user"`
	Matchings           []MatchingHistory `json:"matchings"`
	TotalParticipations int               `json:"totalParticipations"`
}

type MatchingHistory struct {
	MatchingID        int64             `json:"matchingId"`
	MatchingCode      string            `json:"matchingCode"`
	Status            string            `json:"status"`
	JoinedAt          string            `json:"joinedAt"`
	CompletedAt       string            `json:"completedAt,omitempty"`
	Record            *RecordInfo       `json:"record,omitempty"`
	OtherParticipants []ParticipantInfo `json:"otherParticipants"`
	Answers           []AnswerInfo      `json:"answers"`
}

// RecordInfo uses pointers for the temperature fields: the backend omits them
// while a record is still being computed.
type RecordInfo struct {
	RecordID        string   `json:"recordId"`
	Temperature     *float64 `json:"temperature,omitempty"`
	TemperatureDiff *float64 `json:"temperatureDiff,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

type ParticipantInfo struct {
	ParticipantCode string `json:"participantCode"`
	JoinedAt        string `json:"joinedAt"`
}

type AnswerInfo struct {
	QuestionID    int64  `json:"questionId"`
	QuestionText  string `json:"questionText"`
	QuestionOrder int    `json:"questionOrder"`
	ChoiceText    string `json:"choiceText"`
	ChoiceValue   string `json:"choiceValue"`
	AnsweredAt    string `json:"answeredAt"`
}

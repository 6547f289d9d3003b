package domain

// Submission is a stored, validated-correct answer with its scoring inputs.
// Only correct answers are ever stored; invalid attempts leave no trace so
// the participant can retry until the round closes.
type Submission struct {
	ParticipantID string `json:"participantId"`
	PlayerName    string `json:"playerName"`
	Word          string `json:"word"`
	Timestamp     int64  `json:"timestamp"`     // ms since epoch, client-reported
	Correct       bool   `json:"correct"`       // always true for stored submissions
	RemainingTime int64  `json:"remainingTime"` // ms left in the round at submission
	Multiplier    int    `json:"multiplier"`
	WordLength    int    `json:"wordLength"`
	BasePoints    int    `json:"basePoints"`
	Points        int    `json:"points"`
}

// ScoreResult is the breakdown returned to the submitter for a correct answer
type ScoreResult struct {
	Word          string `json:"word"`
	Points        int    `json:"points"`
	BasePoints    int    `json:"basePoints"`
	Multiplier    int    `json:"multiplier"`
	RemainingTime int64  `json:"remainingTime"`
}

// LengthMultiplier returns the score multiplier for a word of the given length
func LengthMultiplier(length int) int {
	switch {
	case length >= 10:
		return 4
	case length >= 8:
		return 3
	case length >= 5:
		return 2
	default:
		return 1
	}
}

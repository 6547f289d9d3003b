package domain

// EventType is the wire name of an outbound event
type EventType string

const (
	EventRoomCreated        EventType = "roomCreated"
	EventPlayerJoined       EventType = "playerJoined"
	EventJoinedRoom         EventType = "joinedRoom"
	EventJoinError          EventType = "joinError"
	EventPlayerLeft         EventType = "playerLeft"
	EventRoomClosed         EventType = "roomClosed"
	EventGameStarting       EventType = "gameStarting"
	EventNewRound           EventType = "newRound"
	EventCheckWord          EventType = "checkWord"
	EventInvalidAnswer      EventType = "invalidAnswer"
	EventInvalidWord        EventType = "invalidWord"
	EventAlreadyAnswered    EventType = "alreadyAnswered"
	EventCorrectAnswer      EventType = "correctAnswer"
	EventScoreUpdate        EventType = "scoreUpdate"
	EventPlayerCompleted    EventType = "playerCompleted"
	EventRoundComplete      EventType = "roundComplete"
	EventRoundTimeout       EventType = "roundTimeout"
	EventRoundEndedEarly    EventType = "roundEndedEarly"
	EventWaitingForHost     EventType = "waitingForHost"
	EventShowContinueButton EventType = "showContinueButton"
	EventMidGameSummary     EventType = "midGameSummary"
	EventGameOver           EventType = "gameOver"
	EventError              EventType = "error"
	EventPong               EventType = "pong"
)

// Event is an outbound message to one or more connections
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// NewEvent creates a new outbound event
func NewEvent(eventType EventType, payload interface{}) *Event {
	return &Event{Type: eventType, Payload: payload}
}

// Payload types for outbound events

// RoomCreatedPayload confirms room creation to the host
type RoomCreatedPayload struct {
	RoomCode string `json:"roomCode"`
}

// RosterPayload carries the updated roster after a join
type RosterPayload struct {
	Players []*Participant `json:"players"`
}

// JoinedRoomPayload confirms a successful join to the joining connection
type JoinedRoomPayload struct {
	RoomCode   string         `json:"roomCode"`
	PlayerName string         `json:"playerName"`
	Players    []*Participant `json:"players"`
}

// PlayerLeftPayload announces a departure with the remaining roster
type PlayerLeftPayload struct {
	PlayerName string         `json:"playerName"`
	Players    []*Participant `json:"players"`
}

// MessagePayload is a generic human-readable notice
type MessagePayload struct {
	Message string `json:"message"`
}

// NewRoundPayload announces a round's challenge to the whole room
type NewRoundPayload struct {
	Round         int    `json:"round"`
	TotalRounds   int    `json:"totalRounds"`
	FirstLetter   string `json:"firstLetter"`
	LastLetter    string `json:"lastLetter"`
	TimerDuration int    `json:"timerDuration"`
}

// CheckWordPayload asks the submitter to validate a format-checked answer
type CheckWordPayload struct {
	Answer    string `json:"answer"`
	Timestamp int64  `json:"timestamp"`
}

// ScoreUpdatePayload carries the live scoreboard
type ScoreUpdatePayload struct {
	Scores []ScoreEntry `json:"scores"`
}

// CompletedPlayer is the normalized "who's finished" entry
type CompletedPlayer struct {
	Name       string `json:"name"`
	Multiplier int    `json:"multiplier"`
}

// PlayerCompletedPayload is sent to the host when a participant finishes
type PlayerCompletedPayload struct {
	PlayerName          string            `json:"playerName"`
	Word                string            `json:"word"`
	Multiplier          int               `json:"multiplier"`
	AllCompletedPlayers []CompletedPlayer `json:"allCompletedPlayers"`
}

// RoundAnswer is one correct submission in a round summary
type RoundAnswer struct {
	Player string `json:"player"`
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// RoundCompletePayload summarizes a round that had correct answers
type RoundCompletePayload struct {
	CorrectAnswers []RoundAnswer `json:"correctAnswers"`
}

// RoundTimeoutPayload is sent when a round ends with no correct answers
type RoundTimeoutPayload struct {
	ExampleWord string `json:"exampleWord,omitempty"`
}

// ShowContinueButtonPayload tells the host the round can be advanced
type ShowContinueButtonPayload struct {
	CurrentRound int `json:"currentRound"`
	TotalRounds  int `json:"totalRounds"`
}

// MidGameSummaryPayload carries ranked standings at the midpoint
type MidGameSummaryPayload struct {
	Scores       []ScoreEntry `json:"scores"`
	CurrentRound int          `json:"currentRound"`
	TotalRounds  int          `json:"totalRounds"`
}

// GameOverPayload carries the final standings and the winner
type GameOverPayload struct {
	Scores []ScoreEntry `json:"scores"`
	Winner ScoreEntry   `json:"winner"`
}

package ws

import "encoding/json"

// Inbound message types
const (
	MsgCreateRoom    = "createRoom"
	MsgJoinRoom      = "joinRoom"
	MsgStartGame     = "startGame"
	MsgSubmitAnswer  = "submitAnswer"
	MsgWordValidated = "wordValidated"
	MsgContinue      = "continueToNextRound"
	MsgPing          = "ping"
)

// ClientMessage is the envelope for all inbound messages
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinRoomPayload asks to join an existing room
type JoinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// StartGamePayload starts the game with the chosen answer window
type StartGamePayload struct {
	RoomCode      string `json:"roomCode"`
	TimerDuration int    `json:"timerDuration"`
}

// SubmitAnswerPayload carries a participant's candidate word. Timestamp is
// the client's clock in milliseconds; zero means the server stamps it.
type SubmitAnswerPayload struct {
	RoomCode  string `json:"roomCode"`
	Answer    string `json:"answer"`
	Timestamp int64  `json:"timestamp"`
}

// WordValidatedPayload is the client's verdict on a checkWord round-trip
type WordValidatedPayload struct {
	RoomCode  string `json:"roomCode"`
	Answer    string `json:"answer"`
	IsValid   bool   `json:"isValid"`
	Timestamp int64  `json:"timestamp"`
}

// ContinuePayload advances past a settled round
type ContinuePayload struct {
	RoomCode string `json:"roomCode"`
}

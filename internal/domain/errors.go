package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGameAlreadyStarted  = errors.New("game already in progress")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrNameTaken           = errors.New("name already taken")
	ErrNotHost             = errors.New("only the host can perform this action")
	ErrNotEnoughPlayers    = errors.New("need at least 2 players")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrRoundNotActive      = errors.New("no active round")
	ErrAlreadyAnswered     = errors.New("already answered this round")
	ErrInvalidFormat       = errors.New("word must start and end with the correct letters")
	ErrInvalidState        = errors.New("invalid action for current room state")
	ErrInvalidTimerValue   = errors.New("unsupported timer duration")
)

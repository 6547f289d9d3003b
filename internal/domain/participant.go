package domain

import "time"

// Participant is a player who joined a room. The host connection is not a
// participant; it drives the game but never appears on the roster.
type Participant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	JoinedAt time.Time `json:"joinedAt"`
}

// NewParticipant creates a participant with a zero score
func NewParticipant(id, name string, joinedAt time.Time) *Participant {
	return &Participant{
		ID:       id,
		Name:     name,
		Score:    0,
		JoinedAt: joinedAt,
	}
}

// ScoreEntry is one row of a scoreboard or standings list
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rank  int    `json:"rank,omitempty"`
}

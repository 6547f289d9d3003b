package domain

import (
	"math"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultTotalRounds is the number of rounds in a full game
	DefaultTotalRounds = 10

	// MidSummaryRound is the round after which ranked standings are shown
	MidSummaryRound = 5

	// MaxBaseScore is the base score for an instant correct answer
	MaxBaseScore = 1000

	// MinParticipants is the minimum roster size to start a game
	MinParticipants = 2

	// DefaultTimerDuration is the fallback answer window in seconds
	DefaultTimerDuration = 30
)

// TimerDurations are the answer-window lengths the host may choose from
var TimerDurations = []int{10, 20, 30}

// Room is one game session: a host connection, an ordered roster of
// participants, and the state of the current round. All methods assume the
// caller serializes access (see app.RoomSession).
type Room struct {
	Code           string                 `json:"code"`
	HostID         string                 `json:"hostId"`
	Participants   []*Participant         `json:"participants"`
	GameStarted    bool                   `json:"gameStarted"`
	CurrentRound   int                    `json:"currentRound"`
	TotalRounds    int                    `json:"totalRounds"`
	Challenge      *Challenge             `json:"challenge,omitempty"`
	RoundStartTime time.Time              `json:"roundStartTime"`
	Submissions    map[string]*Submission `json:"submissions"`
	TimerDuration  int                    `json:"timerDuration"` // seconds
	State          State                  `json:"state"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// NewRoom creates an empty room owned by the given host connection
func NewRoom(code, hostID string, totalRounds int, createdAt time.Time) *Room {
	if totalRounds <= 0 {
		totalRounds = DefaultTotalRounds
	}
	return &Room{
		Code:          code,
		HostID:        hostID,
		Participants:  make([]*Participant, 0),
		TotalRounds:   totalRounds,
		Submissions:   make(map[string]*Submission),
		TimerDuration: DefaultTimerDuration,
		State:         StateIdle,
		CreatedAt:     createdAt,
	}
}

// IsHost checks if the given connection owns this room
func (r *Room) IsHost(connID string) bool {
	return r.HostID == connID
}

// Join appends a participant to the roster. Names collide case-sensitively;
// a failed join never mutates the roster.
func (r *Room) Join(connID, name string, now time.Time) (*Participant, error) {
	if r.GameStarted {
		return nil, ErrGameAlreadyStarted
	}

	for _, p := range r.Participants {
		if p.Name == name {
			return nil, ErrNameTaken
		}
	}

	participant := NewParticipant(connID, name, now)
	r.Participants = append(r.Participants, participant)

	return participant, nil
}

// Leave removes the participant with the given connection ID, if present.
// Returns the removed participant (nil if the connection was not on the
// roster) and whether the room is now empty.
func (r *Room) Leave(connID string) (removed *Participant, empty bool) {
	for i, p := range r.Participants {
		if p.ID == connID {
			removed = p
			r.Participants = append(r.Participants[:i], r.Participants[i+1:]...)
			break
		}
	}
	delete(r.Submissions, connID)
	return removed, len(r.Participants) == 0
}

// GetParticipant returns the participant with the given connection ID
func (r *Room) GetParticipant(connID string) (*Participant, error) {
	for _, p := range r.Participants {
		if p.ID == connID {
			return p, nil
		}
	}
	return nil, ErrParticipantNotFound
}

// Start begins the game. Only the host may start, and at least two
// participants must have joined. Unsupported timer durations fall back to
// the default rather than failing.
func (r *Room) Start(connID string, timerDuration int) error {
	if !r.IsHost(connID) {
		return ErrNotHost
	}
	if r.GameStarted {
		return ErrGameAlreadyStarted
	}
	if len(r.Participants) < MinParticipants {
		return ErrNotEnoughPlayers
	}

	if !validTimerDuration(timerDuration) {
		timerDuration = DefaultTimerDuration
	}

	r.GameStarted = true
	r.CurrentRound = 1
	r.TimerDuration = timerDuration

	return nil
}

func validTimerDuration(seconds int) bool {
	for _, d := range TimerDurations {
		if d == seconds {
			return true
		}
	}
	return false
}

// BeginRound opens the answer window for the current round: prior
// submissions are cleared, the challenge installed, and the round clock set.
func (r *Room) BeginRound(challenge *Challenge, now time.Time) {
	r.Submissions = make(map[string]*Submission)
	r.Challenge = challenge
	r.RoundStartTime = now
	r.State = StateRoundActive
}

// CheckFormat validates a candidate word against the active challenge and
// returns the normalized (lowercase, trimmed) form. Format failures are
// never stored; the participant may retry.
func (r *Room) CheckFormat(word string) (string, error) {
	if r.Challenge == nil {
		return "", ErrRoundNotActive
	}

	normalized := strings.ToLower(strings.TrimSpace(word))
	if len(normalized) < 3 {
		return "", ErrInvalidFormat
	}

	first := strings.ToUpper(normalized[:1])
	last := strings.ToUpper(normalized[len(normalized)-1:])
	if first != r.Challenge.FirstLetter || last != r.Challenge.LastLetter {
		return "", ErrInvalidFormat
	}

	return normalized, nil
}

// HasAnswered reports whether the participant already has a correct
// submission this round.
func (r *Room) HasAnswered(connID string) bool {
	s, ok := r.Submissions[connID]
	return ok && s.Correct
}

// ScoreSubmission commits a validated-correct answer: computes the score
// breakdown from the client-reported timestamp, adds the points to the
// participant's total, and stores the submission. At most one submission per
// participant per round is ever stored.
//
// Remaining time floors at zero, so an answer landing after the nominal
// window but before the round is closed still scores its minimum 1 base
// point instead of being rejected.
func (r *Room) ScoreSubmission(connID, word string, answerTs int64) (*ScoreResult, error) {
	participant, err := r.GetParticipant(connID)
	if err != nil {
		return nil, err
	}
	if r.Challenge == nil {
		return nil, ErrRoundNotActive
	}
	if r.HasAnswered(connID) {
		return nil, ErrAlreadyAnswered
	}

	windowMs := int64(r.TimerDuration) * 1000
	elapsed := answerTs - r.RoundStartTime.UnixMilli()
	remaining := windowMs - elapsed
	if remaining < 0 {
		remaining = 0
	}

	wordLength := len(word)
	multiplier := LengthMultiplier(wordLength)

	fraction := float64(remaining) / float64(windowMs)
	basePoints := int(math.Round(fraction * MaxBaseScore))
	if basePoints < 1 {
		basePoints = 1
	}
	finalPoints := basePoints * multiplier

	participant.Score += finalPoints

	r.Submissions[connID] = &Submission{
		ParticipantID: connID,
		PlayerName:    participant.Name,
		Word:          word,
		Timestamp:     answerTs,
		Correct:       true,
		RemainingTime: remaining,
		Multiplier:    multiplier,
		WordLength:    wordLength,
		BasePoints:    basePoints,
		Points:        finalPoints,
	}

	return &ScoreResult{
		Word:          word,
		Points:        finalPoints,
		BasePoints:    basePoints,
		Multiplier:    multiplier,
		RemainingTime: remaining,
	}, nil
}

// CorrectAnswers returns this round's stored submissions in roster order
func (r *Room) CorrectAnswers() []RoundAnswer {
	answers := make([]RoundAnswer, 0, len(r.Submissions))
	for _, p := range r.Participants {
		if s, ok := r.Submissions[p.ID]; ok && s.Correct {
			answers = append(answers, RoundAnswer{
				Player: s.PlayerName,
				Word:   s.Word,
				Points: s.Points,
			})
		}
	}
	return answers
}

// CompletedPlayers returns who has a correct answer this round, in roster
// order, in the normalized {name, multiplier} shape.
func (r *Room) CompletedPlayers() []CompletedPlayer {
	completed := make([]CompletedPlayer, 0, len(r.Submissions))
	for _, p := range r.Participants {
		if s, ok := r.Submissions[p.ID]; ok && s.Correct {
			completed = append(completed, CompletedPlayer{
				Name:       s.PlayerName,
				Multiplier: s.Multiplier,
			})
		}
	}
	return completed
}

// AllNonHostAnswered reports whether every participant other than the host
// has a correct submission this round. False when there are no such
// participants, so an empty room never ends a round early.
func (r *Room) AllNonHostAnswered() bool {
	counted := 0
	for _, p := range r.Participants {
		if p.ID == r.HostID {
			continue
		}
		if !r.HasAnswered(p.ID) {
			return false
		}
		counted++
	}
	return counted > 0
}

// Scoreboard returns the roster's names and scores in join order
func (r *Room) Scoreboard() []ScoreEntry {
	scores := make([]ScoreEntry, 0, len(r.Participants))
	for _, p := range r.Participants {
		scores = append(scores, ScoreEntry{Name: p.Name, Score: p.Score})
	}
	return scores
}

// Standings returns participants ranked by descending score. The sort is
// stable: ties keep join order, and the first entry is the winner.
func (r *Room) Standings() []ScoreEntry {
	ranked := make([]*Participant, len(r.Participants))
	copy(ranked, r.Participants)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	standings := make([]ScoreEntry, 0, len(ranked))
	for i, p := range ranked {
		standings = append(standings, ScoreEntry{
			Name:  p.Name,
			Score: p.Score,
			Rank:  i + 1,
		})
	}
	return standings
}

// IsFinalRound reports whether the current round is the last one
func (r *Room) IsFinalRound() bool {
	return r.CurrentRound >= r.TotalRounds
}

package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"wordwiz/internal/config"
	"wordwiz/internal/domain"
	"wordwiz/internal/words"
)

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	ConnID() string
	Close() error
}

// WordValidator is the answer-validity oracle consulted for each submission.
// Implementations must resolve failures to false rather than erroring.
type WordValidator interface {
	Validate(ctx context.Context, word string) bool
}

// RoomSession wraps one room with concurrency control and client
// management. Every mutation of the room goes through s.mu, which is the
// room's linearization point: joins, submissions, and round transitions for
// one room never interleave. The only external I/O, the oracle call, happens
// with the lock released and the already-answered check repeated afterwards.
type RoomSession struct {
	room *domain.Room
	mu   sync.Mutex

	clients   map[string]ClientConnection // connID -> client
	clientsMu sync.RWMutex

	cfg       config.GameConfig
	validator WordValidator
	clock     clockwork.Clock
	logger    *slog.Logger

	// Scheduler state, guarded by mu. epoch increments on every state
	// transition so a stale timer callback can detect it fired for a round
	// that no longer exists.
	epoch      uint64
	timer      clockwork.Timer
	closed     bool
	lastActive time.Time

	// newChallenge is swappable for tests
	newChallenge func() *domain.Challenge
	findExample  func(first, last string) string
}

// NewRoomSession creates a session around a freshly allocated room
func NewRoomSession(room *domain.Room, cfg config.GameConfig, validator WordValidator, clock clockwork.Clock, logger *slog.Logger) *RoomSession {
	return &RoomSession{
		room:         room,
		clients:      make(map[string]ClientConnection),
		cfg:          cfg,
		validator:    validator,
		clock:        clock,
		logger:       logger.With("roomCode", room.Code),
		lastActive:   clock.Now(),
		newChallenge: words.NewChallenge,
		findExample:  words.Example,
	}
}

// RoomCode returns the room code
func (s *RoomSession) RoomCode() string {
	return s.room.Code
}

// HostID returns the host's connection ID (immutable after creation)
func (s *RoomSession) HostID() string {
	return s.room.HostID
}

// IsHost checks whether a connection owns this room
func (s *RoomSession) IsHost(connID string) bool {
	return s.room.IsHost(connID)
}

// State returns the room's current lifecycle state
func (s *RoomSession) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.State
}

// ParticipantCount returns the roster size
func (s *RoomSession) ParticipantCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.room.Participants)
}

// CanJoin reports whether new participants may still join
func (s *RoomSession) CanJoin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && !s.room.GameStarted
}

// LastActive returns when the session last saw a connection or operation
func (s *RoomSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// ClientCount returns the number of attached connections
func (s *RoomSession) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// RegisterClient attaches a client connection to the session
func (s *RoomSession) RegisterClient(client ClientConnection) {
	s.clientsMu.Lock()
	s.clients[client.ConnID()] = client
	s.clientsMu.Unlock()
	s.touch()
}

// UnregisterClient detaches a client connection
func (s *RoomSession) UnregisterClient(connID string) {
	s.clientsMu.Lock()
	delete(s.clients, connID)
	s.clientsMu.Unlock()
	s.touch()
}

func (s *RoomSession) touch() {
	s.mu.Lock()
	s.lastActive = s.clock.Now()
	s.mu.Unlock()
}

// Join adds a participant and broadcasts the updated roster. The error, if
// any, is reported to the joining connection only.
func (s *RoomSession) Join(connID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrRoomNotFound
	}

	participant, err := s.room.Join(connID, name, s.clock.Now())
	if err != nil {
		return err
	}
	s.lastActive = s.clock.Now()

	s.logger.Info("player joined", "player", name)

	s.unicast(connID, domain.NewEvent(domain.EventJoinedRoom, &domain.JoinedRoomPayload{
		RoomCode:   s.room.Code,
		PlayerName: participant.Name,
		Players:    s.room.Participants,
	}))
	s.broadcast(domain.NewEvent(domain.EventPlayerJoined, &domain.RosterPayload{
		Players: s.room.Participants,
	}))

	return nil
}

// Leave removes the connection from the room. The returned flag tells the
// caller the room must be torn down: either the host departed (no host
// migration) or the roster is now empty.
func (s *RoomSession) Leave(connID string) (teardown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.lastActive = s.clock.Now()

	if s.room.IsHost(connID) {
		s.logger.Info("host left, closing room")
		s.broadcast(domain.NewEvent(domain.EventRoomClosed, &domain.MessagePayload{
			Message: "The host has left the game",
		}))
		return true
	}

	removed, empty := s.room.Leave(connID)
	if removed == nil {
		return false
	}

	s.logger.Info("player left", "player", removed.Name)

	s.broadcast(domain.NewEvent(domain.EventPlayerLeft, &domain.PlayerLeftPayload{
		PlayerName: removed.Name,
		Players:    s.room.Participants,
	}))

	// The departure may leave everyone else finished
	if s.room.State == domain.StateRoundActive && s.room.AllNonHostAnswered() {
		s.settleRoundLocked(true)
	}

	return empty
}

// Start begins the game (host only) and schedules the first round's lead-in
func (s *RoomSession) Start(connID string, timerDuration int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrRoomNotFound
	}

	if err := s.room.Start(connID, timerDuration); err != nil {
		return err
	}
	s.lastActive = s.clock.Now()

	s.logger.Info("game started", "timerDuration", s.room.TimerDuration)

	s.broadcast(domain.NewEvent(domain.EventGameStarting, nil))
	s.scheduleLeadInLocked()

	return nil
}

// SubmitAnswer handles a participant's answer: format check under the lock,
// checkWord echo to the submitter, oracle validation outside the lock, then
// the scoring commit.
func (s *RoomSession) SubmitAnswer(ctx context.Context, connID, answer string, clientTs int64) {
	s.mu.Lock()

	if s.closed || !s.room.GameStarted || s.room.State != domain.StateRoundActive {
		s.mu.Unlock()
		return
	}
	if _, err := s.room.GetParticipant(connID); err != nil {
		s.mu.Unlock()
		return
	}
	if s.room.HasAnswered(connID) {
		s.mu.Unlock()
		s.unicast(connID, domain.NewEvent(domain.EventAlreadyAnswered, nil))
		return
	}

	normalized, err := s.room.CheckFormat(answer)
	if err != nil {
		s.mu.Unlock()
		s.unicast(connID, domain.NewEvent(domain.EventInvalidAnswer, &domain.MessagePayload{
			Message: "Word must start and end with the correct letters",
		}))
		return
	}

	if clientTs == 0 {
		clientTs = s.clock.Now().UnixMilli()
	}
	epoch := s.epoch
	s.mu.Unlock()

	s.unicast(connID, domain.NewEvent(domain.EventCheckWord, &domain.CheckWordPayload{
		Answer:    normalized,
		Timestamp: clientTs,
	}))

	s.commitValidated(ctx, connID, normalized, clientTs, epoch)
}

// HandleWordValidated handles the legacy client-side validation round-trip.
// The client's verdict is not trusted beyond a negative: a claimed-valid
// word still goes through the oracle before any points are awarded.
func (s *RoomSession) HandleWordValidated(ctx context.Context, connID, answer string, isValid bool, clientTs int64) {
	s.mu.Lock()

	if s.closed || !s.room.GameStarted || s.room.State != domain.StateRoundActive {
		s.mu.Unlock()
		return
	}
	if _, err := s.room.GetParticipant(connID); err != nil {
		s.mu.Unlock()
		return
	}
	if s.room.HasAnswered(connID) {
		s.mu.Unlock()
		s.unicast(connID, domain.NewEvent(domain.EventAlreadyAnswered, nil))
		return
	}

	normalized, err := s.room.CheckFormat(answer)
	if err != nil {
		s.mu.Unlock()
		s.unicast(connID, domain.NewEvent(domain.EventInvalidAnswer, &domain.MessagePayload{
			Message: "Word must start and end with the correct letters",
		}))
		return
	}

	if clientTs == 0 {
		clientTs = s.clock.Now().UnixMilli()
	}
	epoch := s.epoch
	s.mu.Unlock()

	if !isValid {
		s.unicast(connID, domain.NewEvent(domain.EventInvalidWord, &domain.MessagePayload{
			Message: "Word not in dictionary",
		}))
		return
	}

	s.commitValidated(ctx, connID, normalized, clientTs, epoch)
}

// commitValidated runs the oracle without holding the room lock, then
// re-acquires it and commits if the round is still the one the submission
// was made in and the participant still has no correct answer.
func (s *RoomSession) commitValidated(ctx context.Context, connID, word string, clientTs int64, epoch uint64) {
	valid := s.validator.Validate(ctx, word)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch || s.room.State != domain.StateRoundActive {
		// Round moved on while the oracle was out; drop silently
		s.logger.Debug("submission arrived for a finished round", "connID", connID, "word", word)
		return
	}

	if !valid {
		s.unicast(connID, domain.NewEvent(domain.EventInvalidWord, &domain.MessagePayload{
			Message: "Word not in dictionary",
		}))
		return
	}

	if s.room.HasAnswered(connID) {
		s.unicast(connID, domain.NewEvent(domain.EventAlreadyAnswered, nil))
		return
	}

	result, err := s.room.ScoreSubmission(connID, word, clientTs)
	if err != nil {
		s.logger.Debug("submission rejected", "connID", connID, "error", err)
		return
	}
	s.lastActive = s.clock.Now()

	s.unicast(connID, domain.NewEvent(domain.EventCorrectAnswer, result))
	s.broadcast(domain.NewEvent(domain.EventScoreUpdate, &domain.ScoreUpdatePayload{
		Scores: s.room.Scoreboard(),
	}))

	participant, _ := s.room.GetParticipant(connID)
	s.unicast(s.room.HostID, domain.NewEvent(domain.EventPlayerCompleted, &domain.PlayerCompletedPayload{
		PlayerName:          participant.Name,
		Word:                result.Word,
		Multiplier:          result.Multiplier,
		AllCompletedPlayers: s.room.CompletedPlayers(),
	}))

	if s.room.AllNonHostAnswered() {
		s.settleRoundLocked(true)
	}
}

// Continue advances past a settled round (host only)
func (s *RoomSession) Continue(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrRoomNotFound
	}
	if !s.room.IsHost(connID) {
		return domain.ErrNotHost
	}
	if s.room.State != domain.StateRoundSettling {
		return domain.ErrInvalidState
	}
	s.lastActive = s.clock.Now()

	switch {
	case s.room.CurrentRound == s.cfg.MidSummaryRound && !s.room.IsFinalRound():
		s.showMidSummaryLocked()
	case s.room.IsFinalRound():
		s.endGameLocked()
	default:
		s.room.CurrentRound++
		s.scheduleLeadInLocked()
	}

	return nil
}

// Close tears the session down: pending timers are invalidated so nothing
// fires against a deleted room, and all connections are closed.
func (s *RoomSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.epoch++
	s.cancelTimerLocked()
	s.mu.Unlock()

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()
}

// broadcast sends an event to every connection in the room. Sends never
// block: a client with a full buffer misses the message rather than stalling
// the room.
func (s *RoomSession) broadcast(event *domain.Event) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for connID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("send failed", "connID", connID, "error", err)
		}
	}
}

// broadcastExceptHost sends an event to every non-host connection
func (s *RoomSession) broadcastExceptHost(event *domain.Event) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for connID, client := range s.clients {
		if connID == s.room.HostID {
			continue
		}
		if err := client.Send(event); err != nil {
			s.logger.Debug("send failed", "connID", connID, "error", err)
		}
	}
}

// unicast sends an event to a single connection, if attached
func (s *RoomSession) unicast(connID string, event *domain.Event) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if client, ok := s.clients[connID]; ok {
		if err := client.Send(event); err != nil {
			s.logger.Debug("send failed", "connID", connID, "error", err)
		}
	}
}

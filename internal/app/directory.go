package app

import (
	"crypto/rand"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"wordwiz/internal/config"
	"wordwiz/internal/domain"
)

// RoomCodeChars are characters used for room codes (no ambiguous letters)
const RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// reapInterval is how often the directory sweeps for abandoned rooms
const reapInterval = 10 * time.Minute

// RoomDirectory owns the lifetime of every active room. The directory map
// has its own lock; each room serializes its own mutations, so unrelated
// rooms never block each other.
type RoomDirectory struct {
	mu        sync.RWMutex
	rooms     map[string]*RoomSession
	cfg       config.GameConfig
	validator WordValidator
	clock     clockwork.Clock
	logger    *slog.Logger
	done      chan struct{}
	closeOnce sync.Once
}

// NewRoomDirectory creates a directory and starts its reaper
func NewRoomDirectory(cfg config.GameConfig, validator WordValidator, clock clockwork.Clock, logger *slog.Logger) *RoomDirectory {
	d := &RoomDirectory{
		rooms:     make(map[string]*RoomSession),
		cfg:       cfg,
		validator: validator,
		clock:     clock,
		logger:    logger,
		done:      make(chan struct{}),
	}

	go d.reapLoop()

	return d
}

// Create allocates a room with a unique code, owned by the calling
// connection as host. The code space is large relative to any realistic
// number of concurrent rooms, so generation retries until unique.
func (d *RoomDirectory) Create(hostConnID string) *RoomSession {
	d.mu.Lock()
	defer d.mu.Unlock()

	var code string
	for {
		code = d.generateRoomCode()
		if _, exists := d.rooms[code]; !exists {
			break
		}
	}

	room := domain.NewRoom(code, hostConnID, d.cfg.TotalRounds, d.clock.Now())
	session := NewRoomSession(room, d.cfg, d.validator, d.clock, d.logger)
	d.rooms[code] = session

	d.logger.Info("room created", "roomCode", code, "host", hostConnID)

	return session
}

// Get returns the room session for a code
func (d *RoomDirectory) Get(code string) (*RoomSession, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	session, ok := d.rooms[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return session, nil
}

// Delete removes a room and cancels its pending timers; idempotent
func (d *RoomDirectory) Delete(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if session, ok := d.rooms[code]; ok {
		session.Close()
		delete(d.rooms, code)
		d.logger.Info("room deleted", "roomCode", code)
	}
}

// RoomCount returns the number of active rooms
func (d *RoomDirectory) RoomCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rooms)
}

// ParticipantCount returns the total number of participants across all rooms
func (d *RoomDirectory) ParticipantCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := 0
	for _, session := range d.rooms {
		total += session.ParticipantCount()
	}
	return total
}

// Close shuts down the directory and every room in it
func (d *RoomDirectory) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, session := range d.rooms {
		session.Close()
	}
	d.rooms = make(map[string]*RoomSession)
}

// generateRoomCode generates a random letter code; caller holds d.mu
func (d *RoomDirectory) generateRoomCode() string {
	length := d.cfg.RoomCodeLength

	b := make([]byte, length)
	rand.Read(b)

	code := make([]byte, length)
	for i := range code {
		code[i] = RoomCodeChars[int(b[i])%len(RoomCodeChars)]
	}

	return string(code)
}

// reapLoop periodically removes rooms nobody is connected to anymore
func (d *RoomDirectory) reapLoop() {
	ticker := d.clock.NewTicker(reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			return
		case <-ticker.Chan():
			d.reapIdleRooms()
		}
	}
}

func (d *RoomDirectory) reapIdleRooms() {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := d.clock.Now().Add(-d.cfg.RoomIdleTimeout)

	for code, session := range d.rooms {
		if session.ClientCount() == 0 && session.LastActive().Before(cutoff) {
			session.Close()
			delete(d.rooms, code)
			d.logger.Info("idle room reaped", "roomCode", code)
		}
	}
}

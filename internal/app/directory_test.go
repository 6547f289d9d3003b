package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordwiz/internal/config"
	"wordwiz/internal/domain"
)

func newTestDirectory(t *testing.T, cfg config.GameConfig) (*RoomDirectory, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	directory := NewRoomDirectory(cfg, &stubValidator{valid: true}, clock, logger)
	t.Cleanup(directory.Close)

	return directory, clock
}

func TestDirectoryCreate(t *testing.T) {
	directory, _ := newTestDirectory(t, config.Default().Game)

	t.Run("allocates a well-formed code", func(t *testing.T) {
		session := directory.Create("host-1")

		code := session.RoomCode()
		assert.Len(t, code, config.Default().Game.RoomCodeLength)
		for _, c := range code {
			assert.Contains(t, RoomCodeChars, string(c))
		}
		assert.True(t, session.IsHost("host-1"))
	})

	t.Run("codes are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code := directory.Create("host").RoomCode()
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}

func TestDirectoryGet(t *testing.T) {
	directory, _ := newTestDirectory(t, config.Default().Game)

	created := directory.Create("host-1")

	t.Run("finds an existing room", func(t *testing.T) {
		session, err := directory.Get(created.RoomCode())
		require.NoError(t, err)
		assert.Same(t, created, session)
	})

	t.Run("unknown code is an error", func(t *testing.T) {
		_, err := directory.Get("ZZZZ")
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})
}

func TestDirectoryDelete(t *testing.T) {
	directory, _ := newTestDirectory(t, config.Default().Game)

	session := directory.Create("host-1")
	code := session.RoomCode()

	conn := newFakeConn("host-1")
	session.RegisterClient(conn)

	directory.Delete(code)

	_, err := directory.Get(code)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.True(t, conn.isClosed())

	// Deleting again is a no-op
	directory.Delete(code)
}

func TestDirectoryCounts(t *testing.T) {
	directory, _ := newTestDirectory(t, config.Default().Game)

	s1 := directory.Create("host-1")
	s2 := directory.Create("host-2")

	require.NoError(t, s1.Join("p1", "alice"))
	require.NoError(t, s1.Join("p2", "bob"))
	require.NoError(t, s2.Join("p3", "carol"))

	assert.Equal(t, 2, directory.RoomCount())
	assert.Equal(t, 3, directory.ParticipantCount())
}

func TestDirectoryReapsIdleRooms(t *testing.T) {
	cfg := config.Default().Game
	cfg.RoomIdleTimeout = 5 * time.Minute

	directory, clock := newTestDirectory(t, cfg)

	// Wait for the reap loop's ticker before moving the clock
	clock.BlockUntil(1)

	idle := directory.Create("host-1")
	busy := directory.Create("host-2")
	busy.RegisterClient(newFakeConn("host-2"))

	clock.Advance(reapInterval + time.Minute)

	require.Eventually(t, func() bool {
		_, err := directory.Get(idle.RoomCode())
		return err != nil
	}, time.Second, time.Millisecond, "idle room never reaped")

	_, err := directory.Get(busy.RoomCode())
	assert.NoError(t, err, "room with a connection must survive")
}

func TestGenerateRoomCode(t *testing.T) {
	directory, _ := newTestDirectory(t, config.Default().Game)

	for i := 0; i < 100; i++ {
		code := directory.generateRoomCode()
		require.Len(t, code, config.Default().Game.RoomCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(RoomCodeChars, c))
		}
	}
}

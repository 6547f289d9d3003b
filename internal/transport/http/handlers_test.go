package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordwiz/internal/app"
	"wordwiz/internal/config"
	"wordwiz/internal/transport/ws"
	"wordwiz/internal/words"
)

func newTestServer(t *testing.T) (*Server, *app.RoomDirectory) {
	t.Helper()

	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := words.NewValidator("", cfg.Dictionary.Timeout, logger)

	directory := app.NewRoomDirectory(cfg.Game, validator, clockwork.NewRealClock(), logger)
	t.Cleanup(directory.Close)

	gateway := ws.NewGateway(directory, app.NewConnRegistry(), logger)

	return NewServer(cfg, directory, gateway, logger), directory
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestStatsEndpoint(t *testing.T) {
	s, directory := newTestServer(t)

	session := directory.Create("host-1")
	require.NoError(t, session.Join("p1", "alice"))

	rec := doRequest(t, s, http.MethodGet, "/api/stats")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.ActiveRooms)
	assert.Equal(t, 1, resp.Data.TotalPlayers)
}

func TestGetRoomEndpoint(t *testing.T) {
	s, directory := newTestServer(t)

	session := directory.Create("host-1")
	require.NoError(t, session.Join("p1", "alice"))

	t.Run("existing room", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/rooms/"+session.RoomCode())
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool            `json:"success"`
			Data    GetRoomResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, session.RoomCode(), resp.Data.RoomCode)
		assert.Equal(t, 1, resp.Data.PlayerCount)
		assert.True(t, resp.Data.CanJoin)
	})

	t.Run("lowercase code is accepted", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/rooms/"+strings.ToLower(session.RoomCode()))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown room", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/rooms/ZZZZ")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "ROOM_NOT_FOUND", resp.Error.Code)
	})
}

func TestRoomQREndpoint(t *testing.T) {
	s, directory := newTestServer(t)

	session := directory.Create("host-1")

	t.Run("returns a PNG", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/rooms/"+session.RoomCode()+"/qr")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Body.Bytes())
	})

	t.Run("unknown room", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/rooms/ZZZZ/qr")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordwiz/internal/app"
	"wordwiz/internal/config"
)

type acceptAllValidator struct{}

func (acceptAllValidator) Validate(ctx context.Context, word string) bool { return true }

type gatewayFixture struct {
	directory *app.RoomDirectory
	srv       *httptest.Server
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	directory := app.NewRoomDirectory(config.Default().Game, acceptAllValidator{}, clockwork.NewRealClock(), logger)
	t.Cleanup(directory.Close)

	gateway := NewGateway(directory, app.NewConnRegistry(), logger)
	srv := httptest.NewServer(gateway)
	t.Cleanup(srv.Close)

	return &gatewayFixture{directory: directory, srv: srv}
}

// testSocket wraps a real client connection, splitting the batched frames
// the write pump produces back into individual events.
type testSocket struct {
	t     *testing.T
	conn  *websocket.Conn
	queue [][]byte
}

type testEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (f *gatewayFixture) dial(t *testing.T) *testSocket {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testSocket{t: t, conn: conn}
}

func (s *testSocket) send(msgType string, payload interface{}) {
	s.t.Helper()

	msg := map[string]interface{}{"type": msgType}
	if payload != nil {
		msg["payload"] = payload
	}
	require.NoError(s.t, s.conn.WriteJSON(msg))
}

func (s *testSocket) next() testEnvelope {
	s.t.Helper()

	for len(s.queue) == 0 {
		s.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := s.conn.ReadMessage()
		require.NoError(s.t, err)
		s.queue = append(s.queue, bytes.Split(data, []byte{'\n'})...)
	}

	raw := s.queue[0]
	s.queue = s.queue[1:]

	var env testEnvelope
	require.NoError(s.t, json.Unmarshal(raw, &env))
	return env
}

func (s *testSocket) waitFor(eventType string) testEnvelope {
	s.t.Helper()

	for {
		env := s.next()
		if env.Type == eventType {
			return env
		}
	}
}

func (s *testSocket) createRoom() string {
	s.t.Helper()

	s.send(MsgCreateRoom, nil)
	env := s.waitFor("roomCreated")

	var payload struct {
		RoomCode string `json:"roomCode"`
	}
	require.NoError(s.t, json.Unmarshal(env.Payload, &payload))
	require.Len(s.t, payload.RoomCode, config.Default().Game.RoomCodeLength)
	return payload.RoomCode
}

func TestGatewaySingleRoomBinding(t *testing.T) {
	f := newGatewayFixture(t)

	host := f.dial(t)
	codeA := host.createRoom()

	other := f.dial(t)
	codeB := other.createRoom()

	// A host already bound to room A must not be able to join room B
	host.send(MsgJoinRoom, JoinRoomPayload{RoomCode: codeB, PlayerName: "alice"})
	env := host.waitFor("joinError")

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "Already in a room", payload.Message)

	// The original binding survives: dropping the host tears room A down
	host.conn.Close()

	require.Eventually(t, func() bool {
		_, err := f.directory.Get(codeA)
		return err != nil
	}, 2*time.Second, 10*time.Millisecond, "room %s not torn down after its host disconnected", codeA)

	_, err := f.directory.Get(codeB)
	assert.NoError(t, err, "unrelated room %s must survive", codeB)
}

func TestGatewayJoinNormalizesRoomCode(t *testing.T) {
	f := newGatewayFixture(t)

	host := f.dial(t)
	code := host.createRoom()

	player := f.dial(t)
	player.send(MsgJoinRoom, JoinRoomPayload{RoomCode: strings.ToLower(code), PlayerName: "bob"})
	env := player.waitFor("joinedRoom")

	var payload struct {
		RoomCode   string `json:"roomCode"`
		PlayerName string `json:"playerName"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, code, payload.RoomCode)
	assert.Equal(t, "bob", payload.PlayerName)
}

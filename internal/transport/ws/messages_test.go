package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMessageDecoding(t *testing.T) {
	t.Run("envelope with payload", func(t *testing.T) {
		raw := `{"type":"joinRoom","payload":{"roomCode":"ABCD","playerName":"alice"}}`

		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(raw), &msg))
		assert.Equal(t, MsgJoinRoom, msg.Type)

		var p JoinRoomPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &p))
		assert.Equal(t, "ABCD", p.RoomCode)
		assert.Equal(t, "alice", p.PlayerName)
	})

	t.Run("envelope without payload", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(`{"type":"ping"}`), &msg))
		assert.Equal(t, MsgPing, msg.Type)
		assert.Nil(t, msg.Payload)
	})

	t.Run("submit answer carries the client timestamp", func(t *testing.T) {
		raw := `{"type":"submitAnswer","payload":{"roomCode":"ABCD","answer":"smoke","timestamp":1700000005000}}`

		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(raw), &msg))

		var p SubmitAnswerPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &p))
		assert.Equal(t, "smoke", p.Answer)
		assert.Equal(t, int64(1700000005000), p.Timestamp)
	})
}

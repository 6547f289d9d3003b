package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection. A connection starts out
// unbound; createRoom or joinRoom binds it to a room through the gateway.
type Client struct {
	conn    *websocket.Conn
	gateway *Gateway
	connID  string
	send    chan []byte
	done    chan struct{}
	logger  *slog.Logger
	mu      sync.Mutex
	closed  bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, gateway *Gateway, connID string, logger *slog.Logger) *Client {
	return &Client{
		conn:    conn,
		gateway: gateway,
		connID:  connID,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// ConnID implements app.ClientConnection
func (c *Client) ConnID() string {
	return c.connID
}

// Send implements app.ClientConnection
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn("send buffer full, message dropped", "connID", c.connID)
		return nil
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.gateway.Disconnect(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "connID", c.connID, "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.gateway.sendError(c, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgCreateRoom:
		c.gateway.CreateRoom(c)
	case MsgJoinRoom:
		var p JoinRoomPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.PlayerName == "" || p.RoomCode == "" {
			c.gateway.sendError(c, "Room code and player name are required")
			return
		}
		c.gateway.JoinRoom(c, p.RoomCode, p.PlayerName)
	case MsgStartGame:
		var p StartGamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.RoomCode == "" {
			c.gateway.sendError(c, "Room code is required")
			return
		}
		c.gateway.StartGame(c, p.RoomCode, p.TimerDuration)
	case MsgSubmitAnswer:
		var p SubmitAnswerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.Answer == "" {
			c.gateway.sendError(c, "Answer is required")
			return
		}
		c.gateway.SubmitAnswer(c, p.RoomCode, p.Answer, p.Timestamp)
	case MsgWordValidated:
		var p WordValidatedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.Answer == "" {
			c.gateway.sendError(c, "Answer is required")
			return
		}
		c.gateway.WordValidated(c, p.RoomCode, p.Answer, p.IsValid, p.Timestamp)
	case MsgContinue:
		var p ContinuePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.RoomCode == "" {
			c.gateway.sendError(c, "Room code is required")
			return
		}
		c.gateway.Continue(c, p.RoomCode)
	case MsgPing:
		c.gateway.sendPong(c)
	default:
		c.gateway.sendError(c, "Unknown message type")
	}
}

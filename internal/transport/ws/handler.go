package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"wordwiz/internal/app"
	"wordwiz/internal/domain"
)

// Gateway accepts WebSocket connections and routes their messages to rooms.
// A connection joins at most one room at a time; the registry remembers the
// binding so disconnects find their room without a payload.
type Gateway struct {
	directory *app.RoomDirectory
	registry  *app.ConnRegistry
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewGateway creates a new WebSocket gateway
func NewGateway(directory *app.RoomDirectory, registry *app.ConnRegistry, logger *slog.Logger) *Gateway {
	return &Gateway{
		directory: directory,
		registry:  registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for development
				// In production, you should validate the origin
				return true
			},
		},
		logger: logger,
	}
}

// ServeHTTP handles WebSocket upgrade requests
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	connID := uuid.New().String()
	client := NewClient(conn, g, connID, g.logger)

	g.logger.Info("websocket connected", "connID", connID)

	client.Run()
}

// CreateRoom allocates a room with the connection as host
func (g *Gateway) CreateRoom(c *Client) {
	if _, bound := g.registry.Lookup(c.connID); bound {
		g.sendError(c, "Already in a room")
		return
	}

	session := g.directory.Create(c.connID)
	g.registry.Bind(c.connID, session.RoomCode())
	session.RegisterClient(c)

	c.Send(domain.NewEvent(domain.EventRoomCreated, &domain.RoomCreatedPayload{
		RoomCode: session.RoomCode(),
	}))
}

// JoinRoom adds the connection to an existing room as a participant. A
// connection holds at most one binding; allowing a second room would leave
// the first one orphaned on disconnect.
func (g *Gateway) JoinRoom(c *Client, roomCode, playerName string) {
	if _, bound := g.registry.Lookup(c.connID); bound {
		g.sendJoinError(c, "Already in a room")
		return
	}

	roomCode = strings.ToUpper(roomCode)
	session, err := g.directory.Get(roomCode)
	if err != nil {
		g.sendJoinError(c, "Room not found")
		return
	}

	// Register before joining so the join confirmation can be delivered
	session.RegisterClient(c)

	if err := session.Join(c.connID, playerName); err != nil {
		session.UnregisterClient(c.connID)
		switch {
		case errors.Is(err, domain.ErrGameAlreadyStarted):
			g.sendJoinError(c, "Game has already started")
		case errors.Is(err, domain.ErrNameTaken):
			g.sendJoinError(c, "That name is already taken")
		default:
			g.sendJoinError(c, "Unable to join room")
		}
		return
	}

	g.registry.Bind(c.connID, roomCode)
}

// StartGame starts the game in the connection's room (host only)
func (g *Gateway) StartGame(c *Client, roomCode string, timerDuration int) {
	session, err := g.directory.Get(strings.ToUpper(roomCode))
	if err != nil {
		g.sendError(c, "Room not found")
		return
	}

	if err := session.Start(c.connID, timerDuration); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotHost):
			g.sendError(c, "Only the host can start the game")
		case errors.Is(err, domain.ErrNotEnoughPlayers):
			g.sendError(c, "Need at least 2 players to start")
		case errors.Is(err, domain.ErrGameAlreadyStarted):
			g.sendError(c, "Game has already started")
		default:
			g.sendError(c, "Unable to start game")
		}
	}
}

// SubmitAnswer routes a candidate word to the room
func (g *Gateway) SubmitAnswer(c *Client, roomCode, answer string, timestamp int64) {
	session, err := g.resolve(c, roomCode)
	if err != nil {
		g.sendError(c, "Room not found")
		return
	}

	session.SubmitAnswer(context.Background(), c.connID, answer, timestamp)
}

// WordValidated routes a client-side validation verdict to the room
func (g *Gateway) WordValidated(c *Client, roomCode, answer string, isValid bool, timestamp int64) {
	session, err := g.resolve(c, roomCode)
	if err != nil {
		g.sendError(c, "Room not found")
		return
	}

	session.HandleWordValidated(context.Background(), c.connID, answer, isValid, timestamp)
}

// Continue advances past a settled round (host only)
func (g *Gateway) Continue(c *Client, roomCode string) {
	session, err := g.directory.Get(strings.ToUpper(roomCode))
	if err != nil {
		g.sendError(c, "Room not found")
		return
	}

	if err := session.Continue(c.connID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotHost):
			g.sendError(c, "Only the host can continue")
		case errors.Is(err, domain.ErrInvalidState):
			g.sendError(c, "Cannot continue now")
		default:
			g.sendError(c, "Unable to continue")
		}
	}
}

// Disconnect removes the connection from its room, tearing the room down
// when the host departs or nobody is left.
func (g *Gateway) Disconnect(c *Client) {
	roomCode, bound := g.registry.Lookup(c.connID)
	g.registry.Unbind(c.connID)
	if !bound {
		return
	}

	session, err := g.directory.Get(roomCode)
	if err != nil {
		return
	}

	session.UnregisterClient(c.connID)

	if session.Leave(c.connID) {
		g.directory.Delete(roomCode)
	}

	g.logger.Info("websocket disconnected", "connID", c.connID, "roomCode", roomCode)
}

// resolve finds the session by payload room code, falling back to the
// connection's registry binding.
func (g *Gateway) resolve(c *Client, roomCode string) (*app.RoomSession, error) {
	if roomCode == "" {
		bound, ok := g.registry.Lookup(c.connID)
		if !ok {
			return nil, domain.ErrRoomNotFound
		}
		roomCode = bound
	}
	return g.directory.Get(strings.ToUpper(roomCode))
}

func (g *Gateway) sendError(c *Client, message string) {
	c.Send(domain.NewEvent(domain.EventError, &domain.MessagePayload{Message: message}))
}

func (g *Gateway) sendJoinError(c *Client, message string) {
	c.Send(domain.NewEvent(domain.EventJoinError, &domain.MessagePayload{Message: message}))
}

func (g *Gateway) sendPong(c *Client) {
	c.Send(domain.NewEvent(domain.EventPong, nil))
}

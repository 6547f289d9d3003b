package app

import "sync"

// ConnRegistry maps a transport connection to the room it currently belongs
// to, so disconnects can be routed without scanning every room.
type ConnRegistry struct {
	mu    sync.RWMutex
	rooms map[string]string // connID -> room code
}

// NewConnRegistry creates an empty registry
func NewConnRegistry() *ConnRegistry {
	return &ConnRegistry{
		rooms: make(map[string]string),
	}
}

// Bind associates a connection with a room code, replacing any prior binding
func (r *ConnRegistry) Bind(connID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[connID] = roomCode
}

// Lookup returns the room code the connection is bound to
func (r *ConnRegistry) Lookup(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	code, ok := r.rooms[connID]
	return code, ok
}

// Unbind removes the connection's binding; no-op if absent
func (r *ConnRegistry) Unbind(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, connID)
}

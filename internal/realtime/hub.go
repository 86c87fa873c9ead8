// Package realtime pushes schedule-change notices to connected calendars so
// open views refresh after a mutation. Single process, local fan-out only.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PingInterval and PongWait are heartbeat settings in seconds.
const (
	PingInterval = 30
	PongWait     = 60
)

// ScheduleChange is the payload of a schedule_updated notice.
type ScheduleChange struct {
	Entity string    `json:"entity"` // "event", "team", "building"
	Action string    `json:"action"` // "created", "updated", "deleted", "imported"
	ID     uuid.UUID `json:"id,omitempty"`
}

// Hub maintains organization -> set of connections and broadcasts notices.
type Hub struct {
	// organizationID -> map[clientID]*Client
	rooms  map[uuid.UUID]map[string]*Client
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewHub creates a WebSocket hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[uuid.UUID]map[string]*Client),
		logger: logger,
	}
}

// Register adds a client to its organization room.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.rooms[c.OrganizationID] == nil {
		h.rooms[c.OrganizationID] = make(map[string]*Client)
	}
	h.rooms[c.OrganizationID][c.ID] = c
	h.mu.Unlock()
	h.logger.Debug("client joined organization room",
		zap.String("client_id", c.ID),
		zap.String("organization_id", c.OrganizationID.String()),
	)
}

// Unregister removes a client from its organization room.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if m, ok := h.rooms[c.OrganizationID]; ok {
		delete(m, c.ID)
		if len(m) == 0 {
			delete(h.rooms, c.OrganizationID)
		}
	}
	h.mu.Unlock()
	h.logger.Debug("client left organization room",
		zap.String("client_id", c.ID),
		zap.String("organization_id", c.OrganizationID.String()),
	)
}

// BroadcastScheduleChange notifies every client in the organization room.
// Wired as the store's change notifier.
func (h *Hub) BroadcastScheduleChange(orgID uuid.UUID, entity, action string, id uuid.UUID) {
	data, err := json.Marshal(ScheduleChange{Entity: entity, Action: action, ID: id})
	if err != nil {
		return
	}
	msg := WSMessage{Event: "schedule_updated", Data: data}

	// Sends are non-blocking, so the lock can be held across the fan-out
	// without risking a stall on a slow client.
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.rooms[orgID] {
		select {
		case c.send <- msg:
		default:
			// buffer full, skip
		}
	}
}

// RoomSize returns the number of connected clients for an organization.
func (h *Hub) RoomSize(orgID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[orgID])
}

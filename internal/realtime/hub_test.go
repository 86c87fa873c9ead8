package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(orgID uuid.UUID, hub *Hub) *Client {
	return &Client{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		UserID:         uuid.New(),
		hub:            hub,
		send:           make(chan WSMessage, 64),
		logger:         zap.NewNop(),
	}
}

func TestBroadcastScheduleChange(t *testing.T) {
	hub := NewHub(zap.NewNop())
	orgA := uuid.New()
	orgB := uuid.New()

	a1 := newTestClient(orgA, hub)
	a2 := newTestClient(orgA, hub)
	b1 := newTestClient(orgB, hub)
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b1)
	assert.Equal(t, 2, hub.RoomSize(orgA))
	assert.Equal(t, 1, hub.RoomSize(orgB))

	eventID := uuid.New()
	hub.BroadcastScheduleChange(orgA, "event", "created", eventID)

	for _, c := range []*Client{a1, a2} {
		select {
		case msg := <-c.send:
			assert.Equal(t, "schedule_updated", msg.Event)
			var change ScheduleChange
			require.NoError(t, json.Unmarshal(msg.Data, &change))
			assert.Equal(t, "event", change.Entity)
			assert.Equal(t, "created", change.Action)
			assert.Equal(t, eventID, change.ID)
		default:
			t.Fatal("expected a schedule_updated message")
		}
	}
	// The other organization's room hears nothing.
	assert.Empty(t, b1.send)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(zap.NewNop())
	org := uuid.New()
	c := newTestClient(org, hub)
	hub.Register(c)
	hub.Unregister(c)
	assert.Zero(t, hub.RoomSize(org))

	hub.BroadcastScheduleChange(org, "event", "deleted", uuid.New())
	assert.Empty(t, c.send)
}

func TestBroadcastDuringChurn(t *testing.T) {
	hub := NewHub(zap.NewNop())
	org := uuid.New()

	// Broadcasts racing registration and unregistration on the same room
	// must not corrupt it (run with -race).
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c := newTestClient(org, hub)
			hub.Register(c)
			hub.Unregister(c)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.BroadcastScheduleChange(org, "event", "updated", uuid.New())
		}
	}()
	wg.Wait()
	assert.Zero(t, hub.RoomSize(org))
}

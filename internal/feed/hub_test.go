package feed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		id:   uuid.New(),
		send: make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unregister, got %d", hub.ClientCount())
	}

	// Channel must be closed so WritePump terminates
	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("send channel not closed after unregister")
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub)
	client2 := mockClient(hub)

	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast("order.created", map[string]int64{"id": 123})

	for i, client := range []*Client{client1, client2} {
		select {
		case msg := <-client.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("failed to unmarshal message: %v", err)
			}
			if received.Type != "order.created" {
				t.Errorf("expected type 'order.created', got '%s'", received.Type)
			}
			if string(received.Payload) != `{"id":123}` {
				t.Errorf("unexpected payload: %s", received.Payload)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client%d did not receive message", i+1)
		}
	}
}

func TestSlowClientEvicted(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Tiny buffer so the second broadcast overflows
	slow := &Client{hub: hub, id: uuid.New(), send: make(chan []byte, 1)}

	hub.register <- slow
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast("order.updated", map[string]int64{"id": 1})
	hub.Broadcast("order.updated", map[string]int64{"id": 2})
	time.Sleep(20 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatalf("slow client should be evicted, got %d clients", hub.ClientCount())
	}
}

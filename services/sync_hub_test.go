package services

import (
	"strings"
	"testing"
)

// Clients are attached without a connection here; only the hub's
// queueing and bookkeeping are under test.
func TestBroadcastQueuesPerClient(t *testing.T) {
	h := NewSyncHub()
	c := &WSClient{userID: "u1", send: make(chan []byte, 2)}
	h.attach(c)

	h.Broadcast("u1", map[string]any{"kind": EventRewardEarned, "tokens": 20})
	select {
	case msg := <-c.send:
		if !strings.Contains(string(msg), EventRewardEarned) {
			t.Errorf("queued message = %s, want kind %s", msg, EventRewardEarned)
		}
	default:
		t.Fatal("broadcast did not reach the client's queue")
	}

	h.Broadcast("other-user", map[string]any{"kind": EventReminder})
	select {
	case msg := <-c.send:
		t.Errorf("received another user's event: %s", msg)
	default:
	}
}

func TestBroadcastDropsWhenClientLags(t *testing.T) {
	h := NewSyncHub()
	c := &WSClient{userID: "u1", send: make(chan []byte, 1)}
	h.attach(c)

	h.Broadcast("u1", map[string]any{"kind": EventSyncStarted})
	// The buffer is full now; this must not block.
	h.Broadcast("u1", map[string]any{"kind": EventSyncFinished})

	msg := <-c.send
	if !strings.Contains(string(msg), EventSyncStarted) {
		t.Errorf("first queued message = %s, want kind %s", msg, EventSyncStarted)
	}
	select {
	case msg := <-c.send:
		t.Errorf("overflow event was queued anyway: %s", msg)
	default:
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	h := NewSyncHub()
	c := &WSClient{userID: "u1", send: make(chan []byte, 1)}
	h.attach(c)

	h.Detach(c)
	h.Detach(c) // second call must not panic on the closed channel

	if _, ok := <-c.send; ok {
		t.Error("send channel still open after detach")
	}

	// Events for a detached client go nowhere.
	h.Broadcast("u1", map[string]any{"kind": EventReminder})
}

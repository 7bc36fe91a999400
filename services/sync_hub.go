package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event kinds streamed to connected clients. Sync transitions are the
// only observable signal of the best-effort background saves.
const (
	EventSyncStarted  = "sync.started"
	EventSyncFinished = "sync.finished"
	EventRewardEarned = "reward.earned"
	EventReminder     = "reminder"
)

const (
	clientSendBuffer = 16
	pingPeriod       = 25 * time.Second
	writeWait        = 10 * time.Second
)

// WSClient is one open websocket. All writes to the connection,
// payloads and pings alike, go through its write pump; nothing else
// may touch conn directly.
type WSClient struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// SyncHub fans events out to every websocket a user has open. A client
// that cannot keep up just misses events; the hub never blocks on it.
type SyncHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewSyncHub() *SyncHub {
	return &SyncHub{clients: make(map[string]map[*WSClient]struct{})}
}

// Attach registers the connection and starts its write pump.
func (h *SyncHub) Attach(userID string, conn *websocket.Conn) *WSClient {
	c := &WSClient{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, clientSendBuffer),
	}
	h.attach(c)
	go c.writePump(h)
	return c
}

func (h *SyncHub) attach(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*WSClient]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

// Detach removes the client and closes its send channel and
// connection. Safe to call more than once.
func (h *SyncHub) Detach(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		if _, ok := set[c]; ok {
			delete(set, c)
			close(c.send)
			if len(set) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
	h.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Broadcast queues the payload for every connection the user has open.
// A full client buffer drops the event for that client.
func (h *SyncHub) Broadcast(userID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// writePump is the connection's only writer. It drains the send channel
// and keeps the connection alive with periodic pings; any write failure
// detaches the client.
func (c *WSClient) writePump(h *SyncHub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.Detach(c)
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package controllers

import (
	"net/http"

	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.SyncHub
}

func NewRealtimeController(hub *services.SyncHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsWS streams sync, reward and reminder events for the
// authenticated user. The hub's write pump owns the connection for
// writing; this handler only reads, to notice the peer going away.
func (rc *RealtimeController) EventsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := rc.Hub.Attach(c.GetString("userID"), conn)
	defer rc.Hub.Detach(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

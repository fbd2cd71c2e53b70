package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHub fans match snapshots out to every connected spectator. It
// implements service.Notifier, so the match service pushes a frame
// here after every committed mutation.
type StreamHub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
}

func NewStreamHub() *StreamHub {
	return &StreamHub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
	}
}

// Run owns the client set. Start it once, on its own goroutine, before
// the router begins serving.
func (h *StreamHub) Run() {
	clients := make(map[*websocket.Conn]bool)
	for {
		select {
		case conn := <-h.register:
			clients[conn] = true
		case conn := <-h.unregister:
			if clients[conn] {
				delete(clients, conn)
				conn.Close()
			}
		case frame := <-h.broadcast:
			for conn := range clients {
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					delete(clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// MatchChanged queues a snapshot frame for broadcast. It must not
// block gameplay: when the hub is backed up the frame is dropped, and
// the next committed snapshot catches spectators up.
func (h *StreamHub) MatchChanged(state *service.MatchState) {
	frame, err := json.Marshal(state)
	if err != nil {
		logging.Error("Failed to encode match frame", err, nil)
		return
	}
	select {
	case h.broadcast <- frame:
	default:
		logging.Warn("Match frame dropped, stream hub backed up", nil, nil)
	}
}

// Stream upgrades the request to a websocket, replays the current
// match state and keeps the client subscribed until it hangs up.
func (h *StreamHub) Stream(matches *service.MatchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logging.Error("Failed to upgrade stream connection", err, nil)
			return
		}

		// Write the catch-up frame before joining the broadcast set so
		// only one goroutine ever writes to the socket.
		if state, err := matches.State(); err == nil {
			frame, err := json.Marshal(state)
			if err == nil {
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					conn.Close()
					return
				}
			}
		}

		h.register <- conn
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}
}

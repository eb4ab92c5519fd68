package ws

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"quoridor/internal/game"
	"quoridor/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
	upgrader    websocket.Upgrader
	log         *zap.Logger
}

// NewHub serves room updates over WebSocket. allowOrigin "*" accepts any
// origin; anything else must appear in the Origin header.
func NewHub(roomManager RoomManager, allowOrigin string, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
		log:         log,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowOrigin == "" || allowOrigin == "*" {
				return true
			}
			return strings.Contains(r.Header.Get("Origin"), allowOrigin)
		},
	}
	return h
}

type message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type moveData struct {
	PlayerID string `mapstructure:"player_id"`
	X        int    `mapstructure:"x"`
	Y        int    `mapstructure:"y"`
}

type wallData struct {
	PlayerID    string `mapstructure:"player_id"`
	X           int    `mapstructure:"x"`
	Y           int    `mapstructure:"y"`
	Orientation string `mapstructure:"orientation"`
}

type botData struct {
	BotID string `mapstructure:"bot_id"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rx, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("room", roomCode), zap.Error(err))
		return
	}
	h.log.Debug("websocket joined", zap.String("room", roomCode))

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		if len(h.rooms[roomCode]) == 0 {
			delete(h.rooms, roomCode)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	h.send(conn, "state-updated", h.roomManager.State(rx))

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("websocket read", zap.String("room", roomCode), zap.Error(err))
			}
			return
		}
		if err := h.handle(rx, msg); err != nil {
			h.send(conn, "error", gin.H{"action": msg.Action, "error": err.Error()})
		}
	}
}

func (h *Hub) handle(rx *shared.Room, msg message) error {
	switch msg.Action {
	case "move":
		var d moveData
		if err := mapstructure.Decode(msg.Data, &d); err != nil {
			return fmt.Errorf("decode move: %w", err)
		}
		_, err := h.roomManager.ApplyMove(rx, d.PlayerID, game.Pos(d.X, d.Y))
		return err

	case "wall":
		var d wallData
		if err := mapstructure.Decode(msg.Data, &d); err != nil {
			return fmt.Errorf("decode wall: %w", err)
		}
		_, err := h.roomManager.PlaceWall(rx, d.PlayerID, game.Pos(d.X, d.Y), game.Orientation(d.Orientation))
		return err

	case "bot_move":
		var d botData
		if msg.Data != nil {
			if err := mapstructure.Decode(msg.Data, &d); err != nil {
				return fmt.Errorf("decode bot_move: %w", err)
			}
		}
		if d.BotID == "" {
			snap := h.roomManager.State(rx)
			d.BotID = snap.Seats[snap.Turn-1].ID
		}
		_, _, err := h.roomManager.BotMove(rx, d.BotID)
		return err
	}
	return errors.New("unknown action " + msg.Action)
}

func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(message{Action: action, Data: data}); err != nil {
		h.log.Debug("websocket write", zap.Error(err))
	}
}

// Broadcast writes one event to every client of a room. Writes are
// serialized under the hub lock; a client that fails is dropped.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	msg := message{Action: action, Data: data}
	for conn := range clients {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Info("dropping websocket client", zap.String("room", roomCode), zap.Error(err))
			conn.Close()
			delete(clients, conn)
		}
	}
}

// Clients counts the connections watching a room.
func (h *Hub) Clients(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quoridor/internal/config"
	"quoridor/internal/game"
	"quoridor/internal/room"
	"quoridor/internal/shared"
	"quoridor/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*room.Manager, *Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem, err := store.NewMemoryStore(8, nil)
	require.NoError(t, err)
	rm := room.NewManager(mem, config.Default(), nil, nil)
	hub := NewHub(rm, "*", nil)
	rm.SetHub(hub)

	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return rm, hub, srv
}

func dial(t *testing.T, srv *httptest.Server, code string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room_code=" + code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func snapshot(t *testing.T, f frame) shared.Snapshot {
	t.Helper()
	var s shared.Snapshot
	require.NoError(t, json.Unmarshal(f.Data, &s))
	return s
}

func TestHubMoveBroadcasts(t *testing.T) {
	rm, hub, srv := setup(t)
	rx, err := rm.CreateRoom(room.CreateRequest{Seats: []room.SeatRequest{{Name: "a"}, {Name: "b"}}})
	require.NoError(t, err)

	conn := dial(t, srv, rx.Code)
	first := read(t, conn)
	assert.Equal(t, "state-updated", first.Action)
	assert.Equal(t, 1, hub.Clients(rx.Code))

	require.NoError(t, conn.WriteJSON(gin.H{
		"action": "move",
		"data":   gin.H{"player_id": rx.Seats[0].ID, "x": 5, "y": 2},
	}))
	f := read(t, conn)
	require.Equal(t, "state-updated", f.Action)
	s := snapshot(t, f)
	assert.Equal(t, game.Pos(5, 2), s.State.Players[0].Pos)
	assert.Equal(t, 2, s.Turn)

	require.NoError(t, conn.WriteJSON(gin.H{
		"action": "wall",
		"data":   gin.H{"player_id": rx.Seats[1].ID, "x": 5, "y": 3, "orientation": "horizontal"},
	}))
	s = snapshot(t, read(t, conn))
	assert.Equal(t, []game.Position{game.Pos(5, 3)}, s.State.Walls.Horizontal)
}

func TestHubReportsErrorsToSender(t *testing.T) {
	rm, _, srv := setup(t)
	rx, err := rm.CreateRoom(room.CreateRequest{Seats: []room.SeatRequest{{Name: "a"}, {Name: "b"}}})
	require.NoError(t, err)

	conn := dial(t, srv, rx.Code)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(gin.H{
		"action": "move",
		"data":   gin.H{"player_id": rx.Seats[1].ID, "x": 5, "y": 8},
	}))
	f := read(t, conn)
	assert.Equal(t, "error", f.Action)
	assert.Contains(t, string(f.Data), "not your turn")

	require.NoError(t, conn.WriteJSON(gin.H{"action": "dance"}))
	f = read(t, conn)
	assert.Equal(t, "error", f.Action)
	assert.Contains(t, string(f.Data), "unknown action")
}

func TestHubBotMoveDefaultsToSeatOnTurn(t *testing.T) {
	rm, _, srv := setup(t)
	rx, err := rm.CreateRoom(room.CreateRequest{Seats: []room.SeatRequest{{Bot: true}, {Bot: true}}})
	require.NoError(t, err)

	conn := dial(t, srv, rx.Code)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(gin.H{"action": "bot_move"}))
	s := snapshot(t, read(t, conn))
	assert.Equal(t, 1, s.Plies)
	assert.Equal(t, game.Pos(5, 2), s.State.Players[0].Pos)
}

func TestHubRejectsUnknownRoom(t *testing.T) {
	_, _, srv := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room_code=NOPE"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

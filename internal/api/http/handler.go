package http

import (
	"errors"
	"net/http"
	"strconv"

	"quoridor/internal/game"
	"quoridor/internal/room"
	"quoridor/internal/shared"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrUnknownPlayer):
		return http.StatusForbidden
	case errors.Is(err, room.ErrNotYourTurn), errors.Is(err, room.ErrNotBot), errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error(), "reason": room.Reason(err)})
}

func lookup(c *gin.Context, rm *room.Manager, code string) (*shared.Room, bool) {
	rx, ok := rm.Get(code)
	if !ok {
		fail(c, room.ErrRoomNotFound)
	}
	return rx, ok
}

func seatParam(c *gin.Context) (int, bool) {
	seat, err := strconv.Atoi(c.DefaultQuery("seat", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seat must be 1 or 2"})
		return 0, false
	}
	return seat, true
}

// @Summary Create new room
// @Description Seat two players, human or bot, optionally from a position in progress
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Seats and walls"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, err := rm.CreateRoom(req.toRoom())
		if err != nil {
			fail(c, err)
			return
		}
		snap := rm.State(rx)
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "seats": snap.Seats, "room": snap})
	}
}

// @Summary Room state
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} shared.Snapshot
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookup(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, rm.State(rx))
	}
}

// @Summary Get possible token moves for a seat
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param seat query int false "Seat (1 or 2)"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookup(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		seat, ok := seatParam(c)
		if !ok {
			return
		}
		moves, err := rm.LegalMoves(rx, seat)
		if err != nil {
			fail(c, err)
			return
		}
		if moves == nil {
			moves = []game.Position{}
		}
		c.JSON(http.StatusOK, gin.H{"seat": seat, "moves": moves})
	}
}

// @Summary Player moves their token
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		snap, err := rm.ApplyMove(rx, req.PlayerID, game.Pos(req.X, req.Y))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": snap})
	}
}

// @Summary Player places a wall
// @Tags Game
// @Accept json
// @Produce json
// @Param request body PlaceWallRequest true "Wall data"
// @Success 200 {object} map[string]interface{}
// @Router /place-wall [post]
func PlaceWallHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceWallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		snap, err := rm.PlaceWall(rx, req.PlayerID, game.Pos(req.X, req.Y), game.Orientation(req.Orientation))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": snap})
	}
}

// @Summary Let bot make its move
// @Description Bot picks its action with the shortest-path heuristic
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveBotRequest true "Bot move"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		a, snap, err := rm.BotMove(rx, req.BotID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"action": a, "room": snap})
	}
}

// @Summary Suggest an action
// @Description What the bot would play for the seat, without committing it
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param seat query int false "Seat (1 or 2)"
// @Success 200 {object} map[string]interface{}
// @Router /hint [get]
func HintHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookup(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		seat, ok := seatParam(c)
		if !ok {
			return
		}
		a, err := rm.Hint(rx, seat)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"seat": seat, "action": a})
	}
}

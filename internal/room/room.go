package room

import (
	"errors"
	"math/rand"
	"time"

	"quoridor/internal/game"
	"quoridor/internal/shared"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrUnknownPlayer = errors.New("player is not seated in this room")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotBot        = errors.New("seat is not driven by the bot")
	ErrBadSeats      = errors.New("a room needs exactly two seats")
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
	Len() int
}

// SeatRequest describes one seat at room creation. Walls and Pos default to
// the standard opening when nil.
type SeatRequest struct {
	Name  string
	Bot   bool
	Walls *int
	Pos   *game.Position
}

func (s SeatRequest) spec(seat int) game.PlayerSpec {
	if s.Walls == nil && s.Pos == nil {
		return game.Named(s.Name)
	}
	f := game.Full{Name: s.Name, Walls: game.MaxWalls, Pos: game.StartPosition(seat)}
	if s.Walls != nil {
		f.Walls = *s.Walls
	}
	if s.Pos != nil {
		f.Pos = *s.Pos
	}
	return f
}

type CreateRequest struct {
	Seats []SeatRequest
	Walls *game.WallLayout
}

func other(seat int) int { return game.PlayerCount + 1 - seat }

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

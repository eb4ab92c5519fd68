package game

import (
	"errors"
	"fmt"
)

var (
	ErrInit          = errors.New("invalid match setup")
	ErrInvalidPlayer = errors.New("player must be 1 or 2")
	ErrGameOver      = errors.New("game is already over")
	ErrIllegalMove   = errors.New("illegal move")

	ErrIllegalWall      = errors.New("illegal wall")
	ErrNoWallsLeft      = errors.New("no walls left")
	ErrOutOfBounds      = errors.New("wall out of bounds")
	ErrOverlap          = errors.New("wall overlaps an existing wall")
	ErrCrossingConflict = errors.New("wall crosses an existing wall")
	ErrBlocksPath       = errors.New("wall blocks every path to a goal")
)

// WallError reports why a wall was rejected. It matches both ErrIllegalWall
// and the specific reason under errors.Is.
type WallError struct {
	Wall   Wall
	Reason error
}

func (e *WallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Wall, e.Reason)
}

func (e *WallError) Unwrap() []error { return []error{ErrIllegalWall, e.Reason} }

func wallErr(w Wall, reason error) error {
	return &WallError{Wall: w, Reason: reason}
}

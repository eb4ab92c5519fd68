package game

import (
	"fmt"
)

// SelectMove picks seat's next action with a one-ply greedy rule: when the
// opponent is strictly closer to their goal, try to put a wall in front of
// them; otherwise, or when that wall is not allowed, step along the shortest
// path. The result depends only on s.
func SelectMove(s State, seat int) (Action, error) {
	if !validSeat(seat) {
		return Action{}, fmt.Errorf("%w: got %d", ErrInvalidPlayer, seat)
	}
	if _, over := s.Finished(); over {
		return Action{}, ErrGameOver
	}

	g := s.Graph()
	opp := opponent(seat)
	self, them := s.Player(seat).Pos, s.Player(opp).Pos

	dSelf, ok := g.Distance(self, seat)
	if !ok {
		return Action{}, fmt.Errorf("%w: seat %d has no path to goal", ErrIllegalMove, seat)
	}
	dOpp, ok := g.Distance(them, opp)

	if ok && dOpp-dSelf < 0 {
		if w, found := blockingWall(g, them, opp); found && CheckWall(s, seat, w) == nil {
			return WallAt(w.Pos, w.Orientation), nil
		}
	}

	next, ok := g.NextStep(self, seat)
	if !ok {
		return Action{}, fmt.Errorf("%w: seat %d has no step toward goal", ErrIllegalMove, seat)
	}
	return MoveTo(next), nil
}

// blockingWall proposes a wall across the first step of the opponent's
// shortest path.
func blockingWall(g *MoveGraph, from Position, seat int) (Wall, bool) {
	next, ok := g.NextStep(from, seat)
	if !ok {
		return Wall{}, false
	}

	if next.Y != from.Y {
		y := from.Y
		if next.Y > from.Y {
			y = from.Y + 1
		}
		return Wall{Orientation: Horizontal, Pos: Pos(clamp(from.X, 1, BoardSize-1), y)}, true
	}

	x := from.X
	if next.X > from.X {
		x = from.X + 1
	}
	return Wall{Orientation: Vertical, Pos: Pos(x, clamp(from.Y-1, 1, BoardSize-1))}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

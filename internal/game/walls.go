package game

// WallInBounds reports whether a wall anchor is inside its orientation's
// valid range.
func WallInBounds(w Wall) bool {
	p := w.Pos
	switch w.Orientation {
	case Horizontal:
		return p.X >= 1 && p.X <= BoardSize-1 && p.Y >= 2 && p.Y <= BoardSize
	case Vertical:
		return p.X >= 2 && p.X <= BoardSize && p.Y >= 1 && p.Y <= BoardSize-1
	}
	return false
}

// conflict checks w against the walls already in layout, ignoring the
// reachability rule. Two parallel walls on the same line overlap unless their
// anchors are at least a full wall length apart.
func conflict(layout WallLayout, w Wall) error {
	same, cross := layout.Horizontal, layout.Vertical
	crossAt := Pos(w.Pos.X+1, w.Pos.Y-1)
	if w.Orientation == Vertical {
		same, cross = layout.Vertical, layout.Horizontal
		crossAt = Pos(w.Pos.X-1, w.Pos.Y+1)
	}
	for _, o := range same {
		if w.Orientation == Horizontal && o.Y == w.Pos.Y && abs(o.X-w.Pos.X) < 2 {
			return ErrOverlap
		}
		if w.Orientation == Vertical && o.X == w.Pos.X && abs(o.Y-w.Pos.Y) < 2 {
			return ErrOverlap
		}
	}
	for _, o := range cross {
		if o == crossAt {
			return ErrCrossingConflict
		}
	}
	return nil
}

// CheckWall decides whether seat may place w on the board described by s.
// The cheap local rules run first; the graph is only rebuilt once they pass.
func CheckWall(s State, seat int, w Wall) error {
	if !validSeat(seat) {
		return ErrInvalidPlayer
	}
	if s.Player(seat).Walls <= 0 {
		return wallErr(w, ErrNoWallsLeft)
	}
	// An unknown orientation has no valid anchor either.
	if !WallInBounds(w) {
		return wallErr(w, ErrOutOfBounds)
	}
	if err := conflict(s.Walls, w); err != nil {
		return wallErr(w, err)
	}
	if !bothCanFinish(s.Positions(), s.Walls.With(w)) {
		return wallErr(w, ErrBlocksPath)
	}
	return nil
}

func bothCanFinish(players [PlayerCount]Position, layout WallLayout) bool {
	g := BuildGraph(players, layout.Horizontal, layout.Vertical)
	return g.HasPath(players[0], 1) && g.HasPath(players[1], 2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package game

import (
	"fmt"
)

// Match owns the authoritative state of one game. It is not safe for
// concurrent use; callers that share a Match must serialize access.
type Match struct {
	state State
}

// NewMatch creates a match from exactly two player specs, in seat order, and
// an optional wall layout. Supplied players and walls must be consistent
// with the 20-wall budget and leave both players a way to their goal.
func NewMatch(specs []PlayerSpec, walls *WallLayout) (*Match, error) {
	if len(specs) != PlayerCount {
		return nil, fmt.Errorf("%w: need %d players, got %d", ErrInit, PlayerCount, len(specs))
	}

	var st State
	for i, spec := range specs {
		if spec == nil {
			return nil, fmt.Errorf("%w: seat %d is empty", ErrInit, i+1)
		}
		p, err := spec.resolve(i + 1)
		if err != nil {
			return nil, err
		}
		st.Players[i] = p
	}
	if st.Players[0].Pos == st.Players[1].Pos {
		return nil, fmt.Errorf("%w: both players start on %s", ErrInit, st.Players[0].Pos)
	}

	st.Walls = WallLayout{Horizontal: []Position{}, Vertical: []Position{}}
	if walls != nil {
		if err := placeInitialWalls(&st, *walls); err != nil {
			return nil, err
		}
	}

	if total := st.Players[0].Walls + st.Players[1].Walls + st.Walls.Placed(); total != TotalWalls {
		return nil, fmt.Errorf("%w: %d walls in play, want %d", ErrInit, total, TotalWalls)
	}
	if !bothCanFinish(st.Positions(), st.Walls) {
		return nil, fmt.Errorf("%w: a player has no path to their goal row", ErrInit)
	}
	return &Match{state: st}, nil
}

func placeInitialWalls(st *State, layout WallLayout) error {
	add := func(o Orientation, positions []Position) error {
		for _, p := range positions {
			w := Wall{Orientation: o, Pos: p}
			if !WallInBounds(w) {
				return fmt.Errorf("%w: %s is out of bounds", ErrInit, w)
			}
			if err := conflict(st.Walls, w); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInit, w, err)
			}
			st.Walls = st.Walls.With(w)
		}
		return nil
	}
	if err := add(Horizontal, layout.Horizontal); err != nil {
		return err
	}
	return add(Vertical, layout.Vertical)
}

// NewStandardMatch starts a fresh game between two named players.
func NewStandardMatch(first, second string) (*Match, error) {
	return NewMatch([]PlayerSpec{Named(first), Named(second)}, nil)
}

// FromState rebuilds a match from a snapshot, validating it the same way
// NewMatch does.
func FromState(s State) (*Match, error) {
	specs := []PlayerSpec{
		Full{Name: s.Players[0].Name, Walls: s.Players[0].Walls, Pos: s.Players[0].Pos},
		Full{Name: s.Players[1].Name, Walls: s.Players[1].Walls, Pos: s.Players[1].Pos},
	}
	walls := s.Walls.Clone()
	return NewMatch(specs, &walls)
}

// State returns a deep copy of the match state.
func (m *Match) State() State { return m.state.Clone() }

// Graph builds the move graph for the current position.
func (m *Match) Graph() *MoveGraph { return m.state.Graph() }

func (m *Match) ready(seat int) error {
	if !validSeat(seat) {
		return fmt.Errorf("%w: got %d", ErrInvalidPlayer, seat)
	}
	if _, over := m.Finished(); over {
		return ErrGameOver
	}
	return nil
}

// LegalMoves lists the cells seat's token may move to.
func (m *Match) LegalMoves(seat int) ([]Position, error) {
	if !validSeat(seat) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayer, seat)
	}
	return m.Graph().Successors(m.state.Player(seat).Pos), nil
}

// MoveToken moves seat's token to target, which must be a one-ply
// destination in the current move graph.
func (m *Match) MoveToken(seat int, target Position) error {
	if err := m.ready(seat); err != nil {
		return err
	}
	from := m.state.Player(seat).Pos
	if !target.InBoard() {
		return fmt.Errorf("%w: %s is off the board", ErrIllegalMove, target)
	}
	if !m.Graph().HasEdge(from, target) {
		return fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, from, target)
	}
	m.state.Players[seat-1].Pos = target
	return nil
}

// CheckWall reports whether seat could place a wall at pos right now.
func (m *Match) CheckWall(seat int, pos Position, o Orientation) error {
	if err := m.ready(seat); err != nil {
		return err
	}
	return CheckWall(m.state, seat, Wall{Orientation: o, Pos: pos})
}

// PlaceWall puts one of seat's walls on the board.
func (m *Match) PlaceWall(seat int, pos Position, o Orientation) error {
	if err := m.CheckWall(seat, pos, o); err != nil {
		return err
	}
	m.state.Walls = m.state.Walls.With(Wall{Orientation: o, Pos: pos})
	m.state.Players[seat-1].Walls--
	return nil
}

// Apply commits an action for seat.
func (m *Match) Apply(seat int, a Action) error {
	switch a.Kind {
	case ActionMove:
		return m.MoveToken(seat, a.Pos)
	case ActionWall:
		return m.PlaceWall(seat, a.Pos, a.Orientation)
	}
	return fmt.Errorf("%w: unknown action kind %q", ErrIllegalMove, a.Kind)
}

// PlayBest lets the selector choose seat's action and commits it.
func (m *Match) PlayBest(seat int) (Action, error) {
	if err := m.ready(seat); err != nil {
		return Action{}, err
	}
	a, err := SelectMove(m.state, seat)
	if err != nil {
		return Action{}, err
	}
	if err := m.Apply(seat, a); err != nil {
		return Action{}, fmt.Errorf("selected %s: %w", a, err)
	}
	return a, nil
}

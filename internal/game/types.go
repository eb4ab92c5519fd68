package game

import (
	"encoding/json"
	"fmt"
)

const (
	BoardSize   = 9
	MaxWalls    = 10
	TotalWalls  = 2 * MaxWalls
	PlayerCount = 2
)

// Position is a board cell, 1-indexed on both axes.
type Position struct {
	X int
	Y int
}

func Pos(x, y int) Position { return Position{X: x, Y: y} }

func (p Position) InBoard() bool {
	return p.X >= 1 && p.X <= BoardSize && p.Y >= 1 && p.Y <= BoardSize
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// MarshalJSON encodes a position as the pair [x, y].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var xy []int
	if err := json.Unmarshal(b, &xy); err != nil {
		return fmt.Errorf("position must be an [x, y] pair: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("position must be an [x, y] pair, got %d values", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func (o Orientation) Valid() bool { return o == Horizontal || o == Vertical }

// Wall is anchored on its lower-left cell. A horizontal wall at (x,y) lies
// between rows y-1 and y over columns x and x+1; a vertical wall at (x,y)
// lies between columns x-1 and x over rows y and y+1.
type Wall struct {
	Orientation Orientation `json:"orientation"`
	Pos         Position    `json:"pos"`
}

func (w Wall) String() string { return fmt.Sprintf("%s wall at %s", w.Orientation, w.Pos) }

type Player struct {
	Name  string   `json:"name"`
	Walls int      `json:"walls"`
	Pos   Position `json:"pos"`
}

type WallLayout struct {
	Horizontal []Position `json:"horizontal"`
	Vertical   []Position `json:"vertical"`
}

func (l WallLayout) Placed() int { return len(l.Horizontal) + len(l.Vertical) }

func (l WallLayout) Clone() WallLayout {
	return WallLayout{
		Horizontal: append([]Position{}, l.Horizontal...),
		Vertical:   append([]Position{}, l.Vertical...),
	}
}

// With returns a copy of the layout with w added.
func (l WallLayout) With(w Wall) WallLayout {
	out := l.Clone()
	if w.Orientation == Horizontal {
		out.Horizontal = append(out.Horizontal, w.Pos)
	} else {
		out.Vertical = append(out.Vertical, w.Pos)
	}
	return out
}

// State is a plain snapshot of a match: both players in seat order and the
// walls already on the board.
type State struct {
	Players [PlayerCount]Player `json:"players"`
	Walls   WallLayout          `json:"walls"`
}

func (s State) Clone() State {
	return State{Players: s.Players, Walls: s.Walls.Clone()}
}

func (s State) Positions() [PlayerCount]Position {
	return [PlayerCount]Position{s.Players[0].Pos, s.Players[1].Pos}
}

// Player returns the player sitting in seat (1 or 2).
func (s State) Player(seat int) Player { return s.Players[seat-1] }

func (s State) Graph() *MoveGraph {
	return BuildGraph(s.Positions(), s.Walls.Horizontal, s.Walls.Vertical)
}

type ActionKind string

const (
	ActionMove ActionKind = "move"
	ActionWall ActionKind = "wall"
)

// Action is either a token move to Pos or a wall of the given orientation
// anchored at Pos.
type Action struct {
	Kind        ActionKind  `json:"kind"`
	Pos         Position    `json:"pos"`
	Orientation Orientation `json:"orientation,omitempty"`
}

func MoveTo(p Position) Action { return Action{Kind: ActionMove, Pos: p} }

func WallAt(p Position, o Orientation) Action {
	return Action{Kind: ActionWall, Pos: p, Orientation: o}
}

func (a Action) String() string {
	if a.Kind == ActionWall {
		return Wall{Orientation: a.Orientation, Pos: a.Pos}.String()
	}
	return "move to " + a.Pos.String()
}

// PlayerSpec describes a seat at match creation: either Named or Full.
type PlayerSpec interface {
	resolve(seat int) (Player, error)
}

// Named is a bare player name; the seat decides the start cell and the
// player gets the full wall allowance.
type Named string

func (n Named) resolve(seat int) (Player, error) {
	if n == "" {
		return Player{}, fmt.Errorf("%w: seat %d has an empty name", ErrInit, seat)
	}
	return Player{Name: string(n), Walls: MaxWalls, Pos: StartPosition(seat)}, nil
}

// Full is an explicit player record, used to resume a match in progress.
type Full struct {
	Name  string
	Walls int
	Pos   Position
}

func (f Full) resolve(seat int) (Player, error) {
	if f.Name == "" {
		return Player{}, fmt.Errorf("%w: seat %d has an empty name", ErrInit, seat)
	}
	if f.Walls < 0 || f.Walls > MaxWalls {
		return Player{}, fmt.Errorf("%w: %s has %d walls, want 0..%d", ErrInit, f.Name, f.Walls, MaxWalls)
	}
	if !f.Pos.InBoard() {
		return Player{}, fmt.Errorf("%w: %s is off the board at %s", ErrInit, f.Name, f.Pos)
	}
	return Player{Name: f.Name, Walls: f.Walls, Pos: f.Pos}, nil
}

// StartPosition is where a Named player in seat begins.
func StartPosition(seat int) Position {
	if seat == 2 {
		return Pos(5, BoardSize)
	}
	return Pos(5, 1)
}

// GoalRow is the row a seat must reach to win.
func GoalRow(seat int) int {
	if seat == 2 {
		return 1
	}
	return BoardSize
}

func validSeat(seat int) bool { return seat == 1 || seat == 2 }

func opponent(seat int) int { return 3 - seat }

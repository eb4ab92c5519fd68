package game

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Node ids: cells are numbered row by row from (1,1); the two goal sinks
// follow the last cell.
const (
	cellCount = BoardSize * BoardSize
	sinkSeat1 = int64(cellCount)
	sinkSeat2 = int64(cellCount + 1)
)

func nodeID(p Position) int64 { return int64((p.Y-1)*BoardSize + (p.X - 1)) }

func nodePos(id int64) Position {
	return Position{X: int(id%BoardSize) + 1, Y: int(id/BoardSize) + 1}
}

func isSink(id int64) bool { return id >= cellCount }

// GoalNode is the sink a seat's token drains into once it stands on its goal row.
func GoalNode(seat int) int64 {
	if seat == 2 {
		return sinkSeat2
	}
	return sinkSeat1
}

// MoveGraph holds every legal single-ply token destination for one board
// layout. It is built once and never modified afterwards.
type MoveGraph struct {
	g *simple.DirectedGraph
}

// BuildGraph derives the move graph from both token positions and the placed
// walls. Jumps over an adjacent token are straight when the cell behind it is
// free and reachable, diagonal otherwise.
func BuildGraph(players [PlayerCount]Position, horizontal, vertical []Position) *MoveGraph {
	g := simple.NewDirectedGraph()

	for y := 1; y <= BoardSize; y++ {
		for x := 1; x <= BoardSize; x++ {
			from := Pos(x, y)
			if x > 1 {
				link(g, from, Pos(x-1, y))
			}
			if x < BoardSize {
				link(g, from, Pos(x+1, y))
			}
			if y > 1 {
				link(g, from, Pos(x, y-1))
			}
			if y < BoardSize {
				link(g, from, Pos(x, y+1))
			}
		}
	}

	for _, w := range horizontal {
		cut(g, Pos(w.X, w.Y-1), Pos(w.X, w.Y))
		cut(g, Pos(w.X+1, w.Y-1), Pos(w.X+1, w.Y))
	}
	for _, w := range vertical {
		cut(g, Pos(w.X-1, w.Y), Pos(w.X, w.Y))
		cut(g, Pos(w.X-1, w.Y+1), Pos(w.X, w.Y+1))
	}

	occupied := func(p Position) bool { return p == players[0] || p == players[1] }
	for _, token := range players {
		tid := nodeID(token)
		for _, pred := range graph.NodesOf(g.To(tid)) {
			g.RemoveEdge(pred.ID(), tid)
			from := nodePos(pred.ID())

			behind := Pos(2*token.X-from.X, 2*token.Y-from.Y)
			if behind.InBoard() && g.HasEdgeFromTo(tid, nodeID(behind)) && !occupied(behind) {
				link(g, from, behind)
				continue
			}
			for _, succ := range graph.NodesOf(g.From(tid)) {
				side := nodePos(succ.ID())
				if side != from && !occupied(side) {
					link(g, from, side)
				}
			}
		}
	}

	for x := 1; x <= BoardSize; x++ {
		g.SetEdge(simple.Edge{F: simple.Node(nodeID(Pos(x, GoalRow(1)))), T: simple.Node(sinkSeat1)})
		g.SetEdge(simple.Edge{F: simple.Node(nodeID(Pos(x, GoalRow(2)))), T: simple.Node(sinkSeat2)})
	}

	return &MoveGraph{g: g}
}

func link(g *simple.DirectedGraph, from, to Position) {
	g.SetEdge(simple.Edge{F: simple.Node(nodeID(from)), T: simple.Node(nodeID(to))})
}

// cut removes both directions of the edge between two adjacent cells.
func cut(g *simple.DirectedGraph, a, b Position) {
	if !a.InBoard() || !b.InBoard() {
		return
	}
	g.RemoveEdge(nodeID(a), nodeID(b))
	g.RemoveEdge(nodeID(b), nodeID(a))
}

// HasEdge reports whether a token on a can reach b in one ply.
func (m *MoveGraph) HasEdge(a, b Position) bool {
	if !a.InBoard() || !b.InBoard() {
		return false
	}
	return m.g.HasEdgeFromTo(nodeID(a), nodeID(b))
}

// Successors lists the cells reachable from p in one ply, in node order.
func (m *MoveGraph) Successors(p Position) []Position {
	if !p.InBoard() {
		return nil
	}
	ids := m.successorIDs(nodeID(p))
	out := make([]Position, 0, len(ids))
	for _, id := range ids {
		if !isSink(id) {
			out = append(out, nodePos(id))
		}
	}
	return out
}

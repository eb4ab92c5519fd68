package game

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func (m *MoveGraph) successorIDs(id int64) []int64 {
	nodes := graph.NodesOf(m.g.From(id))
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// distanceTo is the edge count of the shortest path from node id to target,
// or -1 when target cannot be reached.
func (m *MoveGraph) distanceTo(id, target int64) int {
	if id == target {
		return 0
	}
	w := path.DijkstraFrom(simple.Node(id), m.g).WeightTo(target)
	if math.IsInf(w, 1) {
		return -1
	}
	return int(w)
}

// Distance is the number of plies, goal sink included, a token on from needs
// to finish for seat. ok is false when the goal is unreachable.
func (m *MoveGraph) Distance(from Position, seat int) (int, bool) {
	if !from.InBoard() {
		return 0, false
	}
	d := m.distanceTo(nodeID(from), GoalNode(seat))
	return d, d >= 0
}

// HasPath reports whether seat can still reach its goal row from from.
func (m *MoveGraph) HasPath(from Position, seat int) bool {
	_, ok := m.Distance(from, seat)
	return ok
}

// NextStep is the first cell of the shortest path from from to seat's goal.
// Among equally short paths the lowest successor in node order wins, so the
// answer is stable for a given layout. ok is false when no path exists or the
// token is already on its goal row.
func (m *MoveGraph) NextStep(from Position, seat int) (Position, bool) {
	steps := m.walk(from, seat, 1)
	if len(steps) == 0 {
		return Position{}, false
	}
	return steps[0], true
}

// ShortestPath lists the cells of the shortest path from from to seat's goal
// row, excluding from itself and the sink.
func (m *MoveGraph) ShortestPath(from Position, seat int) []Position {
	return m.walk(from, seat, -1)
}

func (m *MoveGraph) walk(from Position, seat int, limit int) []Position {
	if !from.InBoard() {
		return nil
	}
	goal := GoalNode(seat)
	cur := nodeID(from)
	d := m.distanceTo(cur, goal)
	if d < 0 {
		return nil
	}
	var out []Position
	for d > 1 && (limit < 0 || len(out) < limit) {
		next := int64(-1)
		for _, id := range m.successorIDs(cur) {
			if isSink(id) {
				continue
			}
			if m.distanceTo(id, goal) == d-1 {
				next = id
				break
			}
		}
		if next < 0 {
			return out
		}
		out = append(out, nodePos(next))
		cur = next
		d--
	}
	return out
}

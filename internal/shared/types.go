package shared

import (
	"sync"
	"time"

	"quoridor/internal/game"
)

// Room is one live match. Callers hold the room lock while touching Match
// or Turn.
type Room struct {
	mu sync.Mutex

	Code      string
	Match     *game.Match
	Seats     [game.PlayerCount]Seat
	Turn      int
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Seat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"isBot"`
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// SeatOf maps a player ID to its seat number.
func (r *Room) SeatOf(playerID string) (int, bool) {
	for i, s := range r.Seats {
		if s.ID == playerID {
			return i + 1, true
		}
	}
	return 0, false
}

// Seat returns the seat record for seat 1 or 2.
func (r *Room) Seat(seat int) Seat { return r.Seats[seat-1] }

// Snapshot is the wire form of a room, taken under the room lock.
type Snapshot struct {
	Code      string                 `json:"code"`
	State     game.State             `json:"state"`
	Seats     [game.PlayerCount]Seat `json:"seats"`
	Turn      int                    `json:"turn"`
	Plies     int                    `json:"plies"`
	Finished  bool                   `json:"finished"`
	Winner    *Seat                  `json:"winner,omitempty"`
	Distances [game.PlayerCount]int  `json:"distances"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func (r *Room) Snapshot() Snapshot {
	s := r.Match.State()
	snap := Snapshot{
		Code:      r.Code,
		State:     s,
		Seats:     r.Seats,
		Turn:      r.Turn,
		Plies:     r.Plies,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if seat, over := s.Finished(); over {
		w := r.Seat(seat)
		snap.Finished = true
		snap.Winner = &w
	}

	g := s.Graph()
	for seat := 1; seat <= game.PlayerCount; seat++ {
		d, ok := g.Distance(s.Player(seat).Pos, seat)
		if !ok {
			snap.Distances[seat-1] = -1
			continue
		}
		// The last hop is onto the goal sink, not a real step.
		snap.Distances[seat-1] = d - 1
	}
	return snap
}

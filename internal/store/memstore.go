package store

import (
	"fmt"

	"quoridor/internal/shared"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore keeps the most recently used rooms. When full, the least
// recently touched room is dropped and onEvict is told its code.
type MemoryStore struct {
	rooms *lru.Cache[string, *shared.Room]
}

func NewMemoryStore(size int, onEvict func(code string)) (*MemoryStore, error) {
	cb := func(code string, _ *shared.Room) {
		if onEvict != nil {
			onEvict(code)
		}
	}
	c, err := lru.NewWithEvict[string, *shared.Room](size, cb)
	if err != nil {
		return nil, fmt.Errorf("room cache: %w", err)
	}
	return &MemoryStore{rooms: c}, nil
}

func (m *MemoryStore) GetRoom(code string) (*shared.Room, bool) {
	return m.rooms.Get(code)
}

func (m *MemoryStore) SaveRoom(r *shared.Room) {
	m.rooms.Add(r.Code, r)
}

func (m *MemoryStore) Len() int { return m.rooms.Len() }

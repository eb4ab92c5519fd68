package ws

import (
	"quoridor/internal/game"
	"quoridor/internal/shared"
)

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	State(r *shared.Room) shared.Snapshot
	ApplyMove(r *shared.Room, playerID string, to game.Position) (shared.Snapshot, error)
	PlaceWall(r *shared.Room, playerID string, at game.Position, o game.Orientation) (shared.Snapshot, error)
	BotMove(r *shared.Room, botID string) (game.Action, shared.Snapshot, error)
}

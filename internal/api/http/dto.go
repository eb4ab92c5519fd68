package http

import (
	"quoridor/internal/game"
	"quoridor/internal/room"
)

// SeatRequest is one seat of /create-room. Walls and pos resume a match in
// progress; omit both for the standard opening.
type SeatRequest struct {
	Name  string         `json:"name"`
	Bot   bool           `json:"bot"`
	Walls *int           `json:"walls,omitempty" binding:"omitempty,min=0,max=10"`
	Pos   *game.Position `json:"pos,omitempty"`
}

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	Players []SeatRequest    `json:"players" binding:"required,len=2,dive"`
	Walls   *game.WallLayout `json:"walls,omitempty"`
}

func (r CreateRoomRequest) toRoom() room.CreateRequest {
	out := room.CreateRequest{Walls: r.Walls}
	for _, p := range r.Players {
		out.Seats = append(out.Seats, room.SeatRequest{Name: p.Name, Bot: p.Bot, Walls: p.Walls, Pos: p.Pos})
	}
	return out
}

// MoveRequest represents a token move.
type MoveRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// PlaceWallRequest represents a wall placement.
type PlaceWallRequest struct {
	RoomCode    string `json:"roomCode" binding:"required"`
	PlayerID    string `json:"playerId" binding:"required"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation" binding:"required,oneof=horizontal vertical"`
}

// MoveBotRequest represents a bot move.
type MoveBotRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	BotID    string `json:"botId" binding:"required"`
}

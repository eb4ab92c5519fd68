package room

// Broadcaster fans a room event out to its live clients.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

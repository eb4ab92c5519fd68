package game

// OnGoal reports whether seat's token stands on its goal row in s.
func (s State) OnGoal(seat int) bool {
	return s.Player(seat).Pos.Y == GoalRow(seat)
}

// Finished returns the winning seat, looking only at the current positions.
func (s State) Finished() (int, bool) {
	for seat := 1; seat <= PlayerCount; seat++ {
		if s.OnGoal(seat) {
			return seat, true
		}
	}
	return 0, false
}

// Finished returns the winning seat, if any. It is recomputed on every call.
func (m *Match) Finished() (int, bool) { return m.state.Finished() }

// Winner returns the winning player's name, if any.
func (m *Match) Winner() (string, bool) {
	seat, ok := m.Finished()
	if !ok {
		return "", false
	}
	return m.state.Player(seat).Name, true
}

package game9x9

import (
	"context"
	"errors"
	"fmt"

	"quoridor/internal/game"
	"quoridor/internal/remote"
)

// Outcome is the board after a full round, with the winner's name once
// someone has reached their goal row.
type Outcome struct {
	State  game.State
	Winner string
}

// Table is the other side of a session: it takes the human's action and
// answers with its own.
type Table interface {
	State() game.State
	Legend() [game.PlayerCount]string
	Play(ctx context.Context, a game.Action) (Outcome, error)
}

// LocalTable seats the human in seat 1 against the in-process bot.
type LocalTable struct {
	match *game.Match
	pick  func(game.State, int) (game.Action, error)
}

func NewLocalTable(human, bot string) (*LocalTable, error) {
	m, err := game.NewStandardMatch(human, bot)
	if err != nil {
		return nil, err
	}
	return &LocalTable{match: m, pick: game.SelectMove}, nil
}

func (t *LocalTable) State() game.State { return t.match.State() }

func (t *LocalTable) Legend() [game.PlayerCount]string {
	s := t.match.State()
	return [game.PlayerCount]string{s.Players[0].Name, s.Players[1].Name}
}

func (t *LocalTable) Play(_ context.Context, a game.Action) (Outcome, error) {
	if err := t.match.Apply(1, a); err != nil {
		return Outcome{}, err
	}
	if winner, over := t.match.Winner(); over {
		return Outcome{State: t.match.State(), Winner: winner}, nil
	}
	a, err := t.pick(t.match.State(), 2)
	if err == nil {
		err = t.match.Apply(2, a)
	}
	if err != nil {
		return Outcome{State: t.match.State()}, fmt.Errorf("%w: %v", ErrBotTurn, err)
	}
	winner, _ := t.match.Winner()
	return Outcome{State: t.match.State(), Winner: winner}, nil
}

// RemoteTable plays against the game server's bot.
type RemoteTable struct {
	client *remote.Client
	id     string
	state  game.State
}

func StartRemote(ctx context.Context, c *remote.Client, idul string) (*RemoteTable, error) {
	id, s, err := c.Start(ctx, idul)
	if err != nil {
		return nil, err
	}
	return &RemoteTable{client: c, id: id, state: s}, nil
}

func (t *RemoteTable) ID() string { return t.id }

func (t *RemoteTable) State() game.State { return t.state.Clone() }

func (t *RemoteTable) Legend() [game.PlayerCount]string {
	return [game.PlayerCount]string{t.state.Players[0].Name, t.state.Players[1].Name}
}

func (t *RemoteTable) Play(ctx context.Context, a game.Action) (Outcome, error) {
	s, err := t.client.Play(ctx, t.id, a)
	var over *remote.GameOverError
	if errors.As(err, &over) {
		return Outcome{State: t.state.Clone(), Winner: over.Winner}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	t.state = s
	return Outcome{State: s.Clone()}, nil
}

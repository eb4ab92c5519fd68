package game9x9

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quoridor/internal/game"
	"quoridor/internal/remote"
)

var (
	ErrBadKind     = errors.New("move type must be D, MH or MV")
	ErrBadPosition = errors.New(`position must look like "x, y"`)
	ErrCancelled   = errors.New("game cancelled")
	// ErrBotTurn ends a local game: the human's move stands but the bot
	// could not answer it.
	ErrBotTurn     = errors.New("bot could not play its turn")
)

// ParseAction reads the prompt answers: D moves the token, MH and MV place
// a horizontal or vertical wall.
func ParseAction(kind, pos string) (game.Action, error) {
	parts := strings.Split(pos, ",")
	if len(parts) != 2 {
		return game.Action{}, ErrBadPosition
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return game.Action{}, ErrBadPosition
	}
	p := game.Pos(x, y)

	switch strings.ToUpper(strings.TrimSpace(kind)) {
	case "D":
		return game.MoveTo(p), nil
	case "MH":
		return game.WallAt(p, game.Horizontal), nil
	case "MV":
		return game.WallAt(p, game.Vertical), nil
	}
	return game.Action{}, ErrBadKind
}

type Session struct {
	table Table
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(t Table, in io.Reader, out io.Writer) *Session {
	return &Session{table: t, in: bufio.NewScanner(in), out: out}
}

func (s *Session) prompt(q string) (string, error) {
	fmt.Fprint(s.out, q)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", ErrCancelled
	}
	return s.in.Text(), nil
}

// Run loops until someone wins or input runs out. Rejected actions are
// reported and asked again; transport failures and a bot that cannot
// answer end the session.
func (s *Session) Run(ctx context.Context) (string, error) {
	legend := s.table.Legend()
	fmt.Fprint(s.out, Render(s.table.State(), legend))

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		kind, err := s.prompt("Move type (D, MH or MV): ")
		if err != nil {
			return "", err
		}
		pos, err := s.prompt(`Position as "x, y": `)
		if err != nil {
			return "", err
		}

		a, err := ParseAction(kind, pos)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		out, err := s.table.Play(ctx, a)
		switch {
		case errors.Is(err, remote.ErrTransport), errors.Is(err, ErrBotTurn):
			return "", err
		case err != nil:
			fmt.Fprintln(s.out, err)
			continue
		}

		fmt.Fprint(s.out, Render(out.State, legend))
		if out.Winner != "" {
			fmt.Fprintf(s.out, "%s won the game!\n", out.Winner)
			return out.Winner, nil
		}
	}
}

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quoridor/internal/game"

	"go.uber.org/zap"
)

var (
	ErrServer    = errors.New("server refused the request")
	ErrTransport = errors.New("request to game server failed")
)

// GameOverError is returned by Play once the server names a winner.
type GameOverError struct {
	Winner string
}

func (e *GameOverError) Error() string { return e.Winner + " won the game" }

// Client talks to the course game server. Field names on the wire are the
// server's own.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

type wirePlayer struct {
	Name  string        `json:"nom"`
	Walls int           `json:"murs"`
	Pos   game.Position `json:"pos"`
}

type wireState struct {
	Players []wirePlayer `json:"joueurs"`
	Walls   struct {
		Horizontal []game.Position `json:"horizontaux"`
		Vertical   []game.Position `json:"verticaux"`
	} `json:"murs"`
}

func (w wireState) state() (game.State, error) {
	var s game.State
	if len(w.Players) != game.PlayerCount {
		return s, fmt.Errorf("%w: server sent %d players", ErrTransport, len(w.Players))
	}
	for i, p := range w.Players {
		s.Players[i] = game.Player{Name: p.Name, Walls: p.Walls, Pos: p.Pos}
	}
	s.Walls = game.WallLayout{Horizontal: w.Walls.Horizontal, Vertical: w.Walls.Vertical}.Clone()
	return s, nil
}

type reply struct {
	Message *string                  `json:"message"`
	Winner  *string                  `json:"gagnant"`
	ID      string                   `json:"id"`
	State   *wireState               `json:"état"`
	Games   []map[string]interface{} `json:"parties"`
}

// List returns the player's latest games as the server describes them.
func (c *Client) List(ctx context.Context, idul string) ([]map[string]interface{}, error) {
	var r reply
	if err := c.do(ctx, http.MethodGet, "lister/", url.Values{"idul": {idul}}, &r); err != nil {
		return nil, err
	}
	return r.Games, nil
}

// Start opens a new game against the server's bot.
func (c *Client) Start(ctx context.Context, idul string) (string, game.State, error) {
	var r reply
	if err := c.do(ctx, http.MethodPost, "débuter/", url.Values{"idul": {idul}}, &r); err != nil {
		return "", game.State{}, err
	}
	if r.State == nil {
		return "", game.State{}, fmt.Errorf("%w: no state in reply", ErrTransport)
	}
	s, err := r.State.state()
	return r.ID, s, err
}

// Play sends one action and returns the state after the server's reply.
func (c *Client) Play(ctx context.Context, gameID string, a game.Action) (game.State, error) {
	kind, err := Kind(a)
	if err != nil {
		return game.State{}, err
	}
	form := url.Values{
		"id":   {gameID},
		"type": {kind},
		"pos":  {strconv.Itoa(a.Pos.X), strconv.Itoa(a.Pos.Y)},
	}

	var r reply
	if err := c.do(ctx, http.MethodPost, "jouer/", form, &r); err != nil {
		return game.State{}, err
	}
	if r.Winner != nil {
		return game.State{}, &GameOverError{Winner: *r.Winner}
	}
	if r.State == nil {
		return game.State{}, fmt.Errorf("%w: no state in reply", ErrTransport)
	}
	return r.State.state()
}

// Kind maps an action onto the server's move codes.
func Kind(a game.Action) (string, error) {
	switch {
	case a.Kind == game.ActionMove:
		return "D", nil
	case a.Kind == game.ActionWall && a.Orientation == game.Horizontal:
		return "MH", nil
	case a.Kind == game.ActionWall && a.Orientation == game.Vertical:
		return "MV", nil
	}
	return "", fmt.Errorf("%w: cannot send %s", game.ErrIllegalMove, a)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, out *reply) error {
	u, err := url.JoinPath(c.base, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var req *http.Request
	if method == http.MethodGet {
		req, err = http.NewRequestWithContext(ctx, method, u+"?"+params.Encode(), nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()
	c.log.Debug("remote call",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrTransport, endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrTransport, endpoint, err)
	}
	if out.Message != nil {
		return fmt.Errorf("%w: %s", ErrServer, *out.Message)
	}
	return nil
}

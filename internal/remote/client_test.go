package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quoridor/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const opening = `{"joueurs":[{"nom":"alice","murs":10,"pos":[5,1]},{"nom":"robot","murs":10,"pos":[5,9]}],
"murs":{"horizontaux":[],"verticaux":[]}}`

func fakeServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/quoridor/api/", time.Second, nil)
}

func TestStart(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quoridor/api/débuter/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("idul"))
		_, _ = w.Write([]byte(`{"id":"g-1","état":` + opening + `}`))
	})

	id, s, err := c.Start(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "g-1", id)
	assert.Equal(t, "alice", s.Players[0].Name)
	assert.Equal(t, game.Pos(5, 9), s.Players[1].Pos)
	assert.NotNil(t, s.Walls.Horizontal)
}

func TestPlaySendsMoveCodes(t *testing.T) {
	var got []string
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quoridor/api/jouer/", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "g-1", r.PostForm.Get("id"))
		assert.Equal(t, []string{"4", "6"}, r.PostForm["pos"])
		got = append(got, r.PostForm.Get("type"))
		_, _ = w.Write([]byte(`{"état":` + opening + `}`))
	})

	for _, a := range []game.Action{
		game.MoveTo(game.Pos(4, 6)),
		game.WallAt(game.Pos(4, 6), game.Horizontal),
		game.WallAt(game.Pos(4, 6), game.Vertical),
	} {
		_, err := c.Play(context.Background(), "g-1", a)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"D", "MH", "MV"}, got)
}

func TestPlayWinner(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"gagnant": "robot"})
	})

	_, err := c.Play(context.Background(), "g-1", game.MoveTo(game.Pos(5, 2)))
	var over *GameOverError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, "robot", over.Winner)
}

func TestServerMessageIsAnError(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Coup invalide"})
	})

	_, err := c.Play(context.Background(), "g-1", game.MoveTo(game.Pos(5, 2)))
	assert.ErrorIs(t, err, ErrServer)
	assert.ErrorContains(t, err, "Coup invalide")
}

func TestHTTPErrorIsTransport(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := c.Start(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorContains(t, err, "502")
}

func TestList(t *testing.T) {
	c := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quoridor/api/lister/", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("idul"))
		_, _ = w.Write([]byte(`{"parties":[{"id":"g-1"},{"id":"g-2"}]}`))
	})

	games, err := c.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "g-2", games[1]["id"])
}

func TestKindRejectsUnknownAction(t *testing.T) {
	_, err := Kind(game.Action{Kind: "jump"})
	assert.True(t, errors.Is(err, game.ErrIllegalMove))
}

package room

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"quoridor/internal/config"
	"quoridor/internal/game"
	"quoridor/internal/metrics"
	"quoridor/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Manager struct {
	store   Store
	cfg     config.Config
	hub     Broadcaster
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewManager(s Store, cfg config.Config, log *zap.Logger, mt *metrics.Metrics) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if mt == nil {
		mt = metrics.Nop()
	}
	return &Manager{store: s, cfg: cfg, log: log, metrics: mt}
}

// SetHub attaches the broadcaster after construction; the hub itself needs
// the manager.
func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// CreateRoom starts a match for two seats. Seat 1 moves first; when it is
// a bot facing a human, the bot opens right away.
func (m *Manager) CreateRoom(req CreateRequest) (*shared.Room, error) {
	if len(req.Seats) != game.PlayerCount {
		return nil, fmt.Errorf("%w: got %d", ErrBadSeats, len(req.Seats))
	}

	specs := make([]game.PlayerSpec, 0, game.PlayerCount)
	var seats [game.PlayerCount]shared.Seat
	for i, sr := range req.Seats {
		if sr.Bot && sr.Name == "" {
			sr.Name = m.cfg.BotName
		}
		specs = append(specs, sr.spec(i+1))

		id := uuid.NewString()
		if sr.Bot {
			id = "bot-" + id
		}
		seats[i] = shared.Seat{ID: id, Name: sr.Name, IsBot: sr.Bot}
	}

	match, err := game.NewMatch(specs, req.Walls)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	r := &shared.Room{
		Code:      m.newCode(),
		Match:     match,
		Seats:     seats,
		Turn:      1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.Lock()
	m.reply(r)
	r.Unlock()

	m.store.SaveRoom(r)
	m.metrics.RoomsCreated.Inc()
	m.metrics.ActiveRooms.Set(float64(m.store.Len()))
	m.log.Info("room created",
		zap.String("room", r.Code),
		zap.String("seat1", seats[0].Name),
		zap.String("seat2", seats[1].Name),
		zap.Bool("bot1", seats[0].IsBot),
		zap.Bool("bot2", seats[1].IsBot),
	)
	return r, nil
}

func (m *Manager) newCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// Evicted records that the store dropped a room.
func (m *Manager) Evicted(code string) {
	m.metrics.RoomsEvicted.Inc()
	m.log.Info("room evicted", zap.String("room", code))
}

// State snapshots a room.
func (m *Manager) State(r *shared.Room) shared.Snapshot {
	r.Lock()
	defer r.Unlock()
	return r.Snapshot()
}

func (m *Manager) LegalMoves(r *shared.Room, seat int) ([]game.Position, error) {
	r.Lock()
	defer r.Unlock()
	return r.Match.LegalMoves(seat)
}

// Hint returns what the bot would play for seat without committing it.
func (m *Manager) Hint(r *shared.Room, seat int) (game.Action, error) {
	r.Lock()
	defer r.Unlock()
	return game.SelectMove(r.Match.State(), seat)
}

func (m *Manager) ApplyMove(r *shared.Room, playerID string, to game.Position) (shared.Snapshot, error) {
	return m.act(r, playerID, game.MoveTo(to))
}

func (m *Manager) PlaceWall(r *shared.Room, playerID string, at game.Position, o game.Orientation) (shared.Snapshot, error) {
	return m.act(r, playerID, game.WallAt(at, o))
}

func (m *Manager) act(r *shared.Room, playerID string, a game.Action) (shared.Snapshot, error) {
	r.Lock()
	seat, err := m.seatOnTurn(r, playerID)
	if err == nil {
		err = r.Match.Apply(seat, a)
	}
	if err != nil {
		r.Unlock()
		m.reject(r.Code, playerID, a.String(), err)
		return shared.Snapshot{}, err
	}

	m.committed(r, seat, a)
	m.reply(r)
	snap := r.Snapshot()
	r.Unlock()

	m.publish(snap)
	return snap, nil
}

// BotMove lets the selector play for a bot seat whose turn it is.
func (m *Manager) BotMove(r *shared.Room, botID string) (game.Action, shared.Snapshot, error) {
	r.Lock()
	seat, err := m.seatOnTurn(r, botID)
	if err == nil && !r.Seat(seat).IsBot {
		err = ErrNotBot
	}
	var a game.Action
	if err == nil {
		a, err = r.Match.PlayBest(seat)
	}
	if err != nil {
		r.Unlock()
		m.reject(r.Code, botID, "bot move", err)
		return game.Action{}, shared.Snapshot{}, err
	}

	m.committed(r, seat, a)
	snap := r.Snapshot()
	r.Unlock()

	m.publish(snap)
	return a, snap, nil
}

func (m *Manager) seatOnTurn(r *shared.Room, playerID string) (int, error) {
	seat, ok := r.SeatOf(playerID)
	if !ok {
		return 0, ErrUnknownPlayer
	}
	if _, over := r.Match.Finished(); over {
		return 0, game.ErrGameOver
	}
	if seat != r.Turn {
		return 0, fmt.Errorf("%w: seat %d to play", ErrNotYourTurn, r.Turn)
	}
	return seat, nil
}

func (m *Manager) committed(r *shared.Room, seat int, a game.Action) {
	actor := "human"
	if r.Seat(seat).IsBot {
		actor = "bot"
	}
	r.Turn = other(seat)
	r.Plies++
	r.UpdatedAt = time.Now()

	m.metrics.Actions.WithLabelValues(string(a.Kind), actor).Inc()
	m.log.Debug("action committed",
		zap.String("room", r.Code),
		zap.Int("seat", seat),
		zap.String("actor", actor),
		zap.Stringer("action", a),
	)

	if winner, over := r.Match.Finished(); over {
		m.metrics.GamesFinished.WithLabelValues(strconv.Itoa(winner)).Inc()
		m.log.Info("game finished",
			zap.String("room", r.Code),
			zap.Int("winner", winner),
			zap.String("name", r.Seat(winner).Name),
			zap.Int("plies", r.Plies),
		)
	}
}

// reply plays the bot's turn when it faces a human.
func (m *Manager) reply(r *shared.Room) {
	if _, over := r.Match.Finished(); over {
		return
	}
	seat := r.Turn
	if !r.Seat(seat).IsBot || r.Seat(other(seat)).IsBot {
		return
	}
	a, err := r.Match.PlayBest(seat)
	if err != nil {
		m.log.Error("bot reply failed", zap.String("room", r.Code), zap.Int("seat", seat), zap.Error(err))
		return
	}
	m.committed(r, seat, a)
}

func (m *Manager) reject(code, playerID, what string, err error) {
	m.metrics.Rejections.WithLabelValues(Reason(err)).Inc()
	m.log.Info("action rejected",
		zap.String("room", code),
		zap.String("player", playerID),
		zap.String("action", what),
		zap.Error(err),
	)
}

func (m *Manager) publish(snap shared.Snapshot) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(snap.Code, "state-updated", snap)
	if snap.Finished {
		m.hub.Broadcast(snap.Code, "game-over", gin.H{
			"winner": snap.Winner,
			"state":  snap.State,
		})
	}
}

// Reason is a short label for a rejected action.
func Reason(err error) string {
	switch {
	case errors.Is(err, game.ErrNoWallsLeft):
		return "no_walls_left"
	case errors.Is(err, game.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, game.ErrOverlap):
		return "overlap"
	case errors.Is(err, game.ErrCrossingConflict):
		return "crossing"
	case errors.Is(err, game.ErrBlocksPath):
		return "blocks_path"
	case errors.Is(err, game.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, game.ErrInvalidPlayer):
		return "invalid_player"
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, ErrUnknownPlayer):
		return "unknown_player"
	case errors.Is(err, ErrNotBot):
		return "not_bot"
	case errors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	}
	return "other"
}

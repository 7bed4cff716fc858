package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"othello/internal/config"
	"othello/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrNotYourTurn    = errors.New("not your turn or player invalid")
	ErrGameOver       = errors.New("game is already finished")
	ErrRoomFull       = errors.New("room already has two players")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotBot         = errors.New("player is not a bot")
	ErrWaiting        = errors.New("waiting for an opponent")
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, hub: hub}
}

func (m *Manager) SetHub(hub Broadcaster) {
	log.Printf("Setting broadcaster in Manager: %T", hub)
	m.hub = hub
}

// CreateRoom opens a room with its creator seated as Black.
func (m *Manager) CreateRoom(creatorName string) State {
	if creatorName == "" {
		creatorName = "Player"
	}
	code := randCode(6)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(6)
	}
	r := &Room{state: State{
		ID:        uuid.NewString(),
		Code:      code,
		Board:     *game.NewBoard(),
		Turn:      game.Black,
		CreatedAt: time.Now(),
		Players: []Player{{
			ID:    uuid.NewString(),
			Name:  creatorName,
			Color: game.Black,
		}},
	}}
	m.store.SaveRoom(r)
	log.Printf("room %s created by %s", code, creatorName)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// List returns a snapshot of every room, oldest first.
func (m *Manager) List() []State {
	rooms := m.store.ListRooms()
	out := make([]State, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, m.State(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (m *Manager) State(r *Room) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// JoinRoom seats a second human as White.
func (m *Manager) JoinRoom(r *Room, name string) (State, Player, error) {
	if name == "" {
		name = "Player"
	}
	return m.seat(r, Player{ID: uuid.NewString(), Name: name})
}

// AddBot seats an engine as White. A non-positive depth uses BOT_DEPTH.
func (m *Manager) AddBot(r *Room, depth int) (State, Player, error) {
	if depth <= 0 {
		depth = m.cfg.Search.BotDepth
	}
	return m.seat(r, Player{
		ID:    "bot-" + uuid.NewString(),
		Name:  "Bot",
		IsBot: true,
		Depth: m.cfg.Search.Clamp(depth),
	})
}

func (m *Manager) seat(r *Room, p Player) (State, Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.state.Players) >= 2 {
		return r.snapshot(), Player{}, ErrRoomFull
	}
	p.Color = game.White
	r.state.Players = append(r.state.Players, p)
	m.store.SaveRoom(r)

	s := r.snapshot()
	m.hub.Broadcast(s.Code, "state-updated", gin.H{"room": s})
	return s, p, nil
}

func (m *Manager) PossibleMoves(r *Room, playerID string) ([]game.Move, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	moves := r.state.Board.LegalMoves(p.Color)
	if moves == nil {
		moves = []game.Move{}
	}
	return moves, nil
}

func (m *Manager) ApplyMove(r *Room, playerID string, row, col int) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := m.applyLocked(r, playerID, game.Move{Row: row, Col: col}); err != nil {
		return r.snapshot(), err
	}
	return r.snapshot(), nil
}

func (m *Manager) applyLocked(r *Room, playerID string, mv game.Move) error {
	st := &r.state
	if st.Finished {
		return ErrGameOver
	}
	if len(st.Players) < 2 {
		return ErrWaiting
	}
	p := r.player(playerID)
	if p == nil || p.Color != st.Turn {
		return ErrNotYourTurn
	}

	if err := st.Board.ApplyMove(p.Color, mv); err != nil {
		log.Printf("room %s: %s rejected at (%d,%d): %v", st.Code, p.Color, mv.Row, mv.Col, err)
		return err
	}
	st.LastMove = &mv
	m.advance(r, p.Color)
	m.store.SaveRoom(r)

	s := r.snapshot()
	m.hub.Broadcast(st.Code, "move-applied", gin.H{
		"playerId": playerID,
		"row":      mv.Row,
		"col":      mv.Col,
		"room":     s,
	})
	if st.Finished {
		m.hub.Broadcast(st.Code, "game-over", gin.H{
			"winner": st.WinnerID,
			"draw":   st.Draw,
			"black":  s.Black,
			"white":  s.White,
		})
	}
	return nil
}

// advance hands the turn to the opponent, records a pass when the
// opponent is stuck, and finishes the game when neither side can move.
func (m *Manager) advance(r *Room, mover game.Player) {
	st := &r.state
	next := mover.Opponent()
	switch {
	case len(st.Board.LegalMoves(next)) > 0:
		st.Turn = next
	case len(st.Board.LegalMoves(mover)) > 0:
		st.Turn = mover
		st.Passes++
		log.Printf("room %s: %s passes", st.Code, next)
		m.hub.Broadcast(st.Code, "pass", gin.H{"player": next})
	default:
		st.Finished = true
		switch st.Board.Winner() {
		case game.BlackDisk:
			id := r.seated(game.Black).ID
			st.WinnerID = &id
		case game.WhiteDisk:
			id := r.seated(game.White).ID
			st.WinnerID = &id
		default:
			st.Draw = true
		}
		black, white := st.Board.DiskCounts()
		log.Printf("room %s finished: black %d white %d", st.Code, black, white)
	}
}

// BotMove lets the bot whose turn it is search and play.
func (m *Manager) BotMove(r *Room, botID string) (game.Move, State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(botID)
	if p == nil {
		return game.Move{}, r.snapshot(), ErrPlayerNotFound
	}
	if !p.IsBot {
		return game.Move{}, r.snapshot(), ErrNotBot
	}
	if r.state.Finished {
		return game.Move{}, r.snapshot(), ErrGameOver
	}
	if p.Color != r.state.Turn {
		return game.Move{}, r.snapshot(), ErrNotYourTurn
	}

	mv, score, stats, err := m.search(&r.state.Board, p.Color, p.Depth)
	if err != nil {
		return game.Move{}, r.snapshot(), err
	}
	log.Printf("room %s: bot %s depth %d chose (%d,%d) score %d nodes %d cutoffs %d",
		r.state.Code, p.Color, p.Depth, mv.Row, mv.Col, score, stats.Nodes, stats.Cutoffs)

	if err := m.applyLocked(r, botID, mv); err != nil {
		return game.Move{}, r.snapshot(), err
	}
	return mv, r.snapshot(), nil
}

func (m *Manager) search(b *game.Board, p game.Player, depth int) (game.Move, int, game.Stats, error) {
	depth = m.cfg.Search.Clamp(depth)
	if m.cfg.Search.ParallelRoot {
		return game.BestMoveParallel(context.Background(), b, p, depth)
	}
	var s game.Searcher
	mv, score, err := s.BestMove(b, p, depth)
	return mv, score, s.Stats, err
}

// Analyze searches an arbitrary position without touching any room.
func (m *Manager) Analyze(ctx context.Context, b *game.Board, p game.Player, depth int) (game.Move, []game.MoveScore, error) {
	depth = m.cfg.Search.Clamp(depth)
	scores, _, err := game.AnalyzeMoves(ctx, b, p, depth)
	if err != nil {
		return game.Move{}, nil, fmt.Errorf("analyze %s at depth %d: %w", p, depth, err)
	}
	return game.Best(scores).Move, scores, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

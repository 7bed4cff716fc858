package room

import (
	"errors"
	"sync"
	"testing"

	"othello/internal/config"
	"othello/internal/game"
)

type mapStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func (s *mapStore) GetRoom(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

func (s *mapStore) ListRooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Room
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

func (s *mapStore) SaveRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Code()] = r
}

type recorder struct {
	mu      sync.Mutex
	actions []string
}

func (r *recorder) Broadcast(_ string, action string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
}

func (r *recorder) seen(action string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.actions {
		if a == action {
			return true
		}
	}
	return false
}

func newTestManager() (*Manager, *recorder) {
	rec := &recorder{}
	cfg := config.Config{Search: config.Search{Depth: 3, BotDepth: 2, MaxDepth: 4}}
	return NewManager(&mapStore{rooms: map[string]*Room{}}, cfg, rec), rec
}

func mustRoom(t *testing.T, m *Manager, code string) *Room {
	t.Helper()
	r, ok := m.Get(code)
	if !ok {
		t.Fatalf("room %s not stored", code)
	}
	return r
}

func TestCreateRoomSeatsBlack(t *testing.T) {
	m, _ := newTestManager()
	s := m.CreateRoom("alice")
	if len(s.Code) != 6 {
		t.Fatalf("unexpected code %q", s.Code)
	}
	if len(s.Players) != 1 || s.Players[0].Color != game.Black || s.Players[0].Name != "alice" {
		t.Fatalf("unexpected players %+v", s.Players)
	}
	if s.Turn != game.Black || s.Black != 2 || s.White != 2 {
		t.Fatalf("unexpected state %+v", s)
	}

	r := mustRoom(t, m, s.Code)
	if _, err := m.ApplyMove(r, s.Players[0].ID, 2, 3); !errors.Is(err, ErrWaiting) {
		t.Fatalf("expected ErrWaiting, got %v", err)
	}
}

func TestAddBotAndRoomFull(t *testing.T) {
	m, rec := newTestManager()
	s := m.CreateRoom("alice")
	r := mustRoom(t, m, s.Code)

	_, bot, err := m.AddBot(r, 9)
	if err != nil {
		t.Fatalf("AddBot: %v", err)
	}
	if !bot.IsBot || bot.Color != game.White || bot.Depth != 4 {
		t.Fatalf("unexpected bot %+v", bot)
	}
	if _, _, err := m.JoinRoom(r, "bob"); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("expected ErrRoomFull, got %v", err)
	}
	if !rec.seen("state-updated") {
		t.Fatalf("expected state-updated broadcast")
	}
}

func TestMoveValidation(t *testing.T) {
	m, _ := newTestManager()
	s := m.CreateRoom("alice")
	r := mustRoom(t, m, s.Code)
	human := s.Players[0].ID
	_, bot, _ := m.AddBot(r, 0)

	if _, _, err := m.BotMove(r, bot.ID); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn for bot, got %v", err)
	}
	if _, _, err := m.BotMove(r, human); !errors.Is(err, ErrNotBot) {
		t.Fatalf("expected ErrNotBot, got %v", err)
	}
	if _, err := m.ApplyMove(r, human, 0, 0); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if _, err := m.ApplyMove(r, "nobody", 2, 3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	st, err := m.ApplyMove(r, human, 2, 3)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if st.Turn != game.White || st.Black != 4 || st.White != 1 {
		t.Fatalf("unexpected state after d3: %+v", st)
	}
	if st.LastMove == nil || *st.LastMove != (game.Move{Row: 2, Col: 3}) {
		t.Fatalf("unexpected last move %v", st.LastMove)
	}

	mv, st, err := m.BotMove(r, bot.ID)
	if err != nil {
		t.Fatalf("BotMove: %v", err)
	}
	if st.Turn != game.Black {
		t.Fatalf("expected black to move after bot, got %s", st.Turn)
	}
	if st.Board.Cells[mv.Row][mv.Col] != game.WhiteDisk {
		t.Fatalf("bot move %v not on the board", mv)
	}
}

func TestPossibleMoves(t *testing.T) {
	m, _ := newTestManager()
	s := m.CreateRoom("alice")
	r := mustRoom(t, m, s.Code)

	moves, err := m.PossibleMoves(r, s.Players[0].ID)
	if err != nil {
		t.Fatalf("PossibleMoves: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("expected 4 opening moves, got %v", moves)
	}
	if _, err := m.PossibleMoves(r, "ghost"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestPassKeepsTurnThenFinish(t *testing.T) {
	m, rec := newTestManager()
	s := m.CreateRoom("alice")
	r := mustRoom(t, m, s.Code)
	human := s.Players[0].ID
	if _, _, err := m.JoinRoom(r, "bob"); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	b, err := game.ParseBoard([]string{
		"BW......",
		"........",
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	r.mu.Lock()
	r.state.Board = *b
	r.mu.Unlock()

	st, err := m.ApplyMove(r, human, 0, 2)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if st.Turn != game.Black || st.Passes != 1 || st.Finished {
		t.Fatalf("expected white to pass, got %+v", st)
	}
	if !rec.seen("pass") {
		t.Fatalf("expected pass broadcast")
	}

	st, err = m.ApplyMove(r, human, 2, 2)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if !st.Finished || st.WinnerID == nil || *st.WinnerID != human || st.Draw {
		t.Fatalf("expected black win, got %+v", st)
	}
	if !rec.seen("game-over") {
		t.Fatalf("expected game-over broadcast")
	}
	if _, err := m.ApplyMove(r, human, 5, 5); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestPlayAgainstBotToCompletion(t *testing.T) {
	m, _ := newTestManager()
	s := m.CreateRoom("alice")
	r := mustRoom(t, m, s.Code)
	human := s.Players[0].ID
	_, bot, _ := m.AddBot(r, 1)

	st := m.State(r)
	for turns := 0; !st.Finished; turns++ {
		if turns > 64 {
			t.Fatalf("game did not finish")
		}
		var err error
		if st.Turn == game.Black {
			moves, _ := m.PossibleMoves(r, human)
			st, err = m.ApplyMove(r, human, moves[0].Row, moves[0].Col)
		} else {
			_, st, err = m.BotMove(r, bot.ID)
		}
		if err != nil {
			t.Fatalf("turn %d: %v", turns, err)
		}
	}
	if st.Black+st.White > game.Size*game.Size {
		t.Fatalf("too many disks: %d", st.Black+st.White)
	}
	if st.Draw != (st.Black == st.White) {
		t.Fatalf("draw flag inconsistent with %d-%d", st.Black, st.White)
	}
}

func TestAnalyze(t *testing.T) {
	m, _ := newTestManager()
	mv, scores, err := m.Analyze(t.Context(), game.NewBoard(), game.Black, 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if mv != (game.Move{Row: 2, Col: 3}) || len(scores) != 4 {
		t.Fatalf("unexpected analysis %v %v", mv, scores)
	}
	for _, s := range scores {
		if s.Score != 27 {
			t.Fatalf("expected every opening to score 27, got %+v", s)
		}
	}
}

package game

import (
	"context"
	"errors"
	"testing"
)

// plainNegamax is negamax without pruning, used as a reference.
func plainNegamax(b *Board, p Player, depth int) (int, Move, bool) {
	if depth == 0 || b.Terminal() {
		return b.Evaluate(p), Move{}, false
	}
	moves := b.LegalMoves(p)
	if len(moves) == 0 {
		s, _, _ := plainNegamax(b, p.Opponent(), depth-1)
		return -s, Move{}, false
	}
	best, bestMove := -Infinity-1, Move{}
	for _, m := range moves {
		child := b.Clone()
		_ = child.ApplyMove(p, m)
		s, _, _ := plainNegamax(child, p.Opponent(), depth-1)
		if -s > best {
			best, bestMove = -s, m
		}
	}
	return best, bestMove, true
}

func TestNegamaxDepthZeroIsEvaluate(t *testing.T) {
	for _, b := range randomBoards(4, 3) {
		for _, p := range []Player{Black, White} {
			score, _, ok := Negamax(b, p, 0, -Infinity, Infinity)
			if ok {
				t.Fatalf("depth 0 must not report a move")
			}
			if want := b.Evaluate(p); score != want {
				t.Fatalf("expected %d, got %d", want, score)
			}
		}
	}
}

func TestNegamaxMatchesUnprunedSearch(t *testing.T) {
	boards := randomBoards(5, 2)
	for i := 0; i < len(boards); i += 7 {
		b := boards[i]
		for _, p := range []Player{Black, White} {
			for depth := 1; depth <= 3; depth++ {
				ws, wm, wok := plainNegamax(b, p, depth)
				gs, gm, gok := Negamax(b, p, depth, -Infinity, Infinity)
				if ws != gs || wm != gm || wok != gok {
					t.Fatalf("depth %d %s: expected (%d,%v,%v), got (%d,%v,%v)\n%s",
						depth, p, ws, wm, wok, gs, gm, gok, b)
				}
			}
		}
	}
}

func TestBestMoveOpeningDepthOne(t *testing.T) {
	// All four openings score 27 for black, so the first in scan order wins.
	m, err := BestMove(NewBoard(), Black, 1)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	if m != (Move{2, 3}) {
		t.Fatalf("expected (2,3), got %v", m)
	}
	for _, open := range NewBoard().LegalMoves(Black) {
		b := NewBoard()
		_ = b.ApplyMove(Black, open)
		if got := b.Evaluate(Black); got != 27 {
			t.Fatalf("opening %v: expected 27, got %d", open, got)
		}
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	boards := randomBoards(6, 1)
	b := boards[len(boards)/2]
	p := Black
	if len(b.LegalMoves(p)) == 0 {
		p = White
	}
	first, err := BestMove(b, p, 4)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := BestMove(b, p, 4)
		if err != nil || again != first {
			t.Fatalf("run %d: expected %v, got %v (%v)", i, first, again, err)
		}
	}
}

func TestNegamaxPassConsumesDepth(t *testing.T) {
	// White cannot flank the corner disk; black can take (0,2).
	b := mustParse(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if len(b.LegalMoves(White)) != 0 || len(b.LegalMoves(Black)) == 0 {
		t.Fatalf("fixture must be a white pass")
	}
	passScore, _, ok := Negamax(b, White, 3, -Infinity, Infinity)
	if ok {
		t.Fatalf("a pass must not report a move")
	}
	blackScore, _, _ := Negamax(b, Black, 2, -Infinity, Infinity)
	if passScore != -blackScore {
		t.Fatalf("expected %d, got %d", -blackScore, passScore)
	}

	var s Searcher
	s.Negamax(b, White, 3, -Infinity, Infinity)
	if s.Stats.Passes == 0 {
		t.Fatalf("expected pass to be counted")
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	b := mustParse(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if _, err := BestMove(b, White, 3); !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("expected ErrNoLegalMoves, got %v", err)
	}
	full := mustParse(t,
		"BBBBBBBB", "BBBBBBBB", "BBBBBBBB", "BBBBBBBB",
		"WWWWWWWW", "WWWWWWWW", "WWWWWWWW", "WWWWWWWW",
	)
	if _, err := BestMove(full, Black, 5); !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("terminal board: expected ErrNoLegalMoves, got %v", err)
	}
}

func TestSearcherCountsCutoffs(t *testing.T) {
	var s Searcher
	if _, _, err := s.BestMove(NewBoard(), Black, 4); err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	if s.Stats.Nodes <= s.Stats.Leaves || s.Stats.Leaves == 0 {
		t.Fatalf("unexpected stats %+v", s.Stats)
	}
	if s.Stats.Cutoffs == 0 {
		t.Fatalf("expected alpha-beta cutoffs at depth 4, got %+v", s.Stats)
	}
}

func TestBestMoveParallelMatchesSequential(t *testing.T) {
	boards := randomBoards(7, 1)
	for i := 0; i < len(boards); i += 9 {
		b := boards[i]
		for _, p := range []Player{Black, White} {
			if len(b.LegalMoves(p)) == 0 {
				continue
			}
			var s Searcher
			wm, ws, err := s.BestMove(b, p, 3)
			if err != nil {
				t.Fatalf("BestMove: %v", err)
			}
			gm, gs, _, err := BestMoveParallel(context.Background(), b, p, 3)
			if err != nil {
				t.Fatalf("BestMoveParallel: %v", err)
			}
			if gm != wm || gs != ws {
				t.Fatalf("expected %v/%d, got %v/%d\n%s", wm, ws, gm, gs, b)
			}
		}
	}
}

func TestAnalyzeMovesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := AnalyzeMoves(ctx, NewBoard(), Black, 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

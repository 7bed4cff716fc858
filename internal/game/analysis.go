package game

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type MoveScore struct {
	Move  Move `json:"move"`
	Score int  `json:"score"`
}

// AnalyzeMoves scores every legal root move of player with a full window,
// one goroutine per move, each on its own clone. Results keep LegalMoves
// order. The returned Stats are summed over all workers.
func AnalyzeMoves(ctx context.Context, b *Board, player Player, depth int) ([]MoveScore, Stats, error) {
	if depth < 1 {
		depth = 1
	}
	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		return nil, Stats{}, ErrNoLegalMoves
	}

	out := make([]MoveScore, len(moves))
	stats := make([]Stats, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := b.Clone()
			if err := child.ApplyMove(player, m); err != nil {
				return err
			}
			var s Searcher
			score, _, _ := s.Negamax(child, player.Opponent(), depth-1, -Infinity, Infinity)
			out[i] = MoveScore{Move: m, Score: -score}
			stats[i] = s.Stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	var total Stats
	for _, st := range stats {
		total.add(st)
	}
	return out, total, nil
}

// BestMoveParallel returns the same move as BestMove, searching root moves
// concurrently. Ties go to the earliest move in scan order.
func BestMoveParallel(ctx context.Context, b *Board, player Player, depth int) (Move, int, Stats, error) {
	scores, stats, err := AnalyzeMoves(ctx, b, player, depth)
	if err != nil {
		return Move{}, 0, stats, err
	}
	best := Best(scores)
	return best.Move, best.Score, stats, nil
}

// Best returns the first entry with the highest score. scores must not
// be empty.
func Best(scores []MoveScore) MoveScore {
	best := scores[0]
	for _, ms := range scores[1:] {
		if ms.Score > best.Score {
			best = ms
		}
	}
	return best
}

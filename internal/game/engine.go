package game

import (
	"errors"
)

// DefaultDepth is the search horizon used when callers do not pick one.
const DefaultDepth = 5

// Infinity bounds the alpha-beta window. Evaluations never exceed
// 64*100 positional plus 64*ParityWeight material.
const Infinity = 1 << 20

var ErrNoLegalMoves = errors.New("no legal moves available")

// Stats counts the work done by one search.
type Stats struct {
	Nodes   int `json:"nodes"`
	Leaves  int `json:"leaves"`
	Cutoffs int `json:"cutoffs"`
	Passes  int `json:"passes"`
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	s.Cutoffs += o.Cutoffs
	s.Passes += o.Passes
}

// Searcher runs negamax with alpha-beta pruning and records Stats.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	Stats Stats
}

// Negamax returns the score of b for player searched depth plies deep and,
// unless the node is a leaf or a pass, the move that achieves it.
// Earlier moves in LegalMoves order win ties.
func (s *Searcher) Negamax(b *Board, player Player, depth, alpha, beta int) (int, Move, bool) {
	s.Stats.Nodes++
	if depth <= 0 || b.Terminal() {
		s.Stats.Leaves++
		return b.Evaluate(player), Move{}, false
	}

	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		s.Stats.Passes++
		score, _, _ := s.Negamax(b, player.Opponent(), depth-1, -beta, -alpha)
		return -score, Move{}, false
	}

	best := moves[0]
	maxScore := -Infinity - 1
	for _, m := range moves {
		child := b.Clone()
		if err := child.ApplyMove(player, m); err != nil {
			// LegalMoves and ApplyMove share CapturesInDirection.
			panic(err)
		}
		score, _, _ := s.Negamax(child, player.Opponent(), depth-1, -beta, -alpha)
		score = -score

		if score > maxScore {
			maxScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.Stats.Cutoffs++
			break
		}
	}
	return maxScore, best, true
}

// BestMove searches depth plies (at least one) and returns the chosen move
// with its score.
func (s *Searcher) BestMove(b *Board, player Player, depth int) (Move, int, error) {
	if depth < 1 {
		depth = 1
	}
	score, m, ok := s.Negamax(b, player, depth, -Infinity, Infinity)
	if !ok {
		return Move{}, score, ErrNoLegalMoves
	}
	return m, score, nil
}

// Negamax is Searcher.Negamax without statistics.
func Negamax(b *Board, player Player, depth, alpha, beta int) (int, Move, bool) {
	var s Searcher
	return s.Negamax(b, player, depth, alpha, beta)
}

// BestMove picks player's move on b with a depth-ply search. It fails with
// ErrNoLegalMoves when player has nothing to play; callers handle passes.
func BestMove(b *Board, player Player, depth int) (Move, error) {
	var s Searcher
	m, _, err := s.BestMove(b, player, depth)
	return m, err
}

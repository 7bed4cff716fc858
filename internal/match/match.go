// Package match drives complete engine-vs-engine games.
package match

import (
	"fmt"

	"othello/internal/game"
)

// Turn records one half-move. Pass is set when the side had no move.
type Turn struct {
	Player game.Player `json:"player"`
	Move   game.Move   `json:"move"`
	Pass   bool        `json:"pass"`
	Score  int         `json:"score"`
}

type Result struct {
	Turns  []Turn     `json:"turns"`
	Black  int        `json:"black"`
	White  int        `json:"white"`
	Winner game.Cell  `json:"winner"`
	Board  game.Board `json:"board"`
	Stats  game.Stats `json:"stats"`
}

// Players configures both sides. OnTurn, when set, runs after every turn
// with the board as it stands.
type Players struct {
	BlackDepth int
	WhiteDepth int
	OnTurn     func(t Turn, b *game.Board)
}

func (p Players) depth(side game.Player) int {
	if side == game.Black {
		return p.BlackDepth
	}
	return p.WhiteDepth
}

// Play runs a game from the starting position until neither side can move.
func Play(cfg Players) (Result, error) {
	return PlayFrom(game.NewBoard(), game.Black, cfg)
}

// PlayFrom continues a game from b with side to move. b is not modified.
func PlayFrom(start *game.Board, side game.Player, cfg Players) (Result, error) {
	b := start.Clone()
	var res Result
	for !b.Terminal() {
		t := Turn{Player: side}
		if len(b.LegalMoves(side)) == 0 {
			t.Pass = true
		} else {
			var s game.Searcher
			mv, score, err := s.BestMove(b, side, cfg.depth(side))
			if err != nil {
				return res, fmt.Errorf("turn %d: %w", len(res.Turns), err)
			}
			if err := b.ApplyMove(side, mv); err != nil {
				return res, fmt.Errorf("turn %d: %w", len(res.Turns), err)
			}
			t.Move, t.Score = mv, score
			res.Stats.Nodes += s.Stats.Nodes
			res.Stats.Leaves += s.Stats.Leaves
			res.Stats.Cutoffs += s.Stats.Cutoffs
			res.Stats.Passes += s.Stats.Passes
		}
		res.Turns = append(res.Turns, t)
		if cfg.OnTurn != nil {
			cfg.OnTurn(t, b)
		}
		side = side.Opponent()
	}
	res.Board = *b
	res.Black, res.White = b.DiskCounts()
	res.Winner = b.Winner()
	return res, nil
}

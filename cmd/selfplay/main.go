package main

import (
	"flag"
	"fmt"
	"log"

	"othello/internal/game"
	"othello/internal/match"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

// Plays engine against engine and reports the tally. With -swap the
// colours alternate every game so each depth plays both sides.
func main() {
	games := flag.Int("games", 10, "number of games")
	depthA := flag.Int("a", 3, "depth of engine A")
	depthB := flag.Int("b", 3, "depth of engine B")
	swap := flag.Bool("swap", true, "alternate colours between games")
	verbose := flag.Bool("v", false, "print every move")
	flag.Parse()

	var winsA, winsB, draws int
	var nodes int
	bar := newBar(*games, fmt.Sprintf("depth %d vs %d", *depthA, *depthB))
	for i := 0; i < *games; i++ {
		aIsBlack := !*swap || i%2 == 0
		p := match.Players{BlackDepth: *depthA, WhiteDepth: *depthB}
		if !aIsBlack {
			p = match.Players{BlackDepth: *depthB, WhiteDepth: *depthA}
		}
		if *verbose {
			p.OnTurn = func(t match.Turn, _ *game.Board) {
				if t.Pass {
					log.Printf("%s passes", t.Player)
					return
				}
				log.Printf("%s -> (%d,%d) score %d", t.Player, t.Move.Row, t.Move.Col, t.Score)
			}
		}

		res, err := match.Play(p)
		if err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
		nodes += res.Stats.Nodes

		switch {
		case res.Winner == game.Empty:
			draws++
		case (res.Winner == game.BlackDisk) == aIsBlack:
			winsA++
		default:
			winsB++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println()
	fmt.Printf("A (depth %d): %s  B (depth %d): %s  draws: %d  nodes: %d\n",
		*depthA, aurora.Green(winsA), *depthB, aurora.Red(winsB), draws, nodes)
}

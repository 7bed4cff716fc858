package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"othello/internal/config"
	"othello/internal/game"

	"github.com/logrusorgru/aurora"
)

func main() {
	cfg := config.Load()
	depth := flag.Int("depth", cfg.Search.BotDepth, "engine search depth")
	humanColor := flag.String("color", "black", "your colour (black or white)")
	flag.Parse()

	human, err := game.ParsePlayer(*humanColor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	d := cfg.Search.Clamp(*depth)

	b := game.NewBoard()
	turn := game.Black
	reader := bufio.NewReader(os.Stdin)
	for !b.Terminal() {
		printBoard(b, turn)
		moves := b.LegalMoves(turn)
		if len(moves) == 0 {
			fmt.Printf("%s has no legal move, pass.\n", turn)
			turn = turn.Opponent()
			continue
		}

		if turn != human {
			mv, err := game.BestMove(b, turn, d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("CPU plays: %d %d\n", mv.Row+1, mv.Col+1)
			_ = b.ApplyMove(turn, mv)
			turn = turn.Opponent()
			continue
		}

		fmt.Println("Enter move as: row col (e.g. 3 4)")
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return
			}
			mv, err := parseMove(line)
			if err != nil {
				fmt.Println("Bad format, try again.")
				continue
			}
			if err := b.ApplyMove(turn, mv); err != nil {
				if errors.Is(err, game.ErrInvalidMove) {
					fmt.Println("Illegal move:", err)
					continue
				}
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			break
		}
		turn = turn.Opponent()
	}

	printBoard(b, turn)
	black, white := b.DiskCounts()
	fmt.Println("\nGame over!")
	js, _ := json.MarshalIndent(map[string]interface{}{
		"black":  black,
		"white":  white,
		"winner": b.Winner().String(),
	}, "", "  ")
	fmt.Println(string(js))
}

// parseMove reads a 1-based "row col" pair.
func parseMove(line string) (game.Move, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return game.Move{}, errors.New("want two numbers")
	}
	r, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Move{}, err
	}
	c, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{Row: r - 1, Col: c - 1}, nil
}

func printBoard(b *game.Board, turn game.Player) {
	legal := map[game.Move]bool{}
	for _, m := range b.LegalMoves(turn) {
		legal[m] = true
	}
	fmt.Print("\n  ")
	for c := 0; c < game.Size; c++ {
		fmt.Printf("%d ", c+1)
	}
	fmt.Println()
	for r := 0; r < game.Size; r++ {
		fmt.Printf("%d ", r+1)
		for c := 0; c < game.Size; c++ {
			switch b.Cells[r][c] {
			case game.BlackDisk:
				fmt.Print(aurora.Bold(aurora.Cyan("●")), " ")
			case game.WhiteDisk:
				fmt.Print(aurora.Bold(aurora.Yellow("○")), " ")
			default:
				if legal[game.Move{Row: r, Col: c}] {
					fmt.Print(aurora.Green("+"), " ")
				} else {
					fmt.Print(aurora.Gray(8, "."), " ")
				}
			}
		}
		fmt.Println()
	}
	black, white := b.DiskCounts()
	fmt.Printf("Black %d  White %d  (%s to move)\n", black, white, turn)
}

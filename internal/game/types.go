package game

import (
	"errors"
	"strings"
)

// Size is the side length of an Othello board.
const Size = 8

// Cell is the state of one board square.
type Cell int8

const (
	WhiteDisk Cell = -1
	Empty     Cell = 0
	BlackDisk Cell = 1
)

func (c Cell) String() string {
	switch c {
	case BlackDisk:
		return "black"
	case WhiteDisk:
		return "white"
	default:
		return "empty"
	}
}

// Player is the side to move. The ±1 encoding makes the opponent a
// negation, which negamax relies on.
type Player int8

const (
	White Player = -1
	Black Player = 1
)

func (p Player) Opponent() Player { return -p }

// Disk returns the cell state owned by p.
func (p Player) Disk() Cell { return Cell(p) }

func (p Player) String() string {
	if p == Black {
		return "black"
	}
	return "white"
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	v, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

var ErrBadPlayer = errors.New("unknown player")

// ParsePlayer accepts black, b, white or w in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return 0, ErrBadPlayer
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// directions are the eight compass offsets, scanned in this order.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func in(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

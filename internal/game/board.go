package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrBadBoard    = errors.New("malformed board")
)

type Board struct {
	Cells [Size][Size]Cell `json:"cells"`
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	mid := Size / 2
	b.Cells[mid-1][mid-1], b.Cells[mid][mid] = WhiteDisk, WhiteDisk
	b.Cells[mid-1][mid], b.Cells[mid][mid-1] = BlackDisk, BlackDisk
	return b
}

// Clone returns an independent copy. Cells is an array, so the value
// copy duplicates every square.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// CapturesInDirection returns the opposing disks that a disk placed by
// player at (row, col) would flip along (dRow, dCol). The run must be
// closed by one of player's own disks before leaving the board.
func (b *Board) CapturesInDirection(row, col, dRow, dCol int, player Player) []Move {
	var run []Move
	opp := player.Opponent().Disk()
	r, c := row+dRow, col+dCol
	for in(r, c) && b.Cells[r][c] == opp {
		run = append(run, Move{Row: r, Col: c})
		r += dRow
		c += dCol
	}
	if len(run) == 0 || !in(r, c) || b.Cells[r][c] != player.Disk() {
		return nil
	}
	return run
}

func (b *Board) captures(row, col int, player Player) bool {
	for _, d := range directions {
		if len(b.CapturesInDirection(row, col, d[0], d[1], player)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal placement for player in row-major order.
// Search tie-breaking depends on this order.
func (b *Board) LegalMoves(player Player) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Cells[r][c] != Empty {
				continue
			}
			if b.captures(r, c, player) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// IsLegal reports whether player may place a disk at m.
func (b *Board) IsLegal(player Player, m Move) bool {
	return in(m.Row, m.Col) && b.Cells[m.Row][m.Col] == Empty && b.captures(m.Row, m.Col, player)
}

// ApplyMove places player's disk at m and flips every captured run.
// The board is left untouched when the move is not legal.
func (b *Board) ApplyMove(player Player, m Move) error {
	if !in(m.Row, m.Col) {
		return fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, m.Row, m.Col)
	}
	if b.Cells[m.Row][m.Col] != Empty {
		return fmt.Errorf("%w: (%d,%d) is occupied", ErrInvalidMove, m.Row, m.Col)
	}

	var flips []Move
	for _, d := range directions {
		flips = append(flips, b.CapturesInDirection(m.Row, m.Col, d[0], d[1], player)...)
	}
	if len(flips) == 0 {
		return fmt.Errorf("%w: (%d,%d) captures nothing for %s", ErrInvalidMove, m.Row, m.Col, player)
	}

	disk := player.Disk()
	b.Cells[m.Row][m.Col] = disk
	for _, f := range flips {
		b.Cells[f.Row][f.Col] = disk
	}
	return nil
}

func (b *Board) DiskCounts() (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.Cells[r][c] {
			case BlackDisk:
				black++
			case WhiteDisk:
				white++
			}
		}
	}
	return black, white
}

// Terminal reports whether neither side can move. Empty squares may remain.
func (b *Board) Terminal() bool {
	return len(b.LegalMoves(Black)) == 0 && len(b.LegalMoves(White)) == 0
}

// Winner returns the majority colour, or Empty for a draw.
func (b *Board) Winner() Cell {
	black, white := b.DiskCounts()
	switch {
	case black > white:
		return BlackDisk
	case white > black:
		return WhiteDisk
	}
	return Empty
}

var glyphs = map[Cell]byte{BlackDisk: 'B', WhiteDisk: 'W', Empty: '.'}

// String renders one line per row using B, W and '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(glyphs[b.Cells[r][c]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows is String split per row, the form ParseBoard accepts.
func (b *Board) Rows() []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

// ParseBoard reads the text form produced by String.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadBoard, Size, len(rows))
	}
	b := &Board{}
	for r, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, r, len(line))
		}
		for c := 0; c < Size; c++ {
			switch line[c] {
			case 'B', 'b', 'X', 'x':
				b.Cells[r][c] = BlackDisk
			case 'W', 'w', 'O', 'o':
				b.Cells[r][c] = WhiteDisk
			case '.', '-', '_':
				b.Cells[r][c] = Empty
			default:
				return nil, fmt.Errorf("%w: row %d col %d: unexpected %q", ErrBadBoard, r, c, line[c])
			}
		}
	}
	return b, nil
}

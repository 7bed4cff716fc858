package game

// positionWeights rewards corners and edges and punishes the squares that
// hand a corner to the opponent.
var positionWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// ParityWeight scales the disk difference in Evaluate.
const ParityWeight = 10

// Evaluate scores the position from player's point of view:
// ParityWeight*(mine-theirs) plus the positional weights of mine minus theirs.
func (b *Board) Evaluate(player Player) int {
	black, white := b.DiskCounts()
	parity := black - white
	if player == White {
		parity = -parity
	}

	mine, theirs := player.Disk(), player.Opponent().Disk()
	positional := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.Cells[r][c] {
			case mine:
				positional += positionWeights[r][c]
			case theirs:
				positional -= positionWeights[r][c]
			}
		}
	}
	return ParityWeight*parity + positional
}


// Weights returns a copy of the positional table.
func Weights() [Size][Size]int {
	return positionWeights
}

package life

import "life-ca/internal/core"

const (
	// Dead is the value of an empty cell.
	Dead uint8 = 0
	// Alive is the value of a populated cell.
	Alive uint8 = 1
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountLiveNeighbors returns how many of the eight cells around (x, y) are
// alive. Neighbors beyond the grid edge are skipped, so corners see at most
// three candidates and edges at most five.
func CountLiveNeighbors(g *core.ByteGrid, x, y int) int {
	cells := g.Cells()
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !g.Contains(nx, ny) {
			continue
		}
		if cells[g.Index(nx, ny)] == Alive {
			count++
		}
	}
	return count
}

// NextState applies Conway's rule: a live cell survives with 2 or 3 live
// neighbors, a dead cell is born with exactly 3, everything else is dead.
func NextState(current uint8, live int) uint8 {
	if live == 3 || (current == Alive && live == 2) {
		return Alive
	}
	return Dead
}

package game9x9

import (
	"fmt"
	"strings"

	"quoridor/internal/game"
)

const (
	gridRows = 2*game.BoardSize - 1
	gridCols = 4*game.BoardSize - 1
)

func emptyGrid() [][]byte {
	grid := make([][]byte, gridRows)
	for y := range grid {
		row := make([]byte, gridCols)
		for x := range row {
			row[x] = ' '
			if y%2 == 0 && (x-1)%4 == 0 {
				row[x] = '.'
			}
		}
		grid[y] = row
	}
	return grid
}

// Render draws s as the course's ASCII board, row 9 on top. Tokens show as
// their seat number; legend names the seats.
func Render(s game.State, legend [game.PlayerCount]string) string {
	grid := emptyGrid()

	for i, p := range s.Players {
		if p.Pos.InBoard() {
			grid[p.Pos.Y*2-2][p.Pos.X*4-3] = byte('1' + i)
		}
	}
	for _, w := range s.Walls.Horizontal {
		y, x := w.Y*2-3, w.X*4-4
		for j := 0; j < 7; j++ {
			put(grid, y, x+j, '-')
		}
	}
	for _, w := range s.Walls.Vertical {
		y, x := w.Y*2-2, w.X*4-5
		for j := 0; j < 3; j++ {
			put(grid, y+j, x, '|')
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Legend: 1=%s, 2=%s\n", legend[0], legend[1])
	b.WriteString("   " + strings.Repeat("-", gridCols) + "\n")
	fmt.Fprintf(&b, "%d |%s|\n", game.BoardSize, grid[gridRows-1])
	for i := game.BoardSize - 1; i >= 1; i-- {
		fmt.Fprintf(&b, "  |%s|\n", grid[i*2-1])
		fmt.Fprintf(&b, "%d |%s|\n", i, grid[i*2-2])
	}
	b.WriteString("--|" + strings.Repeat("-", gridCols) + "\n")
	b.WriteString("  |")
	for x := 1; x <= game.BoardSize; x++ {
		sep := "   "
		if x == 1 {
			sep = " "
		}
		fmt.Fprintf(&b, "%s%d", sep, x)
	}
	b.WriteString("\n")
	return b.String()
}

func put(grid [][]byte, y, x int, c byte) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = c
	}
}

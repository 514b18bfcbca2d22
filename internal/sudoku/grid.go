package sudoku

import "strings"

const (
	Size    = 9 // rows, columns and digits
	BoxSize = 3
)

// Grid holds a 9x9 Sudoku board; 0 marks an empty cell.
type Grid [Size][Size]uint8

// String renders the grid as 9 lines of 9 ASCII digits, row-major, no separators.
func (grid Grid) String() string {
	var builder strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			builder.WriteByte('0' + grid[row][col])
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Clues returns the number of pre-filled cells.
func (grid Grid) Clues() int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if grid[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

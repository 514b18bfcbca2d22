package sudoku

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlankPuzzle(t *testing.T) {
	// Arrange
	blanks := []string{
		strings.Repeat(".", 81),
		strings.Repeat("0", 81),
		strings.Repeat("*", 81),
		strings.Repeat("?", 81),
	}

	for _, blank := range blanks {
		// Act
		grid, err := ParseGrid(strings.NewReader(blank))

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Grid{}, grid)
		assert.Equal(t, 0, grid.Clues())
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	// Arrange
	puzzle := "53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79\n"
	spread := strings.ReplaceAll(puzzle, "", " ") // every cell separated by spaces

	// Act
	compact, err1 := ParseGrid(strings.NewReader(puzzle))
	loose, err2 := ParseGrid(strings.NewReader(spread))

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, compact, loose)
	assert.Equal(t, uint8(5), compact[0][0])
	assert.Equal(t, uint8(3), compact[0][1])
	assert.Equal(t, uint8(7), compact[0][4])
	assert.Equal(t, uint8(9), compact[8][8])
	assert.Equal(t, 30, compact.Clues())
}

func TestParseCountMismatch(t *testing.T) {
	// Arrange
	scenarios := []struct {
		text  string
		count int
	}{
		{strings.Repeat(".", 80), 80},
		{strings.Repeat(".", 82), 82},
		{"", 0},
	}

	for _, scenario := range scenarios {
		// Act
		_, err := ParseGrid(strings.NewReader(scenario.text))

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "81")
		assert.Contains(t, err.Error(), fmt.Sprintf("got %v", scenario.count))
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	// Arrange: an 'x' at position 40
	text := strings.Repeat(".", 40) + "x" + strings.Repeat(".", 40)

	// Act
	_, err := ParseGrid(strings.NewReader(text))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'x'")
	assert.Contains(t, err.Error(), "position 40")
}

func TestGridString(t *testing.T) {
	// Arrange
	var grid Grid
	grid[0][0] = 5
	grid[8][8] = 9

	// Act
	rendered := grid.String()

	// Assert
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	assert.Equal(t, 9, len(lines))
	assert.Equal(t, "500000000", lines[0])
	assert.Equal(t, "000000009", lines[8])
}

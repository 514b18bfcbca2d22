package sudoku

import (
	"fmt"
	"io"
	"unicode"

	"github.com/samber/lo"
)

const cellCount = Size * Size

// ParseGrid reads a puzzle from its textual representation: whitespace is
// ignored, the remaining characters must number exactly 81 and are assigned
// row-major. '1'-'9' are clues; '0', '.', '*' and '?' mark an empty cell.
// Any other character is a format error naming the character and its 0-based
// position among the 81.
func ParseGrid(r io.Reader) (Grid, error) {
	var grid Grid

	data, err := io.ReadAll(r)
	if err != nil {
		return grid, fmt.Errorf("cannot read puzzle: %w", err)
	}

	cells := lo.Filter([]rune(string(data)), func(ch rune, _ int) bool { return !unicode.IsSpace(ch) })
	if len(cells) != cellCount {
		return grid, fmt.Errorf("expected exactly %v non-whitespace characters, got %v", cellCount, len(cells))
	}

	for k, ch := range cells {
		row := k / Size
		col := k % Size

		switch {
		case ch >= '1' && ch <= '9':
			grid[row][col] = uint8(ch - '0')
		case ch == '0' || ch == '.' || ch == '*' || ch == '?':
			grid[row][col] = 0
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %v", ch, k)
		}
	}

	return grid, nil
}

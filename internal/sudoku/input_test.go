package sudoku

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuzzleFromJson(t *testing.T) {
	// Arrange
	puzzle := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	content := `{
		"name": "top95-1",
		"difficulty": "hard",
		"puzzle": "` + puzzle + `"
	}`
	file := path.Join(t.TempDir(), "puzzle.json")
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}

	// Act
	input, err := PuzzleFromJson(file)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "top95-1", input.Name)
	assert.Equal(t, "hard", input.Difficulty)

	grid, err := input.Grid()
	assert.NoError(t, err)
	expected, err := ParseGrid(strings.NewReader(puzzle))
	assert.NoError(t, err)
	assert.Equal(t, expected, grid)
}

func TestPuzzleFromJsonErrors(t *testing.T) {
	// Missing file
	_, err := PuzzleFromJson(path.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	// Missing puzzle field
	file := path.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(file, []byte(`{"name": "empty"}`), 0666); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	_, err = PuzzleFromJson(file)
	assert.Error(t, err)
}

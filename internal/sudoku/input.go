package sudoku

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// PuzzleInput is the structured puzzle-file format. The Puzzle field carries
// ordinary puzzle text and follows the same rules as ParseGrid.
type PuzzleInput struct {
	Name       string
	Difficulty string
	Puzzle     string
}

// Grid parses the embedded puzzle text.
func (input PuzzleInput) Grid() (Grid, error) {
	return ParseGrid(strings.NewReader(input.Puzzle))
}

// PuzzleFromJson reads a PuzzleInput from a json file.
func PuzzleFromJson(file string) (PuzzleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return PuzzleInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return PuzzleInput{}, err
	}

	var input PuzzleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return PuzzleInput{}, err
	}
	if input.Puzzle == "" {
		return PuzzleInput{}, fmt.Errorf("puzzle file %v has no \"puzzle\" field", file)
	}

	return input, nil
}

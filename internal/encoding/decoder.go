package encoding

import (
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sat"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sudoku"
)

// Decoder rebuilds a solved grid from a satisfying assignment.
type Decoder struct {
	indexer Indexer
}

func NewDecoder() *Decoder {
	return &Decoder{indexer: NewIndexer()}
}

// Decode sets one cell per variable the solution marks true; variables marked
// false or left unset are ignored, as are literals outside [1, 729]. The
// assignment is trusted as-is: should it assert several digits for the same
// cell, variables are visited in increasing order and the last write wins.
func (decoder *Decoder) Decode(solution sat.SATSolution) sudoku.Grid {
	table := solution.TruthTable(Variables)

	var grid sudoku.Grid
	for v := int64(1); v <= Variables; v++ {
		if table[v] == 1 {
			row, col, digit := decoder.indexer.Attributes(v)
			grid[row-1][col-1] = uint8(digit)
		}
	}

	return grid
}

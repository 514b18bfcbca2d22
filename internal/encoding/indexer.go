package encoding

import (
	"fmt"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sudoku"
)

// Variables is the number of SAT variables of a 9x9 puzzle: one per (row, column, digit) fact.
const Variables = sudoku.Size * sudoku.Size * sudoku.Size // 729

// Indexer gives a unique SAT variable to a combination of a cell's attributes and vice versa.
// Rows, columns and digits are 1-based; variables range over [1, 729].
// Arguments outside those ranges are a contract violation and panic.
type Indexer interface {
	// Returns the SAT variable standing for "cell (row, col) holds digit"
	Index(row, col, digit int) int64
	// Returns the cell attributes a SAT variable stands for
	Attributes(variable int64) (row int, col int, digit int)
}

func NewIndexer() Indexer {
	return &cellIndexer{}
}

type cellIndexer struct{}

func (indexer *cellIndexer) Index(row, col, digit int) int64 {
	if !inRange(row) || !inRange(col) || !inRange(digit) {
		panic(fmt.Sprintf("cell attributes out of range: row=%v col=%v digit=%v", row, col, digit))
	}
	return int64(81*(row-1) + 9*(col-1) + digit)
}

func (indexer *cellIndexer) Attributes(variable int64) (row int, col int, digit int) {
	if variable < 1 || variable > Variables {
		panic(fmt.Sprintf("variable out of range: %v", variable))
	}

	v := int(variable) - 1
	row = v/81 + 1
	col = v%81/9 + 1
	digit = v%9 + 1

	return row, col, digit
}

func inRange(attribute int) bool {
	return attribute >= 1 && attribute <= sudoku.Size
}

package encoding

import (
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sat"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sudoku"
)

// Strength selects how redundantly the Sudoku rules are encoded.
type Strength int

const (
	// Minimal emits cell-at-least-one, row/column/box at-most-one and the givens.
	Minimal Strength = iota
	// Extended additionally emits cell-at-most-one and row/column/box
	// at-least-one. Logically redundant, but gives the solver more
	// propagation to work with.
	Extended
)

// Encoder builds the CNF instance whose satisfying assignments are exactly
// the valid completions of a puzzle.
type Encoder struct {
	indexer  Indexer
	strength Strength
}

func NewEncoder(strength Strength) *Encoder {
	return &Encoder{
		indexer:  NewIndexer(),
		strength: strength,
	}
}

// Build returns the SAT instance for the given puzzle. Clause order is fixed:
// constraint families are appended in the order listed below, so the same
// puzzle and strength always produce byte-identical DIMACS output.
func (encoder *Encoder) Build(grid sudoku.Grid) sat.SAT {
	instance := sat.SAT{
		Variables: Variables,
		Clauses:   [][]int64{},
	}

	instance.Clauses = append(instance.Clauses, encoder.cellAtLeastOne()...)
	instance.Clauses = append(instance.Clauses, encoder.rowAtMostOne()...)
	instance.Clauses = append(instance.Clauses, encoder.columnAtMostOne()...)
	instance.Clauses = append(instance.Clauses, encoder.boxAtMostOne()...)
	instance.Clauses = append(instance.Clauses, encoder.givens(grid)...)

	if encoder.strength == Extended {
		instance.Clauses = append(instance.Clauses, encoder.cellAtMostOne()...)
		instance.Clauses = append(instance.Clauses, encoder.rowAtLeastOne()...)
		instance.Clauses = append(instance.Clauses, encoder.columnAtLeastOne()...)
		instance.Clauses = append(instance.Clauses, encoder.boxAtLeastOne()...)
	}

	return instance
}

// Every cell holds at least one digit: (s_rc1 v ... v s_rc9) per cell.
func (encoder *Encoder) cellAtLeastOne() [][]int64 {
	clauses := [][]int64{}
	for row := 1; row <= sudoku.Size; row++ {
		for col := 1; col <= sudoku.Size; col++ {
			clause := make([]int64, 0, sudoku.Size)
			for digit := 1; digit <= sudoku.Size; digit++ {
				clause = append(clause, encoder.indexer.Index(row, col, digit))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// No digit repeats within a row: (-s_r c1 d v -s_r c2 d) for c1 < c2.
func (encoder *Encoder) rowAtMostOne() [][]int64 {
	clauses := [][]int64{}
	for row := 1; row <= sudoku.Size; row++ {
		for digit := 1; digit <= sudoku.Size; digit++ {
			for col1 := 1; col1 < sudoku.Size; col1++ {
				for col2 := col1 + 1; col2 <= sudoku.Size; col2++ {
					clauses = append(clauses, []int64{
						-encoder.indexer.Index(row, col1, digit),
						-encoder.indexer.Index(row, col2, digit),
					})
				}
			}
		}
	}
	return clauses
}

// No digit repeats within a column: (-s_r1 c d v -s_r2 c d) for r1 < r2.
func (encoder *Encoder) columnAtMostOne() [][]int64 {
	clauses := [][]int64{}
	for col := 1; col <= sudoku.Size; col++ {
		for digit := 1; digit <= sudoku.Size; digit++ {
			for row1 := 1; row1 < sudoku.Size; row1++ {
				for row2 := row1 + 1; row2 <= sudoku.Size; row2++ {
					clauses = append(clauses, []int64{
						-encoder.indexer.Index(row1, col, digit),
						-encoder.indexer.Index(row2, col, digit),
					})
				}
			}
		}
	}
	return clauses
}

// No digit repeats within a 3x3 box: pairwise negations over the box's cells.
func (encoder *Encoder) boxAtMostOne() [][]int64 {
	clauses := [][]int64{}
	for boxRow := 0; boxRow < sudoku.BoxSize; boxRow++ {
		for boxCol := 0; boxCol < sudoku.BoxSize; boxCol++ {
			cells := boxCells(boxRow, boxCol)

			for digit := 1; digit <= sudoku.Size; digit++ {
				for i := 0; i < len(cells); i++ {
					for j := i + 1; j < len(cells); j++ {
						clauses = append(clauses, []int64{
							-encoder.indexer.Index(cells[i][0], cells[i][1], digit),
							-encoder.indexer.Index(cells[j][0], cells[j][1], digit),
						})
					}
				}
			}
		}
	}
	return clauses
}

// One unit clause per clue.
func (encoder *Encoder) givens(grid sudoku.Grid) [][]int64 {
	clauses := [][]int64{}
	for row := 1; row <= sudoku.Size; row++ {
		for col := 1; col <= sudoku.Size; col++ {
			digit := int(grid[row-1][col-1])
			if digit >= 1 && digit <= sudoku.Size {
				clauses = append(clauses, []int64{encoder.indexer.Index(row, col, digit)})
			}
		}
	}
	return clauses
}

// Every cell holds at most one digit: (-s_rcd1 v -s_rcd2) for d1 < d2.
func (encoder *Encoder) cellAtMostOne() [][]int64 {
	clauses := [][]int64{}
	for row := 1; row <= sudoku.Size; row++ {
		for col := 1; col <= sudoku.Size; col++ {
			for digit1 := 1; digit1 < sudoku.Size; digit1++ {
				for digit2 := digit1 + 1; digit2 <= sudoku.Size; digit2++ {
					clauses = append(clauses, []int64{
						-encoder.indexer.Index(row, col, digit1),
						-encoder.indexer.Index(row, col, digit2),
					})
				}
			}
		}
	}
	return clauses
}

// Every digit appears at least once in each row.
func (encoder *Encoder) rowAtLeastOne() [][]int64 {
	clauses := [][]int64{}
	for row := 1; row <= sudoku.Size; row++ {
		for digit := 1; digit <= sudoku.Size; digit++ {
			clause := make([]int64, 0, sudoku.Size)
			for col := 1; col <= sudoku.Size; col++ {
				clause = append(clause, encoder.indexer.Index(row, col, digit))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// Every digit appears at least once in each column.
func (encoder *Encoder) columnAtLeastOne() [][]int64 {
	clauses := [][]int64{}
	for col := 1; col <= sudoku.Size; col++ {
		for digit := 1; digit <= sudoku.Size; digit++ {
			clause := make([]int64, 0, sudoku.Size)
			for row := 1; row <= sudoku.Size; row++ {
				clause = append(clause, encoder.indexer.Index(row, col, digit))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// Every digit appears at least once in each 3x3 box.
func (encoder *Encoder) boxAtLeastOne() [][]int64 {
	clauses := [][]int64{}
	for boxRow := 0; boxRow < sudoku.BoxSize; boxRow++ {
		for boxCol := 0; boxCol < sudoku.BoxSize; boxCol++ {
			cells := boxCells(boxRow, boxCol)

			for digit := 1; digit <= sudoku.Size; digit++ {
				clause := make([]int64, 0, sudoku.Size)
				for _, cell := range cells {
					clause = append(clause, encoder.indexer.Index(cell[0], cell[1], digit))
				}
				clauses = append(clauses, clause)
			}
		}
	}
	return clauses
}

// boxCells lists the 9 (row, col) cells of box (boxRow, boxCol) in row-major order.
func boxCells(boxRow, boxCol int) [][2]int {
	cells := make([][2]int, 0, sudoku.Size)
	for dr := 0; dr < sudoku.BoxSize; dr++ {
		for dc := 0; dc < sudoku.BoxSize; dc++ {
			cells = append(cells, [2]int{
				sudoku.BoxSize*boxRow + dr + 1,
				sudoku.BoxSize*boxCol + dc + 1,
			})
		}
	}
	return cells
}

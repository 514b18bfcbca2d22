package sat

import (
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrUnsatisfiable reports a solver verdict of UNSAT: the formula, and therefore the puzzle, has no solution.
var ErrUnsatisfiable = errors.New("formula is unsatisfiable: puzzle has no solution")

var solverKeywords = []string{"SAT", "UNSAT", "UNKNOWN", "v"}

// ParseSolution extracts the literal assignment from a SAT solver's textual output.
//
// The parser accepts a tolerant superset of the formats solvers emit: lines
// beginning with 'c' (comment) or 's' (status) are skipped, the tokens "SAT",
// "UNSAT", "UNKNOWN" and "v" are skipped, every remaining token that parses as
// a nonzero integer is taken as a literal and anything else is ignored. The
// strict two-line "SAT\n<literals> 0" form is a special case of the above. A
// bare "UNSAT" line or an "s UNSATISFIABLE" status line yields
// ErrUnsatisfiable.
func ParseSolution(solverOutput string) (SATSolution, error) {
	solution := SATSolution{}
	for _, line := range strings.Split(solverOutput, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "UNSAT" || (strings.HasPrefix(trimmed, "s ") && strings.Contains(trimmed, "UNSAT")) {
			return nil, ErrUnsatisfiable
		}
		if strings.HasPrefix(trimmed, "c") || strings.HasPrefix(trimmed, "s") {
			continue
		}

		for _, token := range strings.Fields(trimmed) {
			if lo.Contains(solverKeywords, token) {
				continue
			}
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil || literal == 0 { // 0 terminates an assignment run; non-integers are noise
				continue
			}
			solution = append(solution, literal)
		}
	}
	return solution, nil
}

// TruthTable holds one truth value per variable: 0 unset, 1 true, -1 false.
// Index 0 is unused so that variable v lives at index v.
type TruthTable []int8

// TruthTable folds the literal list into per-variable truth values.
// Literals whose variable falls outside [1, variables] are ignored.
func (solution SATSolution) TruthTable(variables uint64) TruthTable {
	table := make(TruthTable, variables+1)
	for _, literal := range solution {
		if literal > 0 && uint64(literal) <= variables {
			table[literal] = 1
		} else if literal < 0 && uint64(-literal) <= variables {
			table[-literal] = -1
		}
	}
	return table
}

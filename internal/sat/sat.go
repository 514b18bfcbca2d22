package sat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// WriteDIMACS streams the instance in DIMACS-CNF format without building the whole string in memory
func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses)); err != nil {
		return err
	}
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			if _, err := fmt.Fprintf(writer, "%d ", literal); err != nil {
				return err
			}
		}
		if _, err := writer.WriteString("0\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

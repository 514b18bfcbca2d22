package sat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDIMACS(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 729,
		Clauses: [][]int64{
			{1, 2, 3},
			{-1, -2},
			{5},
		},
	}

	// Act
	dimacs := instance.ToDIMACS()

	// Assert
	lines := strings.Split(strings.TrimSuffix(dimacs, "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "p cnf 729 3", lines[0])
	assert.Equal(t, "1 2 3 0", lines[1])
	assert.Equal(t, "-1 -2 0", lines[2])
	assert.Equal(t, "5 0", lines[3])
}

func TestWriteDIMACSMatchesToDIMACS(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 729,
		Clauses: [][]int64{
			{1, -2, 3},
			{729},
		},
	}

	// Act
	var builder strings.Builder
	err := instance.WriteDIMACS(&builder)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, instance.ToDIMACS(), builder.String())
}

func TestToDIMACSEmptyFormula(t *testing.T) {
	instance := SAT{Variables: 729, Clauses: [][]int64{}}
	assert.Equal(t, "p cnf 729 0\n", instance.ToDIMACS())
}

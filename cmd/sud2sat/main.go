package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/encoding"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sudoku"
)

var (
	validEncodings = []string{"minimal", "extended"}
	strengths      = map[string]encoding.Strength{
		"minimal":  encoding.Minimal,
		"extended": encoding.Extended,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the puzzle file; if empty, the puzzle is read from the Standard Input")
	outFilePathPtr := flag.String("out", "", "Path to the file where the DIMACS-CNF formula will be written; if empty, it'll be written into the Standard Output")
	encodingPtr := flag.String("encoding", "minimal", "Encoding strength to use. Allowed values are: \"minimal\" and \"extended\", where \"minimal\" is the default")
	jsonPtr := flag.Bool("json", false, "Treat the input file as a json puzzle file instead of plain puzzle text")
	flag.Parse()
	encodingStr := strings.ToLower(*encodingPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validEncodings, encodingStr) {
		log.Fatalf("%v is not a valid encoding", encodingStr)
	} else if *jsonPtr && filePath == "" {
		log.Fatal("-json requires an input file")
	}

	// Extract puzzle
	grid := readGrid(filePath, *jsonPtr)

	// Build CNF instance
	encoder := encoding.NewEncoder(strengths[encodingStr])
	instance := encoder.Build(grid)

	// Verify outfile is empty, if so then write the formula to the Standard Output
	if outFile == "" {
		if err := instance.WriteDIMACS(os.Stdout); err != nil {
			log.Fatalf("an error occurred while writing the formula: %v", err)
		}
	} else {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("cannot create output file %v: %v", outFile, err)
		}
		defer file.Close()
		if err := instance.WriteDIMACS(file); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

func readGrid(filePath string, fromJson bool) sudoku.Grid {
	if fromJson {
		input, err := sudoku.PuzzleFromJson(filePath)
		if err != nil {
			log.Fatalf("cannot parse puzzle file %v: %v", filePath, err)
		}
		grid, err := input.Grid()
		if err != nil {
			log.Fatalf("cannot parse puzzle file %v: %v", filePath, err)
		}
		return grid
	}

	in := os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("cannot open puzzle file %v: %v", filePath, err)
		}
		defer file.Close()
		in = file
	}

	grid, err := sudoku.ParseGrid(in)
	if err != nil {
		log.Fatalf("cannot parse puzzle: %v", err)
	}
	return grid
}

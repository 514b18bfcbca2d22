package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/encoding"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/sat"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the solver output file; if empty, it is read from the Standard Input")
	outFilePathPtr := flag.String("out", "", "Path to the file where the solved grid will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Read solver output
	in := os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("cannot open assignment file %v: %v", filePath, err)
		}
		defer file.Close()
		in = file
	}

	output, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("cannot read solver output: %v", err)
	}

	// Parse assignment; exit-code 20 stands for unsatisfiable, as solvers report it
	solution, err := sat.ParseSolution(string(output))
	if errors.Is(err, sat.ErrUnsatisfiable) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(20)
	} else if err != nil {
		log.Fatalf("cannot parse solver output: %v", err)
	}

	// Decode assignment into a solved grid
	decoder := encoding.NewDecoder()
	grid := decoder.Decode(solution)

	// Verify outfile is empty, if so then write the grid to the Standard Output
	if outFile == "" {
		fmt.Print(grid)
	} else {
		if err := os.WriteFile(outFile, []byte(grid.String()), 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

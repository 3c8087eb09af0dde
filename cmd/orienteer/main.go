// Command orienteer prints the fewest steps needed to walk from S through
// every @ to G on a grid file, or -1 when that is impossible.
//
//	orienteer [-heuristic name] [-workers n] [-debug] FILE
//	orienteer -serve
//
// FILE "-" reads standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
	"github.com/katalvlaran/orienteer/solver"
)

var (
	colorValue = color.Style{color.FgGreen, color.OpBold}
	colorNone  = color.Style{color.FgRed, color.OpBold}
	colorLabel = color.Style{color.FgGray}
	colorError = color.Style{color.FgRed}
)

func main() {
	var (
		heuristic = flag.String("heuristic", pathfind.NameManhattan, "pathfinder heuristic: manhattan or squared-euclidean")
		workers   = flag.Int("workers", 1, "concurrent pair searches while building the distance matrix")
		debug     = flag.Bool("debug", false, "print the grid, landmarks and distance matrix before the result")
		serve     = flag.Bool("serve", false, "run the HTTP API configured from ORIENTEER_* variables")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE\n       %s -serve\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Enable = false
	}
	logger := log.New(os.Stderr, "orienteer: ", log.LstdFlags)

	if *serve {
		if err := runServer(logger); err != nil {
			logger.Fatalf("[APP] [FATAL] %v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, flag.Arg(0), *heuristic, *workers, *debug); err != nil {
		fmt.Fprintln(os.Stderr, colorError.Sprint(err))
		os.Exit(1)
	}
}

// run solves one grid file and writes the result to w.
func run(w io.Writer, path, heuristic string, workers int, debug bool) error {
	h, err := pathfind.ParseHeuristic(heuristic)
	if err != nil {
		return err
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	g, err := grid.Parse(in)
	if err != nil {
		return err
	}

	res, err := solver.Solve(g, solver.WithHeuristic(h), solver.WithWorkers(workers))
	if err != nil {
		return err
	}

	if debug {
		dump(w, g, res)
	}
	if !res.Solved() {
		fmt.Fprintln(w, colorNone.Sprint(solver.NoSolution))
		return nil
	}
	fmt.Fprintln(w, colorValue.Sprint(res.Length))

	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/solver"
)

// dump writes the diagnostic view: dimensions, terrain and landmarks, then
// the closed distance matrix and the visiting order when the solver got that far.
func dump(w io.Writer, g *grid.Grid, res solver.Result) {
	fmt.Fprintln(w)
	fmt.Fprint(w, g.String())

	lm := g.Landmarks()
	for i, c := range lm {
		var label string
		switch i {
		case grid.OriginIndex:
			label = "origin"
		case grid.GoalIndex:
			label = "goal"
		default:
			label = fmt.Sprintf("waypoint %d", i-1)
		}
		fmt.Fprintf(w, "%s (%d, %d)\n", colorLabel.Sprint(label+":"), c.X, c.Y)
	}

	if res.Matrix == nil {
		return
	}
	fmt.Fprint(w, res.Matrix.String())
	if !res.Solved() {
		return
	}

	fmt.Fprint(w, colorLabel.Sprint("order:"))
	for _, c := range res.Order {
		fmt.Fprintf(w, " (%d, %d)", c.X, c.Y)
	}
	fmt.Fprintln(w)
}

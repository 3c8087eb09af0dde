package pathfind_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
)

// bitmap is a minimal Walkable over '.'/'#' rows, free of the landmark rules of grid.Grid.
type bitmap []string

func (b bitmap) Traversable(c grid.Cell) bool {
	if c.Y < 0 || c.Y >= len(b) || c.X < 0 || c.X >= len(b[c.Y]) {
		return false
	}

	return b[c.Y][c.X] != '#'
}

// open returns a w×h bitmap with no obstacles.
func open(w, h int) bitmap {
	rows := make(bitmap, h)
	for y := range rows {
		rows[y] = strings.Repeat(".", w)
	}

	return rows
}

// random returns a w×h bitmap with roughly density·w·h obstacles.
func random(rng *rand.Rand, w, h int, density float64) bitmap {
	rows := make(bitmap, h)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}

	return rows
}

// freeCells lists every traversable cell row-major.
func freeCells(b bitmap) []grid.Cell {
	var out []grid.Cell
	for y, row := range b {
		for x := range row {
			if row[x] != '#' {
				out = append(out, grid.Cell{X: x, Y: y})
			}
		}
	}

	return out
}

// bfs is the reference shortest step count; -1 when unreachable.
func bfs(b bitmap, s, t grid.Cell) int {
	dist := map[grid.Cell]int{s: 0}
	queue := []grid.Cell{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == t {
			return dist[u]
		}
		for _, d := range []grid.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
			v := grid.Cell{X: u.X + d.X, Y: u.Y + d.Y}
			if _, seen := dist[v]; seen || !b.Traversable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return -1
}

// requireWalkable checks that cells runs from s to g in unit steps over free cells.
func requireWalkable(t *testing.T, b bitmap, cells []grid.Cell, s, g grid.Cell) {
	t.Helper()
	require.NotEmpty(t, cells)
	require.Equal(t, s, cells[0])
	require.Equal(t, g, cells[len(cells)-1])
	for i := 1; i < len(cells); i++ {
		require.True(t, b.Traversable(cells[i]))
		require.Equal(t, 1, pathfind.Manhattan(cells[i-1], cells[i]), "step %d", i)
	}
}

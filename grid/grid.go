package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Grid from terrain rows (one string per row, one byte per cell).
// The dimensions are taken from the rows themselves.
//
// Validation, in order:
//  1. dimensions within Options.MaxWidth × Options.MaxHeight (ErrDimensions),
//  2. every row has the same length (ErrRowWidth),
//  3. every byte belongs to ". # S G @" (ErrIllegalTerrain),
//  4. exactly one origin and one goal (ErrDuplicate*/ErrMissing*),
//  5. landmark count within Options.MaxLandmarks (ErrTooManyLandmarks).
//
// Landmarks are collected in row-major order: origin at index 0, goal at
// index 1, waypoints from index 2 in the order they are met.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Grid, error) {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return build(w, len(rows), rows, cfg)
}

// checkDimensions reports ErrDimensions unless 1 ≤ w ≤ MaxWidth and 1 ≤ h ≤ MaxHeight.
func checkDimensions(w, h int, cfg Options) error {
	if w < 1 || w > cfg.MaxWidth || h < 1 || h > cfg.MaxHeight {
		return fmt.Errorf("%w: %dx%d (limits 1..%d x 1..%d)",
			ErrDimensions, w, h, cfg.MaxWidth, cfg.MaxHeight)
	}

	return nil
}

// build validates rows against the declared w×h and assembles the Grid.
func build(w, h int, rows []string, cfg Options) (*Grid, error) {
	if err := checkDimensions(w, h, cfg); err != nil {
		return nil, err
	}
	if len(rows) < h {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRowCount, len(rows), h)
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		terrain: make([]Terrain, w*h),
		// origin and goal slots are filled in place; waypoints are appended.
		landmarks: make([]Cell, 2, cfg.MaxLandmarks),
	}
	var hasOrigin, hasGoal bool

	for y := 0; y < h; y++ {
		row := rows[y]
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowWidth, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			t, ok := terrainOf(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrIllegalTerrain, row[x], x, y)
			}
			g.terrain[g.index(x, y)] = t

			switch t {
			case Origin:
				if hasOrigin {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrDuplicateOrigin, x, y)
				}
				hasOrigin = true
				g.landmarks[OriginIndex] = Cell{X: x, Y: y}
			case Goal:
				if hasGoal {
					return nil, fmt.Errorf("%w: second 'G' at (%d,%d)", ErrDuplicateGoal, x, y)
				}
				hasGoal = true
				g.landmarks[GoalIndex] = Cell{X: x, Y: y}
			case Waypoint:
				if len(g.landmarks) >= cfg.MaxLandmarks {
					return nil, fmt.Errorf("%w: at most %d waypoints", ErrTooManyLandmarks, cfg.MaxLandmarks-2)
				}
				g.landmarks = append(g.landmarks, Cell{X: x, Y: y})
			}
		}
	}

	if !hasOrigin {
		return nil, ErrMissingOrigin
	}
	if !hasGoal {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the terrain at c. Out-of-bounds cells (and a nil Grid) read as Obstacle.
func (g *Grid) At(c Cell) Terrain {
	if g == nil || !g.InBounds(c) {
		return Obstacle
	}

	return g.terrain[g.index(c.X, c.Y)]
}

// Traversable reports whether c can be stepped on: in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) Traversable(c Cell) bool {
	return g.At(c) != Obstacle
}

// Landmarks returns a copy of the ordered landmark list:
// index 0 origin, index 1 goal, then waypoints in row-major order.
func (g *Grid) Landmarks() []Cell {
	out := make([]Cell, len(g.landmarks))
	copy(out, g.landmarks)

	return out
}

// Waypoints returns the number of waypoint cells.
func (g *Grid) Waypoints() int {
	return len(g.landmarks) - 2
}

// String renders the canonical text form: a "W,H" header followed by one
// line per row. Parse(strings.NewReader(g.String())) reproduces g.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(8 + (g.Width+1)*g.Height)
	sb.WriteString(strconv.Itoa(g.Width))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(g.Height))
	sb.WriteByte('\n')
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(g.terrain[g.index(x, y)].Byte())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

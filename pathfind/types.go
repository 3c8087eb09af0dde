package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orienteer/grid"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNilGrid indicates that a nil Walkable was passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrBlocked indicates that the source or target cell cannot be stepped on.
	ErrBlocked = errors.New("pathfind: source or target is not traversable")

	// ErrUnreachable indicates that the frontier emptied before the target was reached.
	ErrUnreachable = errors.New("pathfind: target unreachable")

	// ErrUnknownHeuristic indicates that ParseHeuristic got a name it does not know.
	ErrUnknownHeuristic = errors.New("pathfind: unknown heuristic")
)

// Walkable is the only view of the map the pathfinder needs.
// Traversable must return false for obstacles and out-of-bounds cells.
type Walkable interface {
	Traversable(c grid.Cell) bool
}

// Heuristic estimates the remaining step count from a cell to the target.
type Heuristic func(from, to grid.Cell) int

// Heuristic names accepted by ParseHeuristic.
const (
	NameManhattan        = "manhattan"
	NameSquaredEuclidean = "squared-euclidean"
)

// Manhattan is |dx| + |dy|: admissible and consistent for unit-cost
// four-directional moves, so the search returns true shortest distances.
func Manhattan(from, to grid.Cell) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// SquaredEuclidean is dx² + dy². It overestimates whenever the true distance
// exceeds one step, so results may be longer than the shortest path.
// Kept for comparing against maps solved with it historically.
func SquaredEuclidean(from, to grid.Cell) int {
	dx, dy := from.X-to.X, from.Y-to.Y

	return dx*dx + dy*dy
}

// ParseHeuristic maps a configuration name to a Heuristic.
// The empty string selects Manhattan.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", NameManhattan:
		return Manhattan, nil
	case NameSquaredEuclidean:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Options configures a search.
//
// Heuristic – node prioritisation toward the target. Default Manhattan.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic sets the heuristic. A nil h leaves the current one in place.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns Options with the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Manhattan}
}

// Path is the outcome of a successful search.
type Path struct {
	// Cells runs from source to target inclusive; consecutive cells are orthogonal neighbours.
	Cells []grid.Cell

	// Expanded counts frontier selections, including re-expansions of re-opened cells.
	Expanded int

	// Reopened counts visited cells moved back to the frontier by a cheaper route.
	// Always zero under Manhattan.
	Reopened int
}

// Steps returns the number of moves along the path (the source contributes zero).
func (p Path) Steps() int {
	if len(p.Cells) == 0 {
		return 0
	}

	return len(p.Cells) - 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

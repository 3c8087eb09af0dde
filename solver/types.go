package solver

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/orienteer/distance"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
)

// NoSolution is Result.Length when some pair of landmarks is disconnected.
const NoSolution = -1

var (
	// ErrTooFewLandmarks indicates fewer than two landmarks (origin and goal).
	ErrTooFewLandmarks = errors.New("solver: need at least origin and goal")

	// ErrInconsistentTable indicates that the closed matrix had no finite entry
	// for some pair even though every pair was connected. It wraps tour.ErrNoTour.
	ErrInconsistentTable = errors.New("solver: inconsistent distance table")
)

// Result is the outcome of a tour computation.
type Result struct {
	// Length is the minimum number of steps of the tour, or NoSolution.
	Length int

	// Order lists the landmarks in visiting order, origin first and goal last.
	// Nil when there is no solution.
	Order []grid.Cell

	// Matrix is the closed landmark distance matrix. Nil when there is no solution.
	Matrix *distance.Matrix
}

// Solved reports whether a tour exists.
func (r Result) Solved() bool { return r.Length != NoSolution }

// Options configures a solve.
type Options struct {
	Heuristic pathfind.Heuristic
	Workers   int
	Logger    *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithHeuristic selects the pathfinder heuristic.
func WithHeuristic(h pathfind.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithWorkers sets the number of concurrent pair searches in the matrix build.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger for stage messages.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Manhattan search, one worker and a silent logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: pathfind.Manhattan,
		Workers:   1,
		Logger:    log.New(io.Discard, "", 0),
	}
}

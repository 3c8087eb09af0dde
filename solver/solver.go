package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/orienteer/distance"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
	"github.com/katalvlaran/orienteer/tour"
)

// Solve computes the tour over g's own landmark list. A landmark outside the
// origin's region yields NoSolution before any search runs.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, pathfind.ErrNilGrid
	}
	if idx, split := g.Isolated(); split {
		cfg := DefaultOptions()
		for _, opt := range opts {
			opt(&cfg)
		}
		cfg.Logger.Printf("no tour: landmark %d %v is cut off from the origin", idx, g.Landmarks()[idx])

		return Result{Length: NoSolution}, nil
	}

	return SolveTour(g, g.Landmarks(), opts...)
}

// SolveTour returns the minimum number of unit steps of a walk that starts at
// landmarks[0], visits every landmark and ends at landmarks[1].
//
// Stages:
//  1. distance.Build: one pathfind search per landmark pair.
//  2. distance.Close: triangle-inequality repair.
//  3. tour.Solve: Held–Karp from index 0 to index 1.
//
// A disconnected pair stops after stage 1 with Length == NoSolution and a nil
// error. Stage 3 failing on a fully connected matrix is ErrInconsistentTable.
func SolveTour(g pathfind.Walkable, landmarks []grid.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, pathfind.ErrNilGrid
	}
	if len(landmarks) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewLandmarks, len(landmarks))
	}
	if len(landmarks) > tour.MaxLandmarks {
		return Result{}, fmt.Errorf("%w: %d > %d", tour.ErrTooManyLandmarks, len(landmarks), tour.MaxLandmarks)
	}

	began := time.Now()
	m, err := distance.Build(g, landmarks,
		distance.WithHeuristic(cfg.Heuristic),
		distance.WithWorkers(cfg.Workers),
	)
	if errors.Is(err, distance.ErrDisconnected) {
		cfg.Logger.Printf("no tour: %v", err)

		return Result{Length: NoSolution}, nil
	}
	if err != nil {
		return Result{}, err
	}
	cfg.Logger.Printf("matrix %dx%d built in %s", m.Len(), m.Len(), time.Since(began))

	distance.Close(m)

	began = time.Now()
	res, err := tour.Solve(m, grid.OriginIndex, grid.GoalIndex)
	if errors.Is(err, tour.ErrNoTour) {
		return Result{}, fmt.Errorf("%w: %w", ErrInconsistentTable, err)
	}
	if err != nil {
		return Result{}, err
	}
	cfg.Logger.Printf("tour of %d landmarks solved in %s: length %d", m.Len(), time.Since(began), res.Length)

	order := make([]grid.Cell, len(res.Order))
	for i, idx := range res.Order {
		order[i] = landmarks[idx]
	}

	return Result{Length: res.Length, Order: order, Matrix: m}, nil
}

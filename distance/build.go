package distance

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
)

// Options configures Build.
//
// Heuristic – forwarded to every pathfind search. Default pathfind.Manhattan.
// Workers   – number of pair searches in flight. 1 (default) runs them strictly
// one after another; any larger value yields the same matrix.
type Options struct {
	Heuristic pathfind.Heuristic
	Workers   int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithHeuristic selects the pathfinder heuristic.
func WithHeuristic(h pathfind.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithWorkers sets the number of concurrent pair searches. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// DefaultOptions returns Options for a sequential build with the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: pathfind.Manhattan, Workers: 1}
}

// pair is one unordered landmark pair i < j.
type pair struct{ i, j int }

// Build computes the symmetric K×K step-count matrix among landmarks by running
// the pathfinder once per unordered pair i < j, searching from landmark j
// toward landmark i. The diagonal is zero.
//
// The first disconnected pair aborts the build with ErrDisconnected (wrapped
// with the pair); no matrix is returned. With several workers, the pair named
// in the error is whichever failed first.
//
// Complexity: K(K−1)/2 pathfinder runs.
func Build(g pathfind.Walkable, landmarks []grid.Cell, opts ...Option) (*Matrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(landmarks) == 0 {
		return nil, ErrNoLandmarks
	}
	m, err := NewMatrix(len(landmarks))
	if err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, len(landmarks)*(len(landmarks)-1)/2)
	for i := 0; i < len(landmarks); i++ {
		for j := i + 1; j < len(landmarks); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	search := func(p pair) error {
		steps, err := pathfind.ShortestSteps(g, landmarks[p.j], landmarks[p.i], pathfind.WithHeuristic(cfg.Heuristic))
		if errors.Is(err, pathfind.ErrUnreachable) {
			return fmt.Errorf("%w: landmark %d %v and landmark %d %v",
				ErrDisconnected, p.i, landmarks[p.i], p.j, landmarks[p.j])
		}
		if err != nil {
			return fmt.Errorf("distance: landmarks %d and %d: %w", p.i, p.j, err)
		}
		// distinct pairs write distinct cells; no locking needed
		m.SetPair(p.i, p.j, steps)

		return nil
	}

	if cfg.Workers <= 1 {
		for _, p := range pairs {
			if err = search(p); err != nil {
				return nil, err
			}
		}

		return m, nil
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(cfg.Workers)
	for _, p := range pairs {
		if ctx.Err() != nil {
			break
		}
		p := p
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			return search(p)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

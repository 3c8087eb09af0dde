package tour

import (
	"errors"
	"math"
)

// MaxLandmarks is the largest K the DP accepts. The tables take
// 2^K·K·5 bytes: about 100 MiB at K = 20.
const MaxLandmarks = 20

// Inf marks a missing edge. It equals distance.Inf.
const Inf = math.MaxInt32

// MaxStep bounds every finite matrix entry so that a full path of K−1 edges
// still fits the int32 DP table.
const MaxStep = Inf / MaxLandmarks

// Sentinel errors returned by Solve.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("tour: empty matrix")

	// ErrIndexRange indicates a start or end index outside [0, K).
	ErrIndexRange = errors.New("tour: endpoint index out of range")

	// ErrSameEndpoints indicates start == end while K > 1.
	ErrSameEndpoints = errors.New("tour: start and end must differ")

	// ErrTooManyLandmarks indicates K > MaxLandmarks.
	ErrTooManyLandmarks = errors.New("tour: too many landmarks")

	// ErrEntryRange indicates a negative entry or a finite entry above MaxStep.
	ErrEntryRange = errors.New("tour: matrix entry out of range")

	// ErrNoTour indicates that no Hamiltonian path from start to end uses
	// only finite entries.
	ErrNoTour = errors.New("tour: no Hamiltonian path")
)

// Matrix is the read-only view Solve needs. *distance.Matrix satisfies it.
type Matrix interface {
	Len() int
	At(i, j int) int
}

// Result holds the cheapest Hamiltonian path.
type Result struct {
	// Length is the sum of matrix entries along Order.
	Length int

	// Order lists every landmark index exactly once, Order[0] == start and
	// Order[K-1] == end.
	Order []int
}

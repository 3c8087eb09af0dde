package tour_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/distance"
	"github.com/katalvlaran/orienteer/tour"
)

// dense is a plain [][]int Matrix for tests.
type dense [][]int

func (d dense) Len() int        { return len(d) }
func (d dense) At(i, j int) int { return d[i][j] }

// bruteForce enumerates every ordering of the middle indices and returns the
// cheapest start→end length, or -1 when all orderings hit an Inf entry.
func bruteForce(m dense, start, end int) int {
	var mid []int
	for i := range m {
		if i != start && i != end {
			mid = append(mid, i)
		}
	}
	best := -1
	var permute func(k int)
	permute = func(k int) {
		if k == len(mid) {
			total, at := 0, start
			for _, v := range append(append([]int{}, mid...), end) {
				if m[at][v] == tour.Inf {
					return
				}
				total += m[at][v]
				at = v
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := k; i < len(mid); i++ {
			mid[k], mid[i] = mid[i], mid[k]
			permute(k + 1)
			mid[k], mid[i] = mid[i], mid[k]
		}
	}
	permute(0)

	return best
}

// pathCost sums m along order.
func pathCost(m tour.Matrix, order []int) int {
	total := 0
	for i := 1; i < len(order); i++ {
		total += m.At(order[i-1], order[i])
	}

	return total
}

func randomDense(rng *rand.Rand, n int, infShare float64) dense {
	m := make(dense, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 1 + rng.Intn(30)
			if rng.Float64() < infShare {
				v = tour.Inf
			}
			m[i][j], m[j][i] = v, v
		}
	}

	return m
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestSolve_Errors(t *testing.T) {
	big := make(dense, tour.MaxLandmarks+1)
	for i := range big {
		big[i] = make([]int, len(big))
	}

	cases := []struct {
		name       string
		m          tour.Matrix
		start, end int
		want       error
	}{
		{"Nil", nil, 0, 1, tour.ErrEmptyMatrix},
		{"Empty", dense{}, 0, 1, tour.ErrEmptyMatrix},
		{"TooMany", big, 0, 1, tour.ErrTooManyLandmarks},
		{"StartRange", dense{{0, 1}, {1, 0}}, -1, 1, tour.ErrIndexRange},
		{"EndRange", dense{{0, 1}, {1, 0}}, 0, 2, tour.ErrIndexRange},
		{"SameEndpoints", dense{{0, 1}, {1, 0}}, 1, 1, tour.ErrSameEndpoints},
		{"Negative", dense{{0, -3}, {-3, 0}}, 0, 1, tour.ErrEntryRange},
		{"Huge", dense{{0, tour.MaxStep + 1}, {tour.MaxStep + 1, 0}}, 0, 1, tour.ErrEntryRange},
		{"NoEdge", dense{{0, tour.Inf}, {tour.Inf, 0}}, 0, 1, tour.ErrNoTour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tour.Solve(tc.m, tc.start, tc.end)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Small cases
//----------------------------------------------------------------------------//

func TestSolve_SingleLandmark(t *testing.T) {
	res, err := tour.Solve(dense{{0}}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, res.Length)
	require.Equal(t, []int{0}, res.Order)
}

func TestSolve_TwoLandmarks(t *testing.T) {
	res, err := tour.Solve(dense{{0, 9}, {9, 0}}, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 9, res.Length)
	require.Equal(t, []int{0, 1}, res.Order)
}

func TestSolve_Line(t *testing.T) {
	// points on a line at 0, 10, 3, 7: origin 0, goal 10, waypoints 3 and 7
	pos := []int{0, 10, 3, 7}
	m := make(dense, len(pos))
	for i := range m {
		m[i] = make([]int, len(pos))
		for j := range m[i] {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			m[i][j] = d
		}
	}
	res, err := tour.Solve(m, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 10, res.Length)
	require.Equal(t, []int{0, 2, 3, 1}, res.Order)
}

func TestSolve_SparseChainForcesOrder(t *testing.T) {
	// only 0–3–2–1 is connected
	inf := tour.Inf
	m := dense{
		{0, inf, inf, 4},
		{inf, 0, 5, inf},
		{inf, 5, 0, 6},
		{4, inf, 6, 0},
	}
	res, err := tour.Solve(m, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 15, res.Length)
	require.Equal(t, []int{0, 3, 2, 1}, res.Order)
}

func TestSolve_AcceptsDistanceMatrix(t *testing.T) {
	m, err := distance.FromRows([][]int{
		{0, 2, 3},
		{2, 0, 4},
		{3, 4, 0},
	})
	require.NoError(t, err)

	res, err := tour.Solve(m, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 7, res.Length)
	require.Equal(t, []int{0, 2, 1}, res.Order)
}

//----------------------------------------------------------------------------//
// Oracles
//----------------------------------------------------------------------------//

func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.Intn(7)
		m := randomDense(rng, n, 0.25)
		start := rng.Intn(n)
		end := (start + 1 + rng.Intn(n-1)) % n

		want := bruteForce(m, start, end)
		res, err := tour.Solve(m, start, end)
		if want < 0 {
			require.ErrorIs(t, err, tour.ErrNoTour, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, want, res.Length, "trial %d", trial)

		require.Len(t, res.Order, n)
		require.Equal(t, start, res.Order[0])
		require.Equal(t, end, res.Order[n-1])
		require.ElementsMatch(t, perm(n), res.Order)
		require.Equal(t, res.Length, pathCost(m, res.Order))
	}
}

func TestSolve_RelabelInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 3 + rng.Intn(6)
		m := randomDense(rng, n, 0)
		base, err := tour.Solve(m, 0, 1)
		require.NoError(t, err)

		// shuffle waypoint labels 2..n-1, keep the endpoints
		p := perm(n)
		rng.Shuffle(n-2, func(a, b int) { p[a+2], p[b+2] = p[b+2], p[a+2] })
		shuffled := make(dense, n)
		for i := range shuffled {
			shuffled[i] = make([]int, n)
			for j := range shuffled[i] {
				shuffled[i][j] = m[p[i]][p[j]]
			}
		}
		got, err := tour.Solve(shuffled, 0, 1)
		require.NoError(t, err)
		require.Equal(t, base.Length, got.Length, "trial %d", trial)
	}
}

func perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

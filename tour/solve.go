package tour

import "fmt"

// noParent marks a DP state without a predecessor.
const noParent = -1

// Solve returns the cheapest path that starts at index start, ends at index
// end and visits every index of m exactly once, using the Held–Karp DP:
//
//	dp[{start}][start] = 0
//	dp[S][j] = min over k in S\{j} of dp[S\{j}][k] + m[k][j]
//
// Masks are filled in ascending order, so every predecessor subset is final
// before it is read. end is only entered as the last vertex. Inf entries are
// treated as missing edges.
//
// For K = 1 with start == end == 0 the result is Length 0, Order [0].
//
// Complexity: Time O(K²·2^K), memory O(K·2^K).
func Solve(m Matrix, start, end int) (Result, error) {
	if m == nil || m.Len() == 0 {
		return Result{}, ErrEmptyMatrix
	}
	n := m.Len()
	if n > MaxLandmarks {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyLandmarks, n, MaxLandmarks)
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return Result{}, fmt.Errorf("%w: start=%d end=%d K=%d", ErrIndexRange, start, end, n)
	}
	if n == 1 {
		return Result{Length: 0, Order: []int{0}}, nil
	}
	if start == end {
		return Result{}, fmt.Errorf("%w: %d", ErrSameEndpoints, start)
	}
	if err := validate(m, n); err != nil {
		return Result{}, err
	}

	var (
		full    = 1<<n - 1
		endBit  = 1 << end
		dp      = make([]int32, (full+1)*n)
		parent  = make([]int8, (full+1)*n)
		mask    int
		j, k    int
		prev    int
		cur, c  int32
		bestIdx int
	)
	for i := range dp {
		dp[i] = Inf
		parent[i] = noParent
	}
	dp[(1<<start)*n+start] = 0

	for mask = 1; mask <= full; mask++ {
		if mask&(1<<start) == 0 {
			continue
		}
		if mask&endBit != 0 && mask != full {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			bestIdx = mask*n + j
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cur = dp[prev*n+k]
				if cur == Inf {
					continue
				}
				step := m.At(k, j)
				if step == Inf {
					continue
				}
				c = cur + int32(step)
				if c < dp[bestIdx] {
					dp[bestIdx] = c
					parent[bestIdx] = int8(k)
				}
			}
		}
	}

	length := dp[full*n+end]
	if length == Inf {
		return Result{}, ErrNoTour
	}

	order := make([]int, n)
	mask, j = full, end
	for pos := n - 1; pos >= 0; pos-- {
		order[pos] = j
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}

	return Result{Length: int(length), Order: order}, nil
}

// validate checks that every off-diagonal entry is Inf or within [0, MaxStep].
func validate(m Matrix, n int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := m.At(i, j)
			if v == Inf {
				continue
			}
			if v < 0 || v > MaxStep {
				return fmt.Errorf("%w: [%d][%d]=%d", ErrEntryRange, i, j, v)
			}
		}
	}

	return nil
}

package distance

// Close runs the all-pairs shortest-path relaxation on m in place:
//
//	for k, for i, for j: m[i][j] = min(m[i][j], m[i][k] + m[k][j])
//
// Afterwards every entry satisfies the triangle inequality across landmarks.
// It cannot repair a direct entry that no composite route beats; it only
// lowers entries where a cheaper chain through other landmarks exists.
//
// Policy:
//   - Inf entries never take part in a sum.
//   - Strict improvement only; loop order k → i → j is fixed.
//   - Idempotent: a second call changes nothing.
//
// Complexity: Time O(K³), extra space O(1).
func Close(m *Matrix) {
	n := m.n
	data := m.data

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row offsets in the flat buffer
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

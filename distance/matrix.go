package distance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Inf marks "no path" between two landmarks. It is never added to anything.
const Inf = math.MaxInt32

// Sentinel errors for matrix construction and building.
var (
	// ErrBadSize indicates a non-positive matrix order.
	ErrBadSize = errors.New("distance: matrix order must be positive")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("distance: matrix is not square")

	// ErrNonZeroDiagonal indicates matrix[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("distance: diagonal must be zero")

	// ErrNegative indicates a negative step count.
	ErrNegative = errors.New("distance: negative distance")

	// ErrNoLandmarks indicates Build was called with an empty landmark list.
	ErrNoLandmarks = errors.New("distance: no landmarks")

	// ErrDisconnected indicates two landmarks with no path between them.
	// Once this happens the tour problem has no solution.
	ErrDisconnected = errors.New("distance: landmarks are disconnected")
)

// Matrix is a K×K table of step counts between landmarks, stored row-major.
// Indices passed to At and Set must lie in [0, Len()).
type Matrix struct {
	n    int
	data []int
}

// NewMatrix returns an n×n matrix with a zero diagonal and Inf elsewhere.
// Complexity: O(n²).
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	m := &Matrix{n: n, data: make([]int, n*n)}
	for i := range m.data {
		if i%(n+1) != 0 {
			m.data[i] = Inf
		}
	}

	return m, nil
}

// FromRows copies a square table into a Matrix.
// Rows must be square, the diagonal zero, and entries non-negative (Inf allowed).
func FromRows(rows [][]int) (*Matrix, error) {
	m, err := NewMatrix(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), m.n)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: [%d][%d]=%d", ErrNegative, i, j, v)
			}
			if i == j && v != 0 {
				return nil, fmt.Errorf("%w: [%d][%d]=%d", ErrNonZeroDiagonal, i, i, v)
			}
			m.data[i*m.n+j] = v
		}
	}

	return m, nil
}

// Len returns the matrix order K.
func (m *Matrix) Len() int { return m.n }

// At returns the entry (i, j).
func (m *Matrix) At(i, j int) int { return m.data[i*m.n+j] }

// Set assigns the entry (i, j) only.
func (m *Matrix) Set(i, j, v int) { m.data[i*m.n+j] = v }

// SetPair assigns (i, j) and (j, i).
func (m *Matrix) SetPair(i, j, v int) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Symmetric reports whether m equals its transpose.
func (m *Matrix) Symmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{n: m.n, data: make([]int, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = make([]int, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String renders one line per row with "|" after every entry; Inf prints as "-".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if v := m.data[i*m.n+j]; v == Inf {
				sb.WriteByte('-')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

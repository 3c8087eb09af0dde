// Package distance builds and closes the landmark distance matrix.
//
// What:
//   - Matrix: a K×K table of unit-step counts between landmarks, row-major,
//     zero diagonal, Inf for "no path".
//   - Build: one pathfind search per unordered landmark pair i < j; the result
//     is symmetric. A disconnected pair aborts with ErrDisconnected.
//   - Close: Floyd–Warshall relaxation (k → i → j, strict improvement) that
//     makes the matrix satisfy the triangle inequality among landmarks.
//
// Why:
//   - The tour solver only sees landmark indices; every grid walk it needs is
//     summarised by one matrix entry.
//
// Concurrency:
//   - Build is sequential by default. WithWorkers(n) runs up to n pair searches
//     at once on an errgroup; the resulting matrix is identical.
//   - A Matrix is not safe for concurrent mutation.
//
// Errors:
//   - ErrNoLandmarks, ErrDisconnected (Build)
//   - ErrBadSize, ErrNonSquare, ErrNonZeroDiagonal, ErrNegative (NewMatrix, FromRows)
package distance

// Package matrix offers the dense numeric buffers that calendar regressors
// are written into.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors, never panic on user input).
//   - Zero-copy windows: View for arbitrary rectangles and SliceRows for
//     contiguous row ranges that share storage with the base matrix.
//   - Small kernels used by regressor composition: Add, Sub, Scale,
//     AddScaledInPlace and StackRows.
//
// Regressor matrices are tall and thin (periods × weekdays or periods ×
// groups), so every kernel walks the flat buffer in row-major order and
// allocates at most one result.
//
// See the examples in this package for usage patterns.
package matrix

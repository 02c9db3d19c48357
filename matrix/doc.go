// Package matrix provides the dense linear-algebra primitives used by the
// consecutive-success chain: a row-major float64 matrix plus multiplication
// and exponentiation by repeated squaring.
//
// What:
//
//   - Dense: a row-major rows×cols matrix over a flat []float64, with
//     bounds-checked At/Set (errors, never panics) and deep Clone.
//   - Mul: fail-fast validated matrix product with a flat zero-skipping kernel.
//   - VecMul: row vector × matrix product.
//   - Pow: Mᵏ by repeated squaring, O(log k) multiplications.
//   - PowVec: v·Mᵏ without materializing Mᵏ itself, for callers that only
//     need the resulting distribution.
//
// Why:
//
//   - State-occupancy distributions of a Markov chain after k transitions are
//     exactly e₀·Mᵏ; repeated squaring turns k steps into O(log k) products.
//
// Numerical policy:
//
//   - No renormalization is performed anywhere. Stochastic inputs stay
//     stochastic only up to floating-point accumulation error; callers must
//     compare against closed forms with a tolerance, not exact equality.
//
// Complexity:
//
//   - Mul:    O(r·n·c) time, O(r·c) memory.
//   - Pow:    O(n³·log k) time, O(n²) memory.
//   - PowVec: O(n³·log k) time (dominated by the squares), O(n²) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrIndexOutOfBounds: row or column index outside the matrix.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: exponentiation of a non-square matrix.
//   - ErrNegativeExponent: Pow/PowVec with k < 0.
//   - ErrNilMatrix: nil *Dense operand.
package matrix

// Package matrix: multiplication and exponentiation kernels on Dense.
// All kernels validate fail-fast and return plain sentinels or sentinels
// wrapped with an operation tag; operands are never mutated.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opVecMul = "VecMul"
	opPow    = "Pow"
	opPowVec = "PowVec"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMul checks operands of a matrix product a·b.
func validateMul(tag string, a, b *Dense) error {
	if a == nil || b == nil {
		return opErrorf(tag, ErrNilMatrix)
	}
	if a.c != b.r {
		return opErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// validateExponent checks the common Pow/PowVec preconditions on m and k.
func validateExponent(tag string, m *Dense, k int) error {
	if m == nil {
		return opErrorf(tag, ErrNilMatrix)
	}
	if m.r != m.c {
		return opErrorf(tag, ErrNonSquare)
	}
	if k < 0 {
		return opErrorf(tag, ErrNegativeExponent)
	}

	return nil
}

// Mul computes the matrix product a·b into a freshly allocated Dense.
// Requires a.Cols == b.Rows; operands are not mutated.
// The kernel walks flat row-major storage and skips zero entries of a, which
// pays off on the sparse rows of absorbing-chain transition matrices.
// Complexity: O(a.Rows · a.Cols · b.Cols).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateMul(opMul, a, b); err != nil {
		return nil, err
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var av float64
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// VecMul computes the row-vector product v·m into a fresh slice.
// Requires len(v) == m.Rows; inputs are not mutated.
// Complexity: O(m.Rows · m.Cols).
func VecMul(v []float64, m *Dense) ([]float64, error) {
	if m == nil {
		return nil, opErrorf(opVecMul, ErrNilMatrix)
	}
	if len(v) != m.r {
		return nil, opErrorf(opVecMul, ErrDimensionMismatch)
	}

	out := make([]float64, m.c)
	var vi float64
	var row int
	for i := 0; i < m.r; i++ {
		vi = v[i]
		if vi == 0 {
			continue // skip zero for performance
		}
		row = i * m.c
		for j := 0; j < m.c; j++ {
			out[j] += vi * m.data[row+j]
		}
	}

	return out, nil
}

// Pow computes Mᵏ by repeated squaring: O(log k) matrix multiplications.
// Pow(m, 0) is the identity. Requires a square matrix and k ≥ 0.
// Complexity: O(n³ · log k) time, O(n²) memory.
func Pow(m *Dense, k int) (*Dense, error) {
	if err := validateExponent(opPow, m, k); err != nil {
		return nil, err
	}

	res, err := Identity(m.r)
	if err != nil {
		return nil, opErrorf(opPow, err)
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if res, err = Mul(res, base); err != nil {
				return nil, opErrorf(opPow, err)
			}
		}
		k >>= 1
		if k == 0 {
			break // skip the final, unused squaring
		}
		if base, err = Mul(base, base); err != nil {
			return nil, opErrorf(opPow, err)
		}
	}

	return res, nil
}

// PowVec computes v·Mᵏ by binary exponentiation applied to the row vector:
// the squares of M are formed as in Pow, but only vector-matrix products are
// taken against them, so the full power Mᵏ is never materialized.
// Requires a square matrix, len(v) == m.Rows, and k ≥ 0.
// PowVec(v, m, 0) returns a copy of v.
// Complexity: O(n³ · log k) time (the squarings dominate), O(n²) memory.
func PowVec(v []float64, m *Dense, k int) ([]float64, error) {
	if err := validateExponent(opPowVec, m, k); err != nil {
		return nil, err
	}
	if len(v) != m.r {
		return nil, opErrorf(opPowVec, ErrDimensionMismatch)
	}

	out := make([]float64, len(v))
	copy(out, v)
	base := m.Clone()
	var err error
	for k > 0 {
		if k&1 == 1 {
			if out, err = VecMul(out, base); err != nil {
				return nil, opErrorf(opPowVec, err)
			}
		}
		k >>= 1
		if k == 0 {
			break
		}
		if base, err = Mul(base, base); err != nil {
			return nil, opErrorf(opPowVec, err)
		}
	}

	return out, nil
}

// Package matrix provides dense real-valued matrices and the classical
// algebraic operations over them.
//
// The matrix package provides:
//
//   - Constructors for the canonical forms (NewFromRows, NewZero,
//     NewIdentity, NewScalar, NewDiagonal).
//   - Elementwise and linear kernels (Add, Sub, Scale, Neg, Hadamard,
//     Mul, MatVec, Transpose, Trace) that allocate a fresh result and
//     never mutate their operands.
//   - Determinant machinery (Det, Minor, Cofactor, Adjoint) based on
//     recursive cofactor expansion, and Inverse via the adjugate.
//   - Total predicates (IsSquare, IsZero, IsDiagonal, IsScalar,
//     IsIdentity, IsSymmetric, IsSkewSymmetric, IsSingular) plus
//     tolerance-aware Equal.
//
// All comparisons against zero and between entries share one numeric
// policy: DefaultEpsilon (1e-9), overridable per call via WithEpsilon.
// Cofactor expansion is exponential in the dimension; the package targets
// small-to-medium dense matrices where that cost is acceptable.
//
// See the examples in this package for usage patterns.
package matrix

// Package tridiag provides a real symmetric tridiagonal matrix stored as two
// arrays and the eigen-solvers that exploit that structure.
//
// What is in here?
//
//   - SymTridiagonal — main diagonal d[0..n-1] and off-diagonal e[0..n-2].
//     Constant memory per row; MulVec, Norm1, Gershgorin bounds and the
//     Sturm-sequence count are all O(n).
//   - EigenRange — eigenpairs for a contiguous 0-indexed band [lo, hi] of the
//     ascending spectrum. Two backends:
//   - Bisection (default): Sturm bisection for exactly the requested
//     indices, then inverse iteration with a partially pivoted LU of
//     T − λI and re-orthogonalization inside clusters. O(n·k) work for k
//     requested pairs; eigenvalues and vectors are real and orthonormal.
//   - QL: gonum's LAPACK Dsterf (root-free implicit QL) on the whole
//     spectrum, then the same inverse iteration for the band's vectors.
//     O(n²) work, O(n·k) memory; an independent check on the bisection
//     eigenvalues.
//   - Values — the whole spectrum without vectors (gonum Dsterf).
//
// Usage:
//
//	t, err := tridiag.New(diag, off)
//	if err != nil { ... }
//	eig, err := tridiag.EigenRange(t, 0, 4, tridiag.DefaultOptions())
//	if err != nil {
//		// errors.Is(err, tridiag.ErrNonConvergence) for numerical failure
//	}
//	e0 := eig.Values[0]
//	v0 := mat.Col(nil, 0, eig.Vectors) // unit Euclidean norm
//
// Eigenvectors are defined up to sign; callers must not depend on it.
// All routines are deterministic (the inverse-iteration start vectors come
// from a seeded PCG stream) and never mutate their inputs.
package tridiag

// Package wavefunc turns raw eigenvectors into physical wavefunctions and
// derives position statistics from them.
//
// Normalization uses the same rectangle-rule quadrature as the statistics:
// a column ψ is normalized when δ·Σ_i ψ_i² = 1, where δ is the grid
// spacing. This is not the unit Euclidean norm returned by the eigensolver.
//
// Statistics use the Born-rule density |ψ|² with the same weights:
//
//	⟨x⟩  = δ·Σ_i x_i·ψ_i²
//	⟨x²⟩ = δ·Σ_i x_i²·ψ_i²
//	σ_x  = sqrt(max(0, ⟨x²⟩ − ⟨x⟩²))
//
// All functions return fresh matrices and never modify their input.
package wavefunc

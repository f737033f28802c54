package potential

import "math"

// lagrange is the global interpolating polynomial in second (true)
// barycentric form:
//
//	p(x) = Σ w_j y_j/(x−x_j) / Σ w_j/(x−x_j),   w_j = 1/Π_{k≠j}(x_j−x_k)
//
// Weights are computed once; each evaluation is O(n).
type lagrange struct {
	xs, ys, w []float64
}

func newLagrange(xs, ys []float64) *lagrange {
	n := len(xs)
	// Scaling every difference by a quarter of the span keeps the weight
	// products in range for larger n; the factor cancels in the quotient.
	scale := (xs[n-1] - xs[0]) / 4
	w := make([]float64, n)
	for j := 0; j < n; j++ {
		prod := 1.0
		for k := 0; k < n; k++ {
			if k != j {
				prod *= (xs[j] - xs[k]) / scale
			}
		}
		w[j] = 1 / prod
	}

	return &lagrange{xs: xs, ys: ys, w: w}
}

func (p *lagrange) At(x float64) float64 {
	var num, den float64
	for j, xj := range p.xs {
		d := x - xj
		if d == 0 {
			return p.ys[j]
		}
		t := p.w[j] / d
		num += t * p.ys[j]
		den += t
	}

	return num / den
}

func (p *lagrange) Domain() (float64, float64) { return math.Inf(-1), math.Inf(1) }
func (p *lagrange) Method() Method             { return Polynomial }

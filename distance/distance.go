package distance

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lags returns the len(a)×len(b) matrix with entries a[i] - b[j].
// Kernels that depend on |a[i] - b[j]| read the absolute value themselves.
func Lags(a, b []float64) *mat.Dense {
	if len(a) == 0 || len(b) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(a)*len(b))
	for i, ai := range a {
		row := data[i*len(b) : (i+1)*len(b)]
		for j, bj := range b {
			row[j] = ai - bj
		}
	}
	return mat.NewDense(len(a), len(b), data)
}

// SquaredLags returns the element-wise square of Lags(a, b).
func SquaredLags(a, b []float64) *mat.Dense {
	d := Lags(a, b)
	d.Apply(func(_, _ int, v float64) float64 { return v * v }, d)
	return d
}

// MinSeparation returns the smallest |x[i] - x[j]| over i != j, or +Inf for
// fewer than two points. A zero result means the points are not distinct.
func MinSeparation(x []float64) float64 {
	best := math.Inf(1)
	for i := range x {
		for j := i + 1; j < len(x); j++ {
			if d := math.Abs(x[i] - x[j]); d < best {
				best = d
			}
		}
	}
	return best
}

package kernel

import (
	"gonum.org/v1/gonum/mat"
)

// Covariance returns the matrix ampA[i] * ampB[j] * f(lags[i,j]).
// ampA and ampB must match the row and column counts of lags.
func Covariance(f Func, lags mat.Matrix, ampA, ampB []float64) *mat.Dense {
	r, c := lags.Dims()
	if len(ampA) != r || len(ampB) != c {
		panic(mat.ErrShape)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, ampA[i]*ampB[j]*f(lags.At(i, j)))
		}
	}
	return out
}

// NoisyCovariance returns the symmetric training covariance
// amps[i] * amps[j] * f(lags[i,j]) + δ_ij errs[i]². lags must be square;
// errs may be nil for a noiseless matrix.
func NoisyCovariance(f Func, lags mat.Matrix, amps, errs []float64) *mat.SymDense {
	n, c := lags.Dims()
	if n != c || len(amps) != n || (errs != nil && len(errs) != n) {
		panic(mat.ErrShape)
	}
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := amps[i] * amps[j] * f(lags.At(i, j))
			if i == j && errs != nil {
				v += errs[i] * errs[i]
			}
			out.SetSym(i, j, v)
		}
	}
	return out
}

// Uniform returns n copies of amp.
func Uniform(n int, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp
	}
	return out
}

package rvlike

import (
	"math"
)

// LogLikeJitter returns the Gaussian log-likelihood of residuals with
// per-epoch errors sigma and a jitter term added in quadrature:
//
//	−½ Σ r²/(σ² + σⱼ²) − Σ ln sqrt(2π(σ² + σⱼ²))
//
// The normalisation penalises excessively large jitter (Howard et al. 2014, eq. 1).
func LogLikeJitter(residuals, sigma []float64, jitter float64) float64 {
	j2 := jitter * jitter
	var chi2, penalty float64
	for i, r := range residuals {
		s2 := sigma[i]*sigma[i] + j2
		chi2 += r * r / s2
		penalty += math.Log(math.Sqrt(2 * math.Pi * s2))
	}
	return -0.5*chi2 - penalty
}

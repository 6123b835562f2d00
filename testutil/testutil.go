package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform returns n values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) Uniform(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// Gaussian returns n values from a normal distribution with the given mean
// and standard deviation.
func (r *RNG) Gaussian(n int, mean, sigma float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sigma*r.rand.NormFloat64()
	}
	return out
}

// Epochs returns n sorted observation times in [start, end).
func (r *RNG) Epochs(n int, start, end float64) []float64 {
	t := r.Uniform(n, start, end)
	slices.Sort(t)
	return t
}

// Errors returns n measurement uncertainties in [minVal, maxVal).
func (r *RNG) Errors(n int, minVal, maxVal float64) []float64 {
	return r.Uniform(n, minVal, maxVal)
}

// AddNoise adds independent Gaussian noise with per-point standard deviation
// sigma[i] to v in place.
func (r *RNG) AddNoise(v, sigma []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range v {
		v[i] += sigma[i] * r.rand.NormFloat64()
	}
}

// Sinusoid returns amp*sin(2π(t - phase)/period) at each epoch.
func Sinusoid(t []float64, amp, period, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = amp * math.Sin(2*math.Pi*(ti-phase)/period)
	}
	return out
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Fill returns n copies of v.
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Offset returns v + c element-wise as a new slice.
func Offset(v []float64, c float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x + c
	}
	return out
}

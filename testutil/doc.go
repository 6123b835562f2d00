// Package testutil provides testing utilities for rvlike.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and generators for synthetic radial-velocity
// datasets.
//
// # Synthetic Datasets
//
//	rng := testutil.NewRNG(seed)
//	t := rng.Epochs(40, 0, 100)           // sorted epochs in [0, 100)
//	v := testutil.Sinusoid(t, 5, 12.5, 0) // 5 m/s signal, 12.5 d period
//	e := rng.Errors(40, 1, 2)             // uncertainties in [1, 2)
//	rng.AddNoise(v, e)
package testutil

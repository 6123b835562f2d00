// Package rvlike evaluates the likelihood of radial-velocity (RV) time-series
// models. It is the objective function an optimizer or sampler calls in its
// inner loop: set the free parameters, get back a log-probability.
//
// # Parameter Vector
//
// Every likelihood reads its parameters from one shared *param.Vector, the
// vector of the model it was built with. Writing a value through any
// likelihood, or through the vector itself, is visible to all of them.
//
// # Likelihoods
//
// Three likelihoods implement the Likelihood interface:
//
//   - RV: one dataset with an offset (gamma), a jitter term and optional
//     polynomial decorrelation against auxiliary vectors.
//   - Composite: several RV datasets sharing one vector and one model.
//   - GP: a composite whose residuals follow a Gaussian process with
//     per-instrument amplitudes.
//
// # Quick Start
//
//	vec := param.NewVector()
//	model := rvlike.NewTrendModel(vec, 2450000)
//
//	hires, _ := rvlike.NewRV(model, t1, v1, e1, rvlike.WithInstrument("hires"))
//	harps, _ := rvlike.NewRV(model, t2, v2, e2, rvlike.WithInstrument("harps"))
//	like, _ := rvlike.NewComposite([]*rvlike.RV{hires, harps})
//
//	lp, err := rvlike.LogProbFree(like, vec.FreeValues())
//
// # Linear Offsets
//
// An offset flagged Linear and not varied is profiled out: RV.LogProb
// replaces it with its inverse-variance weighted estimate before evaluating.
// The estimate is written to the shared vector. RV.ProfileOffset performs
// that step on its own; RV.Residuals never changes the vector.
//
// # Failure Handling
//
// Construction errors (mismatched vectors, models or shared parameters,
// arrays of different lengths) are returned as errors. A GP covariance that
// is not positive definite is not an error for LogProb: it logs a warning and
// returns −Inf so the caller can reject the point.
//
// # Concurrency
//
// Likelihoods and vectors are not safe for concurrent use. Evaluate
// independent proposals in parallel with package ensemble, which gives every
// worker its own vector and model.
package rvlike

// Package ensemble evaluates many parameter proposals in parallel.
//
// Likelihoods and their parameter vectors are not safe for concurrent use, so
// every worker builds a private likelihood with its own vector and model and
// evaluates a share of the proposals on it:
//
//	build := func() (rvlike.Likelihood, error) {
//		vec, err := param.Decode(nil, snapshot)
//		if err != nil {
//			return nil, err
//		}
//		return rvlike.NewRV(newModel(vec), t, vel, errvel)
//	}
//	lps, err := ensemble.Evaluate(ctx, build, walkers, ensemble.WithWorkers(4))
package ensemble

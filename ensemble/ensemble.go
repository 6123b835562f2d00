package ensemble

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rvlike"
)

// ErrNilBuilder is returned when Evaluate is called without a builder.
var ErrNilBuilder = errors.New("ensemble: builder must not be nil")

// Builder returns a new likelihood that shares no state with the likelihoods
// returned by other calls.
type Builder func() (rvlike.Likelihood, error)

type options struct {
	workers int
}

// Option configures Evaluate.
type Option func(*options)

// WithWorkers sets the number of concurrent workers. Values below 1 select
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Evaluate returns the log-probability of every proposal. proposals[i] holds
// the values of the varying parameters in vary-mask order, as accepted by
// rvlike.LogProbFree.
//
// Each worker calls build once. The first error from build or from a
// proposal of the wrong shape cancels the remaining work.
func Evaluate(ctx context.Context, build Builder, proposals [][]float64, optFns ...Option) ([]float64, error) {
	if build == nil {
		return nil, ErrNilBuilder
	}

	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	workers := min(o.workers, len(proposals))

	out := make([]float64, len(proposals))
	if workers == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			like, err := build()
			if err != nil {
				return fmt.Errorf("worker %d: build likelihood: %w", w, err)
			}
			for i := w; i < len(proposals); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				lp, err := rvlike.LogProbFree(like, proposals[i])
				if err != nil {
					return fmt.Errorf("proposal %d: %w", i, err)
				}
				out[i] = lp
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

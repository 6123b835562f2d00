package rvlike

import (
	"math"

	"github.com/hupe1980/rvlike/param"
)

// Dataset is a read-only view of the data behind a likelihood.
// The slices must not be modified.
type Dataset struct {
	Time []float64
	Vel  []float64
	Err  []float64

	// Inst holds the instrument label of each epoch.
	Inst []string
}

// Len returns the number of epochs.
func (d Dataset) Len() int { return len(d.Time) }

// Likelihood is implemented by *RV, *Composite and *GP.
type Likelihood interface {
	// Vector returns the shared parameter table.
	Vector() *param.Vector

	// Model returns the physical model.
	Model() Model

	// Data returns the data the likelihood is evaluated on.
	Data() Dataset

	// Residuals returns data minus model.
	Residuals() []float64

	// Errorbars returns the per-epoch uncertainties with jitter added in quadrature.
	Errorbars() []float64

	// LogProb returns the natural log of the likelihood. Priors are not applied.
	LogProb() float64

	base() *core
}

// core carries what every likelihood holds by reference.
type core struct {
	vector  *param.Vector
	model   Model
	logger  *Logger
	metrics MetricsCollector
}

func newCore(model Model, o options) core {
	return core{
		vector:  model.Vector(),
		model:   model,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

func (c *core) Vector() *param.Vector { return c.vector }
func (c *core) Model() Model          { return c.model }
func (c *core) base() *core           { return c }

// NegLogProb returns -l.LogProb().
func NegLogProb(l Likelihood) float64 {
	return -l.LogProb()
}

// LogProbFree writes values into the varying slots of the shared vector and
// evaluates l. The vector keeps the new values afterwards.
func LogProbFree(l Likelihood, values []float64) (float64, error) {
	if err := l.Vector().SetFreeValues(values); err != nil {
		return 0, err
	}
	return l.LogProb(), nil
}

// NegLogProbFree is the negated LogProbFree, for minimisers.
func NegLogProbFree(l Likelihood, values []float64) (float64, error) {
	lp, err := LogProbFree(l, values)
	return -lp, err
}

// BIC returns the Bayesian information criterion ln(n)·k − 2·logprob, with n
// the number of epochs and k the number of varying parameters.
func BIC(l Likelihood) float64 {
	return bic(l.Data().Len(), len(l.Vector().VaryMask()), l.LogProb())
}

// AIC returns the small-sample corrected Akaike information criterion
// (AICc). When n − k − 1 ≤ 0 the correction is undefined: a warning is logged
// and +Inf is returned.
func AIC(l Likelihood) float64 {
	n := l.Data().Len()
	k := len(l.Vector().VaryMask())
	v, ok := aicc(n, k, l.LogProb())
	if !ok {
		l.base().logger.LogUndefinedAICc(n, k)
	}
	return v
}

func bic(n, k int, logprob float64) float64 {
	return math.Log(float64(n))*float64(k) - 2*logprob
}

func aicc(n, k int, logprob float64) (float64, bool) {
	aic := -2*logprob + 2*float64(k)
	denom := float64(n - k - 1)
	if denom <= 0 {
		return math.Inf(1), false
	}
	return aic + 2*float64(k)*float64(k+1)/denom, true
}

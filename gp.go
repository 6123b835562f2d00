package rvlike

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/rvlike/distance"
	"github.com/hupe1980/rvlike/kernel"
	"github.com/hupe1980/rvlike/param"
)

// GP is a composite likelihood whose residuals are modelled by a Gaussian
// process. Each epoch's covariance amplitude is the gp_amp_<instrument>
// hyperparameter of the instrument that observed it.
type GP struct {
	core

	composite *Composite
	kernel    kernel.Kernel

	hnames []string
	hslots []int

	// insts holds the sorted instrument labels.
	insts []string

	// Per-epoch lookups.
	pointGamma []int
	pointAmp   []string

	// lags caches the training lag matrix.
	lags *mat.Dense
}

// NewGP builds a GP likelihood over children. hnames lists the parameters
// passed to the kernel; it must contain the kernel's shape hyperparameters and
// the amplitude gp_amp_<instrument> of every instrument.
func NewGP(children []*RV, hnames []string, k kernel.Kernel, optFns ...Option) (*GP, error) {
	comp, err := NewComposite(children, optFns...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	o.apply(optFns)

	g := &GP{
		core:      newCore(comp.model, o),
		composite: comp,
		kernel:    k,
		hnames:    slices.Clone(hnames),
	}
	g.logger = g.logger.WithKind("gp")

	for _, name := range hnames {
		slot, ok := g.vector.Index(name)
		if !ok {
			return nil, fmt.Errorf("hyperparameter: %w: %q", param.ErrUnknownParameter, name)
		}
		g.hslots = append(g.hslots, slot)
	}
	for _, name := range k.Hyperparams() {
		if !slices.Contains(hnames, name) {
			return nil, fmt.Errorf("kernel %s: %w: %s", k.Name(), ErrMissingHyperparameter, name)
		}
	}

	n := comp.data.Len()
	if n == 0 {
		return nil, ErrNoEpochs
	}
	g.pointGamma = make([]int, 0, n)
	g.pointAmp = make([]string, 0, n)
	for _, like := range children {
		amp := kernel.AmpName(like.label)
		if !slices.Contains(hnames, amp) {
			return nil, fmt.Errorf("instrument %q: %w: %s", like.label, ErrMissingHyperparameter, amp)
		}
		for range like.t {
			g.pointGamma = append(g.pointGamma, like.gammaSlot)
			g.pointAmp = append(g.pointAmp, amp)
		}
		if !slices.Contains(g.insts, like.label) {
			g.insts = append(g.insts, like.label)
		}
	}
	slices.Sort(g.insts)

	g.lags = distance.Lags(comp.data.Time, comp.data.Time)
	if distance.MinSeparation(comp.data.Time) == 0 {
		g.logger.LogDuplicateEpochs(n)
	}
	return g, nil
}

// Composite returns the underlying composite likelihood.
func (g *GP) Composite() *Composite { return g.composite }

// Kernel returns the covariance kernel.
func (g *GP) Kernel() kernel.Kernel { return g.kernel }

// Instruments returns the sorted instrument labels.
func (g *GP) Instruments() []string { return slices.Clone(g.insts) }

// HNames returns the hyperparameter names.
func (g *GP) HNames() []string { return slices.Clone(g.hnames) }

// Data implements Likelihood.
func (g *GP) Data() Dataset { return g.composite.Data() }

// Errorbars returns the members' errorbars, jitter included.
func (g *GP) Errorbars() []float64 { return g.composite.Errorbars() }

// UpdateKernelParams reads the current hyperparameter values from the
// shared vector.
func (g *GP) UpdateKernelParams() kernel.Hyperparams {
	hp := make(kernel.Hyperparams, len(g.hnames))
	for i, name := range g.hnames {
		hp[name] = g.vector.Value(g.hslots[i])
	}
	return hp
}

// gpResiduals returns vel − model(t) − gamma on the unshifted velocities.
// No decorrelation and no offset profiling are applied.
func (g *GP) gpResiduals() []float64 {
	mod := g.model.Evaluate(g.composite.data.Time)
	res := make([]float64, len(mod))
	for i, v := range g.composite.rawVel {
		res[i] = v - mod[i] - g.vector.Value(g.pointGamma[i])
	}
	return res
}

func (g *GP) amplitudes(hp kernel.Hyperparams) []float64 {
	amps := make([]float64, len(g.pointAmp))
	for i, name := range g.pointAmp {
		amps[i] = hp[name]
	}
	return amps
}

func (g *GP) bind(hp kernel.Hyperparams) kernel.Func {
	f, err := g.kernel.Func(hp)
	if err != nil {
		// Construction checked every shape hyperparameter.
		panic(err)
	}
	return f
}

// factor returns the Cholesky factor of the training covariance, or false
// when it is not positive definite.
func (g *GP) factor(f kernel.Func, amps []float64) (*mat.Cholesky, bool) {
	K := kernel.NoisyCovariance(f, g.lags, amps, g.composite.Errorbars())
	n := K.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := K.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, false
			}
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(K) {
		return nil, false
	}
	return &chol, true
}

func solveVec(chol *mat.Cholesky, b []float64) (*mat.VecDense, error) {
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, mat.NewVecDense(len(b), b)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}
	return &x, nil
}

// LogProb returns the GP marginal log-likelihood
//
//	−½ (rᵀK⁻¹r + ln|K| + N ln 2π).
//
// A covariance that is not positive definite is logged as a warning and
// yields −Inf so that samplers can reject the point.
func (g *GP) LogProb() float64 {
	start := time.Now()
	ll := g.logprob()
	g.metrics.RecordLogProb(time.Since(start), ll)
	return ll
}

func (g *GP) logprob() float64 {
	hp := g.UpdateKernelParams()
	r := g.gpResiduals()
	n := len(r)

	chol, ok := g.factor(g.bind(hp), g.amplitudes(hp))
	if !ok {
		g.reject("logprob")
		return math.Inf(-1)
	}
	alpha, err := solveVec(chol, r)
	if err != nil {
		g.reject("logprob")
		return math.Inf(-1)
	}

	rv := mat.NewVecDense(n, r)
	return -0.5 * (mat.Dot(rv, alpha) + chol.LogDet() + float64(n)*math.Log(2*math.Pi))
}

func (g *GP) reject(op string) {
	g.logger.LogNonPositiveDefinite(len(g.pointAmp), op)
	g.metrics.RecordRejection()
}

// Predict returns the GP predictive mean and standard deviation at tpred
// conditioned on the current residuals.
//
// When instrument is set, every predicted epoch uses that instrument's
// amplitude: the result is what the instrument would have measured at tpred.
// When instrument is empty, tpred must be the training epochs (same length)
// and each epoch keeps its own instrument's amplitude. An unlabelled dataset
// (amplitude gp_amp) therefore cannot be named as a substitution target; its
// amplitude is only used through the empty-instrument form.
//
// An empty tpred yields empty, non-nil results.
func (g *GP) Predict(tpred []float64, instrument string) (mean, stdev []float64, err error) {
	start := time.Now()
	defer func() {
		g.metrics.RecordPredict(len(tpred), time.Since(start), err)
	}()

	hp := g.UpdateKernelParams()
	f := g.bind(hp)
	trainAmps := g.amplitudes(hp)
	n := len(trainAmps)
	m := len(tpred)

	var predAmps []float64
	if instrument == "" {
		if m != n {
			return nil, nil, fmt.Errorf("%w: got %d epochs, have %d", ErrInstrumentRequired, m, n)
		}
		predAmps = trainAmps
	} else {
		if !slices.Contains(g.insts, instrument) {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
		}
		predAmps = kernel.Uniform(m, hp[kernel.AmpName(instrument)])
	}
	if m == 0 {
		return []float64{}, []float64{}, nil
	}

	chol, ok := g.factor(f, trainAmps)
	if !ok {
		g.reject("predict")
		return nil, nil, ErrNotPositiveDefinite
	}
	alpha, err := solveVec(chol, g.gpResiduals())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNotPositiveDefinite, err)
	}

	Ks := kernel.Covariance(f, distance.Lags(tpred, g.composite.data.Time), predAmps, trainAmps)

	var mu mat.VecDense
	mu.MulVec(Ks, alpha)

	// B = K⁻¹ Ksᵀ, so diag(Ks B) is the variance explained by the data.
	var B mat.Dense
	if err := chol.SolveTo(&B, Ks.T()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, nil, fmt.Errorf("%w: %w", ErrNotPositiveDefinite, err)
		}
	}

	f0 := f(0)
	mean = make([]float64, m)
	stdev = make([]float64, m)
	for i := 0; i < m; i++ {
		mean[i] = mu.AtVec(i)
		v := predAmps[i] * predAmps[i] * f0
		for j := 0; j < n; j++ {
			v -= Ks.At(i, j) * B.At(j, i)
		}
		if v < 0 {
			v = 0
		}
		stdev[i] = math.Sqrt(v)
	}
	return mean, stdev, nil
}

// Residuals returns vel − model − gamma − μ, where μ is the GP mean at the
// training epochs. If the covariance cannot be factorised the GP mean is
// omitted and a warning is logged.
func (g *GP) Residuals() []float64 {
	res := g.gpResiduals()
	mu, _, err := g.Predict(g.composite.data.Time, "")
	if err != nil {
		return res
	}
	for i := range res {
		res[i] -= mu[i]
	}
	return res
}

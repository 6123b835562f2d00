package rvlike

import (
	"math"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// decorrTerm is one decorrelation variable of an RV dataset.
type decorrTerm struct {
	variable string

	// slots holds the coefficient slots, highest order first.
	slots []int

	// centered is the mean-centered auxiliary vector, nil when it had
	// non-finite values.
	centered []float64
}

// RV is the likelihood of a single radial-velocity dataset:
//
//	vel = model(t) + gamma + decorr(aux) + noise,  noise ~ N(0, errvel² + jit²)
type RV struct {
	core

	t, vel, errvel []float64
	inst           []string

	label     string
	gammaName string
	jitName   string
	gammaSlot int
	jitSlot   int

	// params lists the names this dataset registered or reused.
	params []string
	decorr []decorrTerm
}

// NewRV builds the likelihood of one dataset. The offset, jitter and
// decorrelation parameters are registered in the model's vector if absent.
func NewRV(model Model, t, vel, errvel []float64, optFns ...Option) (*RV, error) {
	if model == nil || model.Vector() == nil {
		return nil, ErrNilModel
	}
	if len(vel) != len(t) {
		return nil, &ErrLengthMismatch{Field: "vel", Expected: len(t), Actual: len(vel)}
	}
	if len(errvel) != len(t) {
		return nil, &ErrLengthMismatch{Field: "errvel", Expected: len(t), Actual: len(errvel)}
	}

	o := defaultOptions()
	o.apply(optFns)

	suffix := ""
	if o.instrument != "" {
		suffix = "_" + o.instrument
	}

	l := &RV{
		core:      newCore(model, o),
		t:         append([]float64(nil), t...),
		vel:       append([]float64(nil), vel...),
		errvel:    append([]float64(nil), errvel...),
		inst:      make([]string, len(t)),
		label:     o.instrument,
		gammaName: "gamma" + suffix,
		jitName:   "jit" + suffix,
	}
	for i := range l.inst {
		l.inst[i] = o.instrument
	}
	l.logger = l.logger.WithKind("rv").WithInstrument(o.instrument)

	l.gammaSlot = l.register(l.gammaName)
	l.jitSlot = l.register(l.jitName)

	for _, d := range o.decorr {
		if len(d.aux) != len(t) {
			return nil, &ErrLengthMismatch{Field: "decorrelation " + d.variable, Expected: len(t), Actual: len(d.aux)}
		}
		term := decorrTerm{variable: d.variable}
		for k := d.degree; k >= 1; k-- {
			term.slots = append(term.slots, l.register("c"+strconv.Itoa(k)+"_"+d.variable+suffix))
		}
		if allFinite(d.aux) {
			mean := stat.Mean(d.aux, nil)
			term.centered = make([]float64, len(d.aux))
			for i, a := range d.aux {
				term.centered[i] = a - mean
			}
		}
		l.decorr = append(l.decorr, term)
	}
	return l, nil
}

func (l *RV) register(name string) int {
	l.params = append(l.params, name)
	return l.vector.Register(name)
}

// Instrument returns the instrument label ("" when unnamed).
func (l *RV) Instrument() string { return l.label }

// GammaName returns the name of the offset parameter.
func (l *RV) GammaName() string { return l.gammaName }

// JitName returns the name of the jitter parameter.
func (l *RV) JitName() string { return l.jitName }

// ParamNames returns the parameters this dataset registered or reused.
func (l *RV) ParamNames() []string {
	return append([]string(nil), l.params...)
}

// Data implements Likelihood.
func (l *RV) Data() Dataset {
	return Dataset{Time: l.t, Vel: l.vel, Err: l.errvel, Inst: l.inst}
}

// LinearOffset reports whether the offset is profiled out analytically,
// i.e. it is flagged linear and not varied.
func (l *RV) LinearOffset() bool {
	p := l.vector.Slot(l.gammaSlot)
	return p.Linear && !p.Vary
}

// ProfileOffset replaces a linear, non-varying offset with its
// inverse-variance weighted estimate
//
//	ztil = Σ[(vel−model)/(errvel²+jit²)] / Σ[1/(errvel²+jit²)]
//
// and writes it to the shared vector. It returns the current offset and
// whether it was profiled. A NaN estimate is stored as 0.
func (l *RV) ProfileOffset() (float64, bool) {
	if !l.LinearOffset() {
		return l.vector.Value(l.gammaSlot), false
	}
	return l.profile(l.model.Evaluate(l.t)), true
}

func (l *RV) profile(mod []float64) float64 {
	jit := l.vector.Value(l.jitSlot)
	j2 := jit * jit
	var num, den float64
	for i, e := range l.errvel {
		w := 1 / (e*e + j2)
		num += (l.vel[i] - mod[i]) * w
		den += w
	}
	ztil := num / den
	if math.IsNaN(ztil) {
		ztil = 0
	}
	l.vector.SetValue(l.gammaSlot, ztil)
	return ztil
}

// Residuals returns vel − gamma − model(t) minus the decorrelation terms.
// It reads the offset as stored; call ProfileOffset first to refresh a
// linear offset.
func (l *RV) Residuals() []float64 {
	return l.residuals(l.model.Evaluate(l.t))
}

func (l *RV) residuals(mod []float64) []float64 {
	res := make([]float64, len(l.vel))
	floats.SubTo(res, l.vel, mod)
	floats.AddConst(-l.vector.Value(l.gammaSlot), res)

	for _, term := range l.decorr {
		if term.centered == nil {
			continue
		}
		coeffs := make([]float64, len(term.slots)+1)
		for j, s := range term.slots {
			coeffs[j] = l.vector.Value(s)
		}
		for i, x := range term.centered {
			res[i] -= polyval(coeffs, x)
		}
	}
	return res
}

// Errorbars returns sqrt(errvel² + jit²).
func (l *RV) Errorbars() []float64 {
	jit := l.vector.Value(l.jitSlot)
	out := make([]float64, len(l.errvel))
	for i, e := range l.errvel {
		out[i] = math.Sqrt(e*e + jit*jit)
	}
	return out
}

// LogProb returns the jitter-penalised Gaussian log-likelihood. A linear
// offset is profiled first (updating the shared vector) and the
// normalisation ln sqrt(2π/Σ 1/(σ²+σⱼ²)) of the profiled offset is added.
func (l *RV) LogProb() float64 {
	start := time.Now()

	mod := l.model.Evaluate(l.t)
	profiled := l.LinearOffset()
	if profiled {
		l.profile(mod)
	}

	jit := l.vector.Value(l.jitSlot)
	ll := LogLikeJitter(l.residuals(mod), l.errvel, jit)

	if profiled {
		var inv float64
		for _, e := range l.errvel {
			inv += 1 / (e*e + jit*jit)
		}
		ll += math.Log(math.Sqrt(2 * math.Pi / inv))
	}

	l.metrics.RecordLogProb(time.Since(start), ll)
	return ll
}

// polyval evaluates the polynomial with coefficients c (highest order first).
func polyval(c []float64, x float64) float64 {
	var y float64
	for _, ci := range c {
		y = y*x + ci
	}
	return y
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

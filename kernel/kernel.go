package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Hyperparameter names shared by the built-in kernels.
const (
	AmpPrefix = "gp_amp"
	Length    = "gp_length"
	ExpLength = "gp_explength"
	Period    = "gp_per"
	PerLength = "gp_perlength"
)

// ErrMissingHyperparameter is returned when a kernel is bound without one of
// its shape hyperparameters.
var ErrMissingHyperparameter = errors.New("missing hyperparameter")

// Hyperparams holds the current value of each hyperparameter by name.
type Hyperparams map[string]float64

// Func is the unit-amplitude covariance of two epochs separated by tau.
type Func func(tau float64) float64

// Kernel describes a stationary covariance shape.
type Kernel interface {
	// Name returns the stable kernel name used by ByName.
	Name() string

	// Hyperparams returns the shape hyperparameters the kernel reads.
	// Amplitudes are not included.
	Hyperparams() []string

	// Func binds the kernel to hp.
	Func(hp Hyperparams) (Func, error)
}

// AmpName returns the amplitude hyperparameter of an instrument.
func AmpName(instrument string) string {
	if instrument == "" {
		return AmpPrefix
	}
	return AmpPrefix + "_" + instrument
}

// IsAmp reports whether name is an amplitude hyperparameter.
func IsAmp(name string) bool {
	return name == AmpPrefix || strings.HasPrefix(name, AmpPrefix+"_")
}

// ByName returns a built-in kernel.
func ByName(name string) (Kernel, bool) {
	switch name {
	case "SqExp":
		return SqExp{}, true
	case "Per":
		return Per{}, true
	case "QuasiPer":
		return QuasiPer{}, true
	default:
		return nil, false
	}
}

func lookup(hp Hyperparams, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := hp[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHyperparameter, n)
		}
		out[i] = v
	}
	return out, nil
}

var (
	_ Kernel = SqExp{}
	_ Kernel = Per{}
	_ Kernel = QuasiPer{}
)

// SqExp is the squared-exponential kernel exp(-tau²/gp_length²).
type SqExp struct{}

func (SqExp) Name() string { return "SqExp" }

func (SqExp) Hyperparams() []string { return []string{Length} }

func (k SqExp) Func(hp Hyperparams) (Func, error) {
	v, err := lookup(hp, k.Hyperparams()...)
	if err != nil {
		return nil, err
	}
	l2 := v[0] * v[0]
	return func(tau float64) float64 {
		return math.Exp(-tau * tau / l2)
	}, nil
}

// Per is the strictly periodic kernel exp(-sin²(pi*tau/gp_per) / (2*gp_length²)).
type Per struct{}

func (Per) Name() string { return "Per" }

func (Per) Hyperparams() []string { return []string{Period, Length} }

func (k Per) Func(hp Hyperparams) (Func, error) {
	v, err := lookup(hp, k.Hyperparams()...)
	if err != nil {
		return nil, err
	}
	per, l := v[0], v[1]
	return func(tau float64) float64 {
		s := math.Sin(math.Pi * tau / per)
		return math.Exp(-s * s / (2 * l * l))
	}, nil
}

// QuasiPer is the quasi-periodic kernel
//
//	exp(-tau²/gp_explength² - sin²(pi*tau/gp_per) / (2*gp_perlength²))
//
// commonly used for stellar activity.
type QuasiPer struct{}

func (QuasiPer) Name() string { return "QuasiPer" }

func (QuasiPer) Hyperparams() []string { return []string{ExpLength, Period, PerLength} }

func (k QuasiPer) Func(hp Hyperparams) (Func, error) {
	v, err := lookup(hp, k.Hyperparams()...)
	if err != nil {
		return nil, err
	}
	explength, per, perlength := v[0], v[1], v[2]
	return func(tau float64) float64 {
		s := math.Sin(math.Pi * tau / per)
		return math.Exp(-tau*tau/(explength*explength) - s*s/(2*perlength*perlength))
	}, nil
}

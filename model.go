package rvlike

import (
	"reflect"

	"github.com/hupe1980/rvlike/param"
)

// Model predicts radial velocities from the parameters in its vector.
//
// Implementations must be comparable (typically pointer types): composite
// likelihoods check that their members share one model by identity.
type Model interface {
	// Vector returns the shared parameter table the model reads.
	Vector() *param.Vector

	// Evaluate returns the predicted velocity at each epoch in t.
	Evaluate(t []float64) []float64

	// TimeBase returns the reference epoch of the model.
	TimeBase() float64
}

// FuncModel adapts a function to the Model interface.
type FuncModel struct {
	vector   *param.Vector
	timeBase float64
	fn       func(v *param.Vector, t []float64) []float64
}

// NewFuncModel returns a model that calls fn with the shared vector.
func NewFuncModel(vector *param.Vector, timeBase float64, fn func(v *param.Vector, t []float64) []float64) *FuncModel {
	return &FuncModel{vector: vector, timeBase: timeBase, fn: fn}
}

func (m *FuncModel) Vector() *param.Vector          { return m.vector }
func (m *FuncModel) TimeBase() float64              { return m.timeBase }
func (m *FuncModel) Evaluate(t []float64) []float64 { return m.fn(m.vector, t) }

// Trend parameter names.
const (
	DVDT = "dvdt"
	Curv = "curv"
)

// TrendModel is a linear plus quadratic trend about the time base:
//
//	v(t) = dvdt*(t - tb) + curv*(t - tb)²
//
// It is the non-Keplerian part of a standard RV model and is useful on its
// own for calibration datasets.
type TrendModel struct {
	vector   *param.Vector
	timeBase float64
	dvdt     int
	curv     int
}

// NewTrendModel registers dvdt and curv (fixed at zero when new) and returns
// the model.
func NewTrendModel(vector *param.Vector, timeBase float64) *TrendModel {
	return &TrendModel{
		vector:   vector,
		timeBase: timeBase,
		dvdt:     registerFixed(vector, DVDT),
		curv:     registerFixed(vector, Curv),
	}
}

func (m *TrendModel) Vector() *param.Vector { return m.vector }
func (m *TrendModel) TimeBase() float64     { return m.timeBase }

func (m *TrendModel) Evaluate(t []float64) []float64 {
	dvdt := m.vector.Value(m.dvdt)
	curv := m.vector.Value(m.curv)
	out := make([]float64, len(t))
	for i, ti := range t {
		dt := ti - m.timeBase
		out[i] = dvdt*dt + curv*dt*dt
	}
	return out
}

func registerFixed(v *param.Vector, name string) int {
	if i, ok := v.Index(name); ok {
		return i
	}
	return v.Add(name, param.Parameter{})
}

func sameModel(a, b Model) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

package rvlike

import (
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Composite joins several RV datasets that share one parameter vector and
// one model into a single likelihood.
type Composite struct {
	core

	children []*RV

	// data holds the merged arrays with every dataset after the first
	// shifted by its offset at construction time.
	data Dataset

	// rawVel holds the merged, unshifted velocities.
	rawVel []float64
}

// NewComposite merges children in order. It fails when the children do not
// share one vector and one model, or when two children disagree on the value
// or vary flag of a parameter.
func NewComposite(children []*RV, optFns ...Option) (*Composite, error) {
	if len(children) == 0 {
		return nil, ErrEmptyComposite
	}

	o := defaultOptions()
	o.apply(optFns)

	first := children[0]
	c := &Composite{
		core:     newCore(first.model, o),
		children: append([]*RV(nil), children...),
	}
	c.logger = c.logger.WithKind("composite")

	n := 0
	for _, like := range children {
		n += len(like.t)
	}
	c.data = Dataset{
		Time: make([]float64, 0, n),
		Vel:  make([]float64, 0, n),
		Err:  make([]float64, 0, n),
		Inst: make([]string, 0, n),
	}
	c.rawVel = make([]float64, 0, n)

	for i, like := range children {
		if i > 0 {
			if err := checkShared(children[:i], like); err != nil {
				return nil, err
			}
		}

		vel := like.vel
		if i > 0 {
			vel = append([]float64(nil), like.vel...)
			floats.AddConst(-like.vector.Value(like.gammaSlot), vel)
		}

		c.data.Time = append(c.data.Time, like.t...)
		c.data.Vel = append(c.data.Vel, vel...)
		c.data.Err = append(c.data.Err, like.errvel...)
		c.data.Inst = append(c.data.Inst, like.inst...)
		c.rawVel = append(c.rawVel, like.vel...)
	}
	return c, nil
}

// checkShared validates like against the children before it: every
// parameter both use must agree on value and vary flag, and all of them must
// hold the same vector and model.
func checkShared(earlier []*RV, like *RV) error {
	for _, prev := range earlier {
		for _, name := range like.params {
			if !slices.Contains(prev.params, name) {
				continue
			}
			want, _ := prev.vector.Param(name)
			got, _ := like.vector.Param(name)
			if got.Value != want.Value || got.Vary != want.Vary {
				return &ErrParameterMismatch{
					Name: name,
					Want: fmt.Sprintf("{value: %g, vary: %t}", want.Value, want.Vary),
					Got:  fmt.Sprintf("{value: %g, vary: %t}", got.Value, got.Vary),
				}
			}
		}
	}
	first := earlier[0]
	if like.vector != first.vector {
		return ErrVectorMismatch
	}
	if !sameModel(like.model, first.model) {
		return ErrModelMismatch
	}
	return nil
}

// Children returns the member likelihoods in order.
func (c *Composite) Children() []*RV {
	return append([]*RV(nil), c.children...)
}

// Data implements Likelihood. Velocities of every dataset after the first
// are shifted by that dataset's offset as it was at construction.
func (c *Composite) Data() Dataset {
	return c.data
}

// LogProb returns the sum of the members' log-likelihoods, evaluated in order.
func (c *Composite) LogProb() float64 {
	start := time.Now()
	var ll float64
	for _, like := range c.children {
		ll += like.LogProb()
	}
	c.metrics.RecordLogProb(time.Since(start), ll)
	return ll
}

// Residuals concatenates the members' residuals.
func (c *Composite) Residuals() []float64 {
	out := make([]float64, 0, len(c.rawVel))
	for _, like := range c.children {
		out = append(out, like.Residuals()...)
	}
	return out
}

// Errorbars concatenates the members' errorbars.
func (c *Composite) Errorbars() []float64 {
	out := make([]float64, 0, len(c.rawVel))
	for _, like := range c.children {
		out = append(out, like.Errorbars()...)
	}
	return out
}

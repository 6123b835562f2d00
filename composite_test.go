package rvlike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rvlike/param"
	"github.com/hupe1980/rvlike/testutil"
)

func twoInstruments(t *testing.T) (*param.Vector, *RV, *RV) {
	t.Helper()

	vec := param.NewVector()
	model := slopeModel(vec)
	a := mustRV(NewRV(model, []float64{0, 1, 2}, []float64{1, 2, 3}, []float64{1, 1, 1}, WithInstrument("a")))
	b := mustRV(NewRV(model, []float64{3, 4}, []float64{10, 12}, []float64{2, 2}, WithInstrument("b")))
	return vec, a, b
}

func TestCompositeSum(t *testing.T) {
	rng := testutil.NewRNG(7)
	ts := rng.Epochs(30, 0, 100)
	errs := rng.Errors(30, 0.5, 2)
	vel := testutil.Offset(testutil.Sinusoid(ts, 3, 17, 0), 5)
	rng.AddNoise(vel, errs)

	vec := param.NewVector()
	model := slopeModel(vec)

	whole := mustRV(NewRV(model, ts, vel, errs))
	a := mustRV(NewRV(model, ts[:12], vel[:12], errs[:12], WithInstrument("a")))
	b := mustRV(NewRV(model, ts[12:], vel[12:], errs[12:], WithInstrument("b")))

	for _, name := range []string{"gamma", "gamma_a", "gamma_b"} {
		fix(vec, name, 4.5)
	}
	for _, name := range []string{"jit", "jit_a", "jit_b"} {
		fix(vec, name, 0.8)
	}

	comp, err := NewComposite([]*RV{a, b})
	require.NoError(t, err)

	assert.InDelta(t, a.LogProb()+b.LogProb(), comp.LogProb(), 1e-9)
	assert.InDelta(t, whole.LogProb(), comp.LogProb(), 1e-9)
}

func TestCompositeProfilesEachOffset(t *testing.T) {
	vec, a, b := twoInstruments(t)
	require.NoError(t, vec.SetParam("gamma_a", param.Parameter{Linear: true}))
	require.NoError(t, vec.SetParam("gamma_b", param.Parameter{Linear: true}))

	comp, err := NewComposite([]*RV{a, b})
	require.NoError(t, err)

	lp := comp.LogProb()

	ga, _ := vec.Get("gamma_a")
	gb, _ := vec.Get("gamma_b")
	assert.NotZero(t, ga)
	assert.NotZero(t, gb)
	assert.InDelta(t, a.LogProb()+b.LogProb(), lp, 1e-12)
}

func TestCompositeData(t *testing.T) {
	vec, a, b := twoInstruments(t)
	require.NoError(t, vec.Set("gamma_a", 100))
	require.NoError(t, vec.Set("gamma_b", 3))

	comp, err := NewComposite([]*RV{a, b})
	require.NoError(t, err)

	d := comp.Data()
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, d.Time)
	assert.Equal(t, []float64{1, 2, 3, 7, 9}, d.Vel)
	assert.Equal(t, []float64{1, 1, 1, 2, 2}, d.Err)
	assert.Equal(t, []string{"a", "a", "a", "b", "b"}, d.Inst)

	// The shift is fixed at construction.
	require.NoError(t, vec.Set("gamma_b", 0))
	assert.Equal(t, []float64{1, 2, 3, 7, 9}, comp.Data().Vel)

	// Children data is untouched.
	assert.Equal(t, []float64{10, 12}, b.Data().Vel)
}

func TestCompositeConcatenation(t *testing.T) {
	vec, a, b := twoInstruments(t)
	fix(vec, "jit_a", 0)
	fix(vec, "jit_b", 1.5)

	comp, err := NewComposite([]*RV{a, b})
	require.NoError(t, err)

	assert.Equal(t, append(a.Residuals(), b.Residuals()...), comp.Residuals())
	assert.Equal(t, append(a.Errorbars(), b.Errorbars()...), comp.Errorbars())
	assert.Len(t, comp.Children(), 2)
	assert.Same(t, vec, comp.Vector())
}

func TestNewCompositeErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := NewComposite(nil)
		assert.ErrorIs(t, err, ErrEmptyComposite)
	})

	t.Run("VectorMismatch", func(t *testing.T) {
		a := mustRV(NewRV(zeroModel(param.NewVector()), []float64{0}, []float64{1}, []float64{1}, WithInstrument("a")))
		b := mustRV(NewRV(zeroModel(param.NewVector()), []float64{1}, []float64{1}, []float64{1}, WithInstrument("b")))

		_, err := NewComposite([]*RV{a, b})
		assert.ErrorIs(t, err, ErrVectorMismatch)
	})

	t.Run("ParameterMismatch", func(t *testing.T) {
		vecA := param.NewVector()
		vecB := param.NewVector()
		a := mustRV(NewRV(zeroModel(vecA), []float64{0}, []float64{1}, []float64{1}))
		b := mustRV(NewRV(zeroModel(vecB), []float64{1}, []float64{1}, []float64{1}))
		require.NoError(t, vecB.Set("gamma", 2))

		_, err := NewComposite([]*RV{a, b})

		var pm *ErrParameterMismatch
		require.ErrorAs(t, err, &pm)
		assert.Equal(t, "gamma", pm.Name)
	})

	t.Run("UnusedParameterIgnored", func(t *testing.T) {
		vecA := param.NewVector()
		vecB := param.NewVector()
		vecA.Add("per1", param.Parameter{Value: 1})
		vecB.Add("per1", param.Parameter{Value: 2})
		a := mustRV(NewRV(zeroModel(vecA), []float64{0}, []float64{1}, []float64{1}))
		b := mustRV(NewRV(zeroModel(vecB), []float64{1}, []float64{1}, []float64{1}))

		// per1 disagrees, but neither dataset uses it.
		_, err := NewComposite([]*RV{a, b})
		assert.ErrorIs(t, err, ErrVectorMismatch)
	})

	t.Run("EarlierChildMismatch", func(t *testing.T) {
		vecA := param.NewVector()
		vecC := param.NewVector()
		modelA := zeroModel(vecA)
		a := mustRV(NewRV(modelA, []float64{0}, []float64{1}, []float64{1}, WithInstrument("x")))
		b := mustRV(NewRV(modelA, []float64{1}, []float64{1}, []float64{1}, WithInstrument("y")))
		c := mustRV(NewRV(zeroModel(vecC), []float64{2}, []float64{1}, []float64{1}, WithInstrument("y")))
		require.NoError(t, vecC.Set("jit_y", 3))

		_, err := NewComposite([]*RV{a, b, c})

		var pm *ErrParameterMismatch
		require.ErrorAs(t, err, &pm)
		assert.Equal(t, "jit_y", pm.Name)
	})

	t.Run("ModelMismatch", func(t *testing.T) {
		vec := param.NewVector()
		a := mustRV(NewRV(zeroModel(vec), []float64{0}, []float64{1}, []float64{1}, WithInstrument("a")))
		b := mustRV(NewRV(zeroModel(vec), []float64{1}, []float64{1}, []float64{1}, WithInstrument("b")))

		_, err := NewComposite([]*RV{a, b})
		assert.ErrorIs(t, err, ErrModelMismatch)
	})
}

func TestCompositeMetrics(t *testing.T) {
	_, a, b := twoInstruments(t)
	mc := &BasicMetricsCollector{}

	comp, err := NewComposite([]*RV{a, b}, WithMetricsCollector(mc))
	require.NoError(t, err)

	comp.LogProb()
	comp.LogProb()

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.LogProbCount)
	assert.Zero(t, stats.LogProbNonFinite)
}

package rvlike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rvlike/param"
)

func TestTrendModel(t *testing.T) {
	vec := param.NewVector()
	m := NewTrendModel(vec, 10)

	assert.Equal(t, []string{DVDT, Curv}, vec.Names())
	assert.Empty(t, vec.VaryMask())
	assert.Equal(t, 10.0, m.TimeBase())
	assert.Same(t, vec, m.Vector())
	assert.Equal(t, []float64{0, 0}, m.Evaluate([]float64{0, 20}))

	require.NoError(t, vec.Set(DVDT, 0.5))
	require.NoError(t, vec.Set(Curv, 0.1))
	assert.InDeltaSlice(t, []float64{-5 + 10, 0, 5 + 10}, m.Evaluate([]float64{0, 10, 20}), 1e-12)

	t.Run("KeepsExisting", func(t *testing.T) {
		vec := param.NewVector()
		vec.Add(DVDT, param.Parameter{Value: 2, Vary: true})
		m := NewTrendModel(vec, 0)

		p, _ := vec.Param(DVDT)
		assert.True(t, p.Vary)
		assert.Equal(t, []float64{4}, m.Evaluate([]float64{2}))
	})
}

func TestTrendModelInLikelihood(t *testing.T) {
	vec := param.NewVector()
	m := NewTrendModel(vec, 0)
	require.NoError(t, vec.Set(DVDT, 1))

	like := mustRV(NewRV(m, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 1, 1}))
	assert.InDeltaSlice(t, []float64{0, 0, 0}, like.Residuals(), 1e-12)
}

func TestSameModel(t *testing.T) {
	vec := param.NewVector()
	a := zeroModel(vec)
	b := zeroModel(vec)

	assert.True(t, sameModel(a, a))
	assert.False(t, sameModel(a, b))
	assert.False(t, sameModel(a, NewTrendModel(vec, 0)))
	assert.False(t, sameModel(nil, a))
}

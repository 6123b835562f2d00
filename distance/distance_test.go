package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLags(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected [][]float64
	}{
		{"Square", []float64{0, 1, 3}, []float64{0, 1, 3}, [][]float64{{0, -1, -3}, {1, 0, -2}, {3, 2, 0}}},
		{"Rect", []float64{2}, []float64{0, 5}, [][]float64{{2, -3}}},
		{"Negative", []float64{-1, -2}, []float64{1}, [][]float64{{-2}, {-3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lags(tt.a, tt.b)
			r, c := got.Dims()
			require.Equal(t, len(tt.a), r)
			require.Equal(t, len(tt.b), c)
			for i := range tt.expected {
				for j := range tt.expected[i] {
					assert.InDelta(t, tt.expected[i][j], got.At(i, j), 1e-12)
				}
			}
		})
	}
}

func TestLagsEmpty(t *testing.T) {
	got := Lags(nil, []float64{1})
	assert.True(t, got.IsEmpty())
}

func TestSquaredLags(t *testing.T) {
	got := SquaredLags([]float64{0, 2}, []float64{1})
	assert.Equal(t, 1.0, got.At(0, 0))
	assert.Equal(t, 1.0, got.At(1, 0))
}

func TestMinSeparation(t *testing.T) {
	assert.Equal(t, 0.5, MinSeparation([]float64{3, 1, 1.5}))
	assert.Equal(t, 0.0, MinSeparation([]float64{1, 2, 1}))
	assert.True(t, math.IsInf(MinSeparation([]float64{1}), 1))
}

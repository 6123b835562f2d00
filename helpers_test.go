package rvlike

import (
	"bytes"
	"log/slog"

	"github.com/hupe1980/rvlike/param"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func zeroModel(vec *param.Vector) *FuncModel {
	return NewFuncModel(vec, 0, func(_ *param.Vector, t []float64) []float64 {
		return make([]float64, len(t))
	})
}

// slopeModel returns k*t with k read from the "k" parameter.
func slopeModel(vec *param.Vector) *FuncModel {
	vec.Add("k", param.Parameter{Value: 0.5, Vary: true})
	return NewFuncModel(vec, 0, func(v *param.Vector, t []float64) []float64 {
		k, _ := v.Get("k")
		out := make([]float64, len(t))
		for i, ti := range t {
			out[i] = k * ti
		}
		return out
	})
}

func mustRV(like *RV, err error) *RV {
	if err != nil {
		panic(err)
	}
	return like
}

func fix(vec *param.Vector, name string, value float64) {
	if err := vec.SetParam(name, param.Parameter{Value: value}); err != nil {
		panic(err)
	}
}

package rvlike

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rvlike/param"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf).WithKind("rv").WithInstrument("hires")

	logger.LogNonPositiveDefinite(12, "logprob")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "likelihood=rv")
	assert.Contains(t, out, "instrument=hires")
	assert.Contains(t, out, "op=logprob")
	assert.Contains(t, out, "points=12")
}

func TestJSONLoggerOption(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	vec := param.NewVector()
	like, err := NewRV(zeroModel(vec), []float64{0}, []float64{0}, []float64{1}, WithLogger(logger))
	require.NoError(t, err)

	AIC(like)
	assert.Contains(t, buf.String(), `"msg":"free parameters >= data points, AICc is undefined"`)
	assert.Contains(t, buf.String(), `"likelihood":"rv"`)
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

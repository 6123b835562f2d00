package rvlike

import (
	"log/slog"
)

type decorrSpec struct {
	variable string
	aux      []float64
	degree   int
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	instrument       string
	decorr           []decorrSpec
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
	}
}

func (o *options) apply(optFns []Option) {
	for _, fn := range optFns {
		fn(o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
}

// Option configures likelihood constructors.
//
// WithInstrument and WithDecorrelation only apply to NewRV; the composite and
// GP constructors ignore them.
type Option func(*options)

// WithLogger configures structured logging.
// Pass nil to fall back to the default text logger on stderr.
//
// Example with JSON logging:
//
//	logger := rvlike.NewJSONLogger(slog.LevelInfo)
//	like, _ := rvlike.NewRV(model, t, vel, errvel, rvlike.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for likelihood evaluations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithInstrument names the instrument of an RV dataset. The offset and jitter
// parameters become gamma_<label> and jit_<label>. Without it they are gamma
// and jit.
func WithInstrument(label string) Option {
	return func(o *options) {
		o.instrument = label
	}
}

// WithDecorrelation subtracts a polynomial of the mean-centered auxiliary
// vector aux from the residuals of an RV dataset. degree coefficients named
// c1_<variable>[_<label>] ... c<degree>_<variable>[_<label>] are registered;
// the constant term is fixed at zero. A degree below 1 is treated as 1.
//
// If aux contains NaN or ±Inf the term is skipped. Repeating a variable
// replaces its earlier aux vector and degree.
func WithDecorrelation(variable string, aux []float64, degree int) Option {
	return func(o *options) {
		if degree < 1 {
			degree = 1
		}
		d := decorrSpec{variable: variable, aux: aux, degree: degree}
		for i := range o.decorr {
			if o.decorr[i].variable == variable {
				o.decorr[i] = d
				return
			}
		}
		o.decorr = append(o.decorr, d)
	}
}

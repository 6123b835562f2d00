package rvlike

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rvlike/kernel"
)

var (
	// ErrNilModel is returned when a likelihood is built without a model or
	// with a model that has no parameter vector.
	ErrNilModel = errors.New("model and its parameter vector must not be nil")

	// ErrEmptyComposite is returned when a composite is built without children.
	ErrEmptyComposite = errors.New("composite likelihood needs at least one dataset")

	// ErrVectorMismatch is returned when composite members hold different parameter vectors.
	ErrVectorMismatch = errors.New("likelihoods must hold the same parameter vector")

	// ErrModelMismatch is returned when composite members hold different models.
	ErrModelMismatch = errors.New("likelihoods must hold the same model")

	// ErrNoEpochs is returned when a GP is built on datasets without epochs.
	ErrNoEpochs = errors.New("gp likelihood needs at least one epoch")

	// ErrNotPositiveDefinite is returned when a covariance matrix cannot be factorised.
	ErrNotPositiveDefinite = errors.New("covariance matrix is not positive definite")

	// ErrMissingHyperparameter is returned when a GP is built without a hyperparameter its kernel needs.
	ErrMissingHyperparameter = kernel.ErrMissingHyperparameter

	// ErrInstrumentRequired is returned when a prediction at new epochs is
	// requested without naming the instrument.
	ErrInstrumentRequired = errors.New("instrument required for prediction at new epochs")

	// ErrUnknownInstrument is returned when a prediction names an instrument
	// that has no data in the GP.
	ErrUnknownInstrument = errors.New("unknown instrument")
)

// ErrLengthMismatch indicates input arrays of different lengths.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch for %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

// ErrParameterMismatch indicates that two composite members disagree on a
// shared parameter.
type ErrParameterMismatch struct {
	Name string
	Want string
	Got  string
}

func (e *ErrParameterMismatch) Error() string {
	return fmt.Sprintf("parameter %s: %s != %s", e.Name, e.Got, e.Want)
}

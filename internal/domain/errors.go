package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidName = errors.New("invalid artifact name")

	ErrEngineUnavailable = errors.New("conversion engine unavailable")
	ErrEngineTimeout     = fmt.Errorf("%w: timed out", ErrEngineUnavailable)
	ErrConversionFailed  = errors.New("conversion failed")
)

// ValidationError describes a rejected request. Message is safe to show to the client.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsEngineError reports whether err was classified by the conversion engine adapter.
func IsEngineError(err error) bool {
	return errors.Is(err, ErrEngineUnavailable) || errors.Is(err, ErrConversionFailed)
}

// PipelineError carries the failure state a conversion run ended in.
type PipelineError struct {
	State State
	Err   error
}

func (e *PipelineError) Error() string {
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// FailureState returns the state a failed run ended in, or StateFailed when
// err does not carry one.
func FailureState(err error) State {
	var target *PipelineError
	if errors.As(err, &target) {
		return target.State
	}
	return StateFailed
}

package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure. Each stage has exactly one
// kind, so callers can tell a fatal configuration problem from a
// recoverable per-chunk model failure without inspecting messages.
type ErrorKind string

const (
	KindConfig     ErrorKind = "config"
	KindEventShape ErrorKind = "event_shape"
	KindFetch      ErrorKind = "fetch"
	KindModel      ErrorKind = "model"
	KindSubmission ErrorKind = "submission"
)

// PipelineError wraps an underlying error with its kind and the operation
// that produced it.
type PipelineError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError wraps err with a kind and operation name.
func NewPipelineError(kind ErrorKind, op string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err if it is or wraps a PipelineError, and
// "" otherwise.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

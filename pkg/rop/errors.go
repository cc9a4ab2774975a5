package rop

import (
	"errors"
	"fmt"
)

// Kind classifies a stage failure.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindComputationFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindComputationFailed:
		return "computation failed"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrComputationFailed = errors.New("computation failed")
)

// Error is the failure value produced by pipeline stages. It matches the
// sentinel of its kind with errors.Is and unwraps to its cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrComputationFailed:
		return e.Kind == KindComputationFailed
	}
	return false
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func ComputationFailed(format string, args ...any) error {
	return &Error{Kind: KindComputationFailed, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

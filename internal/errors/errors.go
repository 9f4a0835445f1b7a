package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorChain keeps the root cause first and each added context after it.
type ErrorChain struct {
	errors []error
}

func (e *ErrorChain) Error() string {
	builder := strings.Builder{}
	for i := len(e.errors) - 1; i >= 0; i-- {
		builder.WriteString(e.errors[i].Error())
		if i != 0 {
			builder.WriteString(": ")
		}
	}

	return builder.String()
}

func (e *ErrorChain) Unwrap() []error {
	return e.errors
}

func New(text string) error {
	return stderrors.New(text)
}

func Errorf(format string, args ...any) error {
	return &ErrorChain{errors: []error{fmt.Errorf(format, args...)}}
}

// Wrapf returns a new chain, err itself is never modified.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	var errs []error
	if e, ok := err.(*ErrorChain); ok {
		errs = make([]error, 0, len(e.errors)+1)
		errs = append(errs, e.errors...)
	} else {
		errs = []error{err}
	}
	errs = append(errs, fmt.Errorf(format, args...))

	return &ErrorChain{errors: errs}
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

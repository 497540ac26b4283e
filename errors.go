package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrBlank          = errors.New("must not be blank")
	ErrNotPositiveInt = errors.New("must be a positive whole number")
	ErrNegative       = errors.New("must not be negative")
	ErrNotDecimal     = errors.New("must be a number")
)

// InputError reports an answer that could not be turned into a request.
// It is the only error the menu recovers from.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

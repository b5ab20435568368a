package calc

import (
	"errors"
	"fmt"
)

// ErrorText is what the display shows for every failed operation.
const ErrorText = "Error"

// ErrCalculation is the single error class of the calculator. Every failure
// the user can trigger wraps it.
var ErrCalculation = errors.New("calculation error")

var (
	// ErrInvalidInput indicates the buffer could not be read as one number
	ErrInvalidInput = fmt.Errorf("%w: input is not a number", ErrCalculation)

	// ErrEvaluation indicates the expression engine rejected the input
	ErrEvaluation = fmt.Errorf("%w: expression could not be evaluated", ErrCalculation)

	// ErrNonFinite indicates the result was infinite or NaN, e.g. division by zero
	ErrNonFinite = fmt.Errorf("%w: result is not finite", ErrCalculation)
)

// OpError records the operation and input that produced a calculation error
type OpError struct {
	Op    string
	Input string
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

package apint

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by QuoRem, Quo and Rem when the divisor is
	// zero.
	ErrDivisionByZero = errors.New("apint: division by zero")

	// ErrRange is wrapped by every conversion error where the value does not
	// fit the target type. Test for it with errors.Is.
	ErrRange = errors.New("apint: value out of range")
)

const natUnderflow = "apint: nat subtraction underflow"

func rangeError(v fmt.Stringer, typ string) error {
	return fmt.Errorf("apint: %s overflows %s: %w", v, typ, ErrRange)
}

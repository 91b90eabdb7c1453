package bignum

import (
	"fmt"

	"github.com/pkg/errors"
)

// PrecondError reports a violated precondition of a bignum operation:
// divide-by-zero, a digit outside 0..=9, or a Uint128 conversion of a
// negative or over-128-bit value. These are programmer errors, not user
// errors, so every constructor and operator that can hit one panics with
// a *PrecondError rather than returning one.
type PrecondError struct {
	cause error
}

func (e *PrecondError) Error() string {
	return e.cause.Error()
}

func (e *PrecondError) Unwrap() error {
	return e.cause
}

func precondPanic(format string, args ...interface{}) {
	panic(&PrecondError{cause: errors.Wrap(fmt.Errorf(format, args...), "bignum precondition violated")})
}

// ErrDivideByZero is the specific precondition violated by dividing or
// taking the modulo of a BigInt by zero.
var ErrDivideByZero = fmt.Errorf("attempt to divide or take modulo by zero")

func errNotNumeric(s string) error {
	return errors.Wrapf(fmt.Errorf("%q is not a valid signed decimal integer", s), "bignum: non-numeric scalar argument")
}

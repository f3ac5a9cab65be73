package bigint

import "errors"

// Domain errors returned by division and root operations. When one of
// these is returned the result values are only good for Free; their
// contents are unspecified.
var (
	// ErrDivideByZero is returned by Div when the divisor is zero or
	// empty.
	ErrDivideByZero = errors.New("bigint: division by zero")

	// ErrNegativeRoot is returned by Sqrt and Cbrt on a negative signed
	// value; the engine has no complex results.
	ErrNegativeRoot = errors.New("bigint: root of negative value")
)

// Package dual: sentinel error set.
//
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. Context
// (operation name, offending operand type) is added with fmt.Errorf("...: %w")
// at the dispatch boundary that knows it — callers still match the sentinel.
// No operation panics on user input; IEEE edge cases (division by zero,
// overflow) pass through as ±Inf/NaN and are never surfaced as errors.
package dual

import "errors"

var (
	// ErrUnsupportedOperand indicates a dynamic operand that is neither a
	// Dual nor a numeric scalar. The typed method surface cannot trigger it;
	// only Promote and Apply can.
	ErrUnsupportedOperand = errors.New("dual: unsupported operand type")

	// ErrDualExponent indicates a power operation whose exponent is itself
	// a Dual. Dual-to-dual exponentiation is unsupported by design: the
	// power rule implemented here holds for constant exponents only.
	ErrDualExponent = errors.New("dual: dual exponent not supported")
)

package dual

import "fmt"

// Dynamic operand dispatch.
//
// Description:
//
//	The typed method surface (Add, SubFrom, Pow, …) resolves operand kinds
//	at compile time. Code that receives heterogeneous operands — a Dual, a
//	float64, an int, or something unusable — goes through Promote/Apply
//	instead: the runtime mirror of double dispatch, collapsed into one
//	closed switch per entry point.
//
//	Promotion treats every Go numeric kind as a constant (dual part 0).
//	Anything else is a signaled failure: the error wraps
//	ErrUnsupportedOperand (or ErrDualExponent for a Dual power exponent)
//	and names both the operation attempted and the operand's type, so the
//	failure is inspectable with errors.Is and readable in logs.
//
// Errors:
//   - ErrUnsupportedOperand — operand is neither Dual nor a numeric kind.
//   - ErrDualExponent       — OpPow given a Dual where the exponent belongs.

// Op identifies a binary dual-number operation for dynamic dispatch.
type Op int

const (
	// OpAdd is addition: x + operand.
	OpAdd Op = iota

	// OpSub is subtraction: x − operand (operand − x when reflected).
	OpSub

	// OpMul is multiplication: x · operand.
	OpMul

	// OpDiv is division: x / operand (operand / x when reflected).
	OpDiv

	// OpPow is exponentiation: x ^ operand, scalar exponents only.
	OpPow
)

// String returns the operation's name for diagnostics.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	case OpPow:
		return "power"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Promote coerces v into a Dual.
//
// A Dual passes through unchanged. Any Go numeric kind becomes a constant
// (dual part 0) — never a seed; seeds are built explicitly with Seed.
// Everything else returns ErrUnsupportedOperand wrapped with the offending
// type's name.
func Promote(v any) (Dual, error) {
	switch n := v.(type) {
	case Dual:
		return n, nil
	case float64:
		return Const(n), nil
	case float32:
		return Const(float64(n)), nil
	case int:
		return Const(float64(n)), nil
	case int8:
		return Const(float64(n)), nil
	case int16:
		return Const(float64(n)), nil
	case int32:
		return Const(float64(n)), nil
	case int64:
		return Const(float64(n)), nil
	case uint:
		return Const(float64(n)), nil
	case uint8:
		return Const(float64(n)), nil
	case uint16:
		return Const(float64(n)), nil
	case uint32:
		return Const(float64(n)), nil
	case uint64:
		return Const(float64(n)), nil
	default:
		return Dual{}, fmt.Errorf("dual: operand type %T: %w", v, ErrUnsupportedOperand)
	}
}

// Apply computes x ⟨op⟩ operand, promoting operand first.
//
// OpPow requires a scalar exponent: a Dual operand (even one with zero dual
// part) returns ErrDualExponent, since dual-to-dual exponentiation is
// unsupported by design. All errors are returned, never swallowed.
func Apply(op Op, x Dual, operand any) (Dual, error) {
	if op == OpPow {
		return applyPow(x, operand)
	}

	o, err := Promote(operand)
	if err != nil {
		return Dual{}, fmt.Errorf("dual: %s: %w", op, err)
	}

	switch op {
	case OpAdd:
		return x.Add(o), nil
	case OpSub:
		return x.Sub(o), nil
	case OpMul:
		return x.Mul(o), nil
	case OpDiv:
		return x.Div(o), nil
	default:
		return Dual{}, fmt.Errorf("dual: %s: %w", op, ErrUnsupportedOperand)
	}
}

// ApplyReflected computes operand ⟨op⟩ x — the operand-on-left order.
//
// Addition and multiplication reuse the forward routines (commutative by
// construction). Subtraction and division dispatch to the distinct
// reflected formulas; they are not swap-and-negate of the forward ones.
// A reflected power (scalar base, Dual exponent) is a dual exponent and
// returns ErrDualExponent.
func ApplyReflected(op Op, x Dual, operand any) (Dual, error) {
	if op == OpPow {
		return Dual{}, fmt.Errorf("dual: %s: exponent is a Dual: %w", op, ErrDualExponent)
	}

	o, err := Promote(operand)
	if err != nil {
		return Dual{}, fmt.Errorf("dual: %s: %w", op, err)
	}

	switch op {
	case OpAdd:
		return x.Add(o), nil
	case OpMul:
		return x.Mul(o), nil
	case OpSub:
		return o.Sub(x), nil
	case OpDiv:
		return o.Div(x), nil
	default:
		return Dual{}, fmt.Errorf("dual: %s: %w", op, ErrUnsupportedOperand)
	}
}

// applyPow validates the exponent kind before delegating to Pow.
func applyPow(x Dual, exponent any) (Dual, error) {
	if _, isDual := exponent.(Dual); isDual {
		return Dual{}, fmt.Errorf("dual: %s: exponent is a Dual: %w", OpPow, ErrDualExponent)
	}

	n, err := Promote(exponent)
	if err != nil {
		return Dual{}, fmt.Errorf("dual: %s: %w", OpPow, err)
	}

	return x.Pow(n.Real()), nil
}

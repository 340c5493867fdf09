// Package dual declares the Dual value type, its constructors and rendering.
//
// A Dual is a pure value: two float64 fields, copy semantics, no identity
// beyond its components. It is comparable, so tests may use == for exact
// structural equality of (real, dual) pairs; the algebra itself never needs
// equality or ordering.
//
// Errors:
//
//	ErrUnsupportedOperand - dynamic operand is neither Dual nor numeric scalar.
//	ErrDualExponent       - exponent of a power operation is itself a Dual.
package dual

import "strconv"

// Dual represents the dual number real + dual·ε with ε² = 0.
//
// The real part carries a function value; the dual part carries its
// derivative (tangent). Instances are immutable: every operation returns
// a fresh Dual and no method mutates its receiver.
type Dual struct {
	real float64
	dual float64
}

// New constructs a Dual from its two components.
// Inputs are not validated: NaN and ±Inf propagate per IEEE-754 semantics.
func New(real, dual float64) Dual {
	return Dual{real: real, dual: dual}
}

// Seed constructs the derivative seed x + 1ε for the point x.
//
// Seeding is always explicit: the dual part must be exactly 1 at the
// variable being differentiated, so Seed is never produced by promoting
// a plain scalar (Const promotes with dual part 0).
func Seed(x float64) Dual {
	return Dual{real: x, dual: 1}
}

// Const promotes a plain scalar to a Dual with zero dual part.
// A constant has zero derivative, so c becomes c + 0ε.
func Const(c float64) Dual {
	return Dual{real: c}
}

// Real returns the real (value) component.
func (d Dual) Real() float64 { return d.real }

// Deriv returns the dual (derivative) component.
func (d Dual) Deriv() float64 { return d.dual }

// String renders the Dual as "(R, Dε)" with the lowercase Greek epsilon.
// Diagnostic output only; the algebra never consumes this form.
func (d Dual) String() string {
	return "(" + strconv.FormatFloat(d.real, 'g', -1, 64) +
		", " + strconv.FormatFloat(d.dual, 'g', -1, 64) + "ε)"
}

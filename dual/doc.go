// Package dual implements the algebra of dual numbers — immutable
// (real, dualε) pairs whose arithmetic carries a first derivative through
// every operation (forward-mode automatic differentiation).
//
// 🚀 What is a dual number?
//
//	A formal number a + bε where ε² = 0. Seed a computation with
//	Seed(x) = x + 1ε, push it through ordinary arithmetic, and the result's
//	real part is f(x) while its dual part is exactly f′(x):
//	  • add/sub  — linearity of differentiation
//	  • mul      — the product rule (ε² terms vanish structurally)
//	  • div      — the quotient rule
//	  • pow      — the power rule, constant exponents only
//	It's widely used in:
//	  • Gradient-based optimization & curve fitting
//	  • Sensitivity analysis of numeric models
//	  • Physics integrators needing exact local slopes
//
// ✨ Key features:
//   - immutable value semantics: every operation returns a fresh Dual
//   - distinct reflected forms: SubFrom(c) computes c − X, DivInto(c)
//     computes c / X — never swap-and-negate shortcuts
//   - IEEE pass-through: division by a zero real part yields ±Inf/NaN,
//     mirroring ordinary float64 behavior (deliberate, not accidental)
//   - a dynamic dispatch layer (Promote/Apply) for heterogeneous operands,
//     with typed sentinel errors for anything non-numeric
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldual/dual"
//
//	x := dual.Seed(3)                 // 3 + 1ε
//	y := x.Mul(x).AddScalar(2)        // x² + 2
//	fmt.Println(y.Real(), y.Deriv())  // 11 6
//
// Performance:
//
//   - Time:   O(1) per operation
//   - Memory: zero allocations; Dual is a two-word value
//
// Errors:
//
//	ErrUnsupportedOperand — dynamic operand is neither Dual nor numeric.
//	ErrDualExponent       — dual-to-dual exponentiation (unsupported by design).
//
// Transcendental functions (sin, exp, log, …) are a natural extension point
// but are not implemented here.
//
// See examples in example_test.go.
package dual

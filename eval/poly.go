package eval

import "github.com/katalvlaran/lvldual/dual"

// Polynomial builds f(x) = coeffs[0] + coeffs[1]·x + … + coeffs[n]·xⁿ
// as a Func, with coefficients given in ascending-degree order.
//
// The returned Func evaluates by Horner's method over dual numbers, so a
// degree-n polynomial costs n multiplications and n additions per call —
// and its derivative comes along for free through the dual part.
//
// No coefficients yields the zero function. A defensive copy of coeffs is
// taken, so the caller may reuse or mutate its slice afterwards.
//
// Example:
//
//	f := Polynomial(-18, 7, 1)        // x² + 7x − 18
//	v, d := ValueAndDerivative(f, 7)  // v = 80, d = 21
func Polynomial(coeffs ...float64) Func {
	if len(coeffs) == 0 {
		return func(dual.Dual) dual.Dual { return dual.Const(0) }
	}

	cs := make([]float64, len(coeffs))
	copy(cs, coeffs)

	return func(x dual.Dual) dual.Dual {
		// Horner: ((cₙ·x + cₙ₋₁)·x + …)·x + c₀
		acc := dual.Const(cs[len(cs)-1])
		for i := len(cs) - 2; i >= 0; i-- {
			acc = acc.Mul(x).AddScalar(cs[i])
		}

		return acc
	}
}

package dual

import "math"

// Arithmetic on dual numbers.
//
// Description:
//
//	Writing X = a + bε and Y = c + dε with ε² = 0, the operation results
//	below follow directly from expanding and dropping every term that
//	carries ε² or higher:
//
//	  X + Y = (a+c) + (b+d)ε            — linearity
//	  X − Y = (a−c) + (b−d)ε            — linearity
//	  X · Y = ac + (ad + cb)ε           — product rule; the bd·ε² term vanishes
//	  X / Y = a/c + ((bc − da)/c²)ε     — quotient rule
//	  X ^ n = aⁿ + (n·b·aⁿ⁻¹)ε          — power rule, n a constant scalar
//
//	Scalar operands are the special case dual part = 0, which is why the
//	scalar forms below simplify: a constant has zero derivative. Addition
//	and multiplication are commutative, so their scalar forms serve both
//	operand orders. Subtraction and division are NOT: the reflected forms
//	SubFrom and DivInto compute c − X and c / X directly from their own
//	formulas, never by negating or inverting the forward routine.
//
// Complexity:
//
//	Time   = O(1) per operation
//	Memory = 0 allocations (Dual is a value)
//
// Numeric policy:
//
//	Division by a Dual whose real part is exactly zero is NOT guarded:
//	the result carries ±Inf/NaN per IEEE-754, mirroring plain float64
//	division. The algebra inherits float64 edge-case behavior wholesale.

// Add returns the sum d + o.
func (d Dual) Add(o Dual) Dual {
	return Dual{real: d.real + o.real, dual: d.dual + o.dual}
}

// AddScalar returns d + c. Commutative: c + d yields the same value.
func (d Dual) AddScalar(c float64) Dual {
	return Dual{real: d.real + c, dual: d.dual}
}

// Sub returns the difference d − o.
func (d Dual) Sub(o Dual) Dual {
	return Dual{real: d.real - o.real, dual: d.dual - o.dual}
}

// SubScalar returns d − c.
func (d Dual) SubScalar(c float64) Dual {
	return Dual{real: d.real - c, dual: d.dual}
}

// SubFrom returns the reflected difference c − d.
// This is (c − real, −dualε): the dual part is negated, so SubFrom is NOT
// interchangeable with SubScalar unless the dual part is zero.
func (d Dual) SubFrom(c float64) Dual {
	return Dual{real: c - d.real, dual: -d.dual}
}

// Mul returns the product d · o using the product rule.
func (d Dual) Mul(o Dual) Dual {
	return Dual{
		real: d.real * o.real,
		dual: d.real*o.dual + o.real*d.dual,
	}
}

// Scale returns d · c. Commutative: c · d yields the same value.
func (d Dual) Scale(c float64) Dual {
	return Dual{real: d.real * c, dual: d.dual * c}
}

// Div returns the quotient d / o using the quotient rule.
// A zero real part in o is not guarded; see the numeric policy above.
func (d Dual) Div(o Dual) Dual {
	return Dual{
		real: d.real / o.real,
		dual: (d.dual*o.real - o.dual*d.real) / (o.real * o.real),
	}
}

// DivScalar returns d / c.
func (d Dual) DivScalar(c float64) Dual {
	return Dual{real: d.real / c, dual: d.dual / c}
}

// DivInto returns the reflected quotient c / d — the quotient rule with a
// constant numerator: (c/real, −c·dual/real²). Distinct from Div and
// DivScalar; a zero real part in d is not guarded.
func (d Dual) DivInto(c float64) Dual {
	return Dual{
		real: c / d.real,
		dual: -c * d.dual / (d.real * d.real),
	}
}

// Pow returns d raised to the constant exponent n via the power rule.
//
// Boundary cases are pinned so the power rule holds exactly:
//   - n == 0 returns (1, 0ε) for every base, avoiding the 0·Inf = NaN that
//     the raw formula would produce at real == 0;
//   - n == 1 returns d unchanged.
//
// Raising to a Dual exponent is unsupported by design; the dynamic layer
// reports it as ErrDualExponent.
func (d Dual) Pow(n float64) Dual {
	switch n {
	case 0:
		return Dual{real: 1, dual: 0}
	case 1:
		return d
	}

	return Dual{
		real: math.Pow(d.real, n),
		dual: n * d.dual * math.Pow(d.real, n-1),
	}
}

// Neg returns −d. Equivalent to d.SubFrom(0).
func (d Dual) Neg() Dual {
	return Dual{real: -d.real, dual: -d.dual}
}

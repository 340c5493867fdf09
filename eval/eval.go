package eval

import "github.com/katalvlaran/lvldual/dual"

// Func is a differentiable scalar function expressed over dual numbers.
//
// A Func must operate on its argument the same way it would on a plain
// number, using only dual-aware operations. It is a first-class value:
// composition, closures and capturing parameters all work as usual.
type Func func(dual.Dual) dual.Dual

// ValueAndDerivative evaluates f at x and returns f(x) and f′(x) together.
//
// It seeds x + 1ε, applies f exactly once, and splits the result: the
// real part is the value, the dual part the exact first derivative.
func ValueAndDerivative(f Func, x float64) (value, derivative float64) {
	r := f(dual.Seed(x))

	return r.Real(), r.Deriv()
}

// Derivative evaluates f′(x), discarding the value component.
func Derivative(f Func, x float64) float64 {
	_, d := ValueAndDerivative(f, x)

	return d
}

// Sample holds one point of a batch evaluation.
type Sample struct {
	// X is the evaluation point.
	X float64

	// Value is f(X).
	Value float64

	// Derivative is f′(X).
	Derivative float64
}

// Table evaluates f at every point in xs, in order.
//
// Each entry is an independent single-pass evaluation; since Func is pure
// over immutable values, callers may freely shard xs across goroutines and
// concatenate results instead, with no synchronization concerns.
func Table(f Func, xs []float64) []Sample {
	if len(xs) == 0 {
		return nil
	}

	out := make([]Sample, len(xs))
	for i, x := range xs {
		v, d := ValueAndDerivative(f, x)
		out[i] = Sample{X: x, Value: v, Derivative: d}
	}

	return out
}

// Package eval computes a function's value and exact first derivative in a
// single pass, by seeding a dual number through the function.
//
// 🚀 What is single-pass evaluation?
//
//	Forward-mode automatic differentiation: ValueAndDerivative(f, x) builds
//	the seed x + 1ε, applies f once, and reads f(x) from the real part and
//	f′(x) from the dual part. No symbolic differentiation, no finite
//	differences, no second evaluation.
//
// ✨ Key features:
//   - Func — a differentiable function as a first-class callable; functions
//     are values, never text to be parsed or interpreted
//   - ValueAndDerivative / Derivative — one-shot evaluation at a point
//   - Table — batch evaluation over many points (pure, goroutine-safe)
//   - Polynomial — build c₀ + c₁x + … + cₙxⁿ as a Func via Horner's method
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldual/eval"
//
//	f := eval.Polynomial(-18, 7, 1)       // f(x) = x² + 7x − 18
//	v, d := eval.ValueAndDerivative(f, 7) // v=80, d=21
//
// Precondition:
//
//	f must be composed only of operations with dual-number definitions
//	(the dual package's arithmetic and constant-exponent Pow). Calling a
//	function without a dual-aware definition inside f is a caller error.
//	Transcendentals (sin, exp, log, …) are future work, not yet provided.
//
// Complexity: O(number of operations in f) time, O(1) memory per call.
//
// See examples in example_test.go.
package eval

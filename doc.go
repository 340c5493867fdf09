// Package lvldual is your in-memory playground for exact first derivatives:
// forward-mode automatic differentiation built on the algebra of dual numbers.
//
// 🚀 What is lvldual?
//
//	A small, deterministic, dependency-light library that computes a function's
//	value and its exact first derivative in a single evaluation pass:
//	  • Dual — an immutable (real, dualε) value with full +, −, ×, ÷, ^ algebra
//	  • Seeding — Seed(x) carries the perturbation ε through every operation
//	  • Evaluation — eval.ValueAndDerivative(f, x) returns f(x) and f′(x) together
//	  • No symbolic engines, no finite differences, no text-to-code tricks
//
// ✨ Why choose lvldual?
//
//   - Exact to floating-point precision — the chain/product/quotient rules are
//     encoded structurally (ε² = 0), not approximated
//   - Pure values — no shared state, no locks needed, safe across goroutines
//   - Rock-solid error surface — typed sentinels, errors.Is-friendly
//   - Pure Go — no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	dual/ — the Dual value type, its arithmetic algebra and dynamic dispatch
//	eval/ — single-pass value-and-derivative evaluation of first-class functions
//
// Quick taste:
//
//	f := eval.Polynomial(-18, 7, 1)          // f(x) = x² + 7x − 18
//	v, d := eval.ValueAndDerivative(f, 7)    // v = 80, d = 21
//
// Dive into README.md and the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/lvldual/dual
package lvldual

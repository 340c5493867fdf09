package dual_test

import (
	"testing"

	"github.com/katalvlaran/lvldual/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPromote_NumericKinds verifies every accepted numeric kind promotes
// to a constant with zero dual part.
func TestPromote_NumericKinds(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", float64(2.5), 2.5},
		{"float32", float32(1.5), 1.5},
		{"int", int(-4), -4},
		{"int8", int8(-8), -8},
		{"int16", int16(16), 16},
		{"int32", int32(-32), -32},
		{"int64", int64(64), 64},
		{"uint", uint(4), 4},
		{"uint8", uint8(8), 8},
		{"uint16", uint16(16), 16},
		{"uint32", uint32(32), 32},
		{"uint64", uint64(64), 64},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dual.Promote(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Real())
			assert.Equal(t, 0.0, got.Deriv(), "promotion must never create a seed")
		})
	}
}

// TestPromote_DualPassthrough verifies a Dual operand is returned unchanged.
func TestPromote_DualPassthrough(t *testing.T) {
	x := dual.New(4, 3)

	got, err := dual.Promote(x)
	require.NoError(t, err)
	assert.Equal(t, x, got)
}

// TestPromote_Unsupported verifies the typed failure for non-numeric
// operands: sentinel matchable via errors.Is, type name in the message.
func TestPromote_Unsupported(t *testing.T) {
	_, err := dual.Promote("x**2")
	assert.ErrorIs(t, err, dual.ErrUnsupportedOperand)
	assert.Contains(t, err.Error(), "string", "message must name the offending type")

	_, err = dual.Promote(nil)
	assert.ErrorIs(t, err, dual.ErrUnsupportedOperand, "nil is not a numeric operand")
}

// TestApply_DispatchesAllOps checks each Op against its typed counterpart.
func TestApply_DispatchesAllOps(t *testing.T) {
	x := dual.New(4, 3)
	y := dual.New(5, 7)

	cases := []struct {
		op   dual.Op
		want dual.Dual
	}{
		{dual.OpAdd, x.Add(y)},
		{dual.OpSub, x.Sub(y)},
		{dual.OpMul, x.Mul(y)},
		{dual.OpDiv, x.Div(y)},
	}

	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := dual.Apply(tc.op, x, y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestApply_ScalarOperand verifies scalar promotion inside Apply.
func TestApply_ScalarOperand(t *testing.T) {
	x := dual.New(4, 3)

	got, err := dual.Apply(dual.OpMul, x, 2)
	require.NoError(t, err)
	assert.Equal(t, x.Scale(2), got)

	got, err = dual.Apply(dual.OpPow, x, 2.0)
	require.NoError(t, err)
	assert.Equal(t, x.Pow(2), got)
}

// TestApply_UnsupportedOperand verifies the error names both the operation
// attempted and the operand type, and wraps the sentinel.
func TestApply_UnsupportedOperand(t *testing.T) {
	x := dual.New(4, 3)

	_, err := dual.Apply(dual.OpAdd, x, struct{}{})
	assert.ErrorIs(t, err, dual.ErrUnsupportedOperand)
	assert.Contains(t, err.Error(), "addition", "message must name the operation")
	assert.Contains(t, err.Error(), "struct {}", "message must name the operand type")
}

// TestApply_DualExponent verifies that OpPow rejects a Dual exponent with
// ErrDualExponent — even one whose dual part is zero.
func TestApply_DualExponent(t *testing.T) {
	x := dual.New(4, 3)

	_, err := dual.Apply(dual.OpPow, x, dual.New(2, 0))
	assert.ErrorIs(t, err, dual.ErrDualExponent)
}

// TestApplyReflected_Commutative verifies reflected add/mul reuse the
// forward routines and agree with them exactly.
func TestApplyReflected_Commutative(t *testing.T) {
	x := dual.New(4, 3)

	add, err := dual.ApplyReflected(dual.OpAdd, x, 2)
	require.NoError(t, err)
	assert.Equal(t, x.AddScalar(2), add, "2 + X equals X + 2")

	mul, err := dual.ApplyReflected(dual.OpMul, x, 2)
	require.NoError(t, err)
	assert.Equal(t, x.Scale(2), mul, "2 · X equals X · 2")
}

// TestApplyReflected_NonCommutative is the dynamic-layer regression for the
// aliased reflected operators: operand-on-left sub/div must use their own
// formulas, not the forward ones.
func TestApplyReflected_NonCommutative(t *testing.T) {
	x := dual.New(4, 3)

	sub, err := dual.ApplyReflected(dual.OpSub, x, 10)
	require.NoError(t, err)
	assert.Equal(t, x.SubFrom(10), sub, "reflected sub computes c − X")
	assert.NotEqual(t, x.SubScalar(10), sub)

	div, err := dual.ApplyReflected(dual.OpDiv, x, 8)
	require.NoError(t, err)
	assert.Equal(t, x.DivInto(8), div, "reflected div computes c / X")
	assert.NotEqual(t, x.DivScalar(8), div)
}

// TestApplyReflected_PowRejected verifies scalar-base-dual-exponent is a
// dual exponent and is rejected as such.
func TestApplyReflected_PowRejected(t *testing.T) {
	_, err := dual.ApplyReflected(dual.OpPow, dual.New(4, 3), 2)
	assert.ErrorIs(t, err, dual.ErrDualExponent)
}

// TestOpString covers the diagnostic names, including an unknown Op.
func TestOpString(t *testing.T) {
	assert.Equal(t, "addition", dual.OpAdd.String())
	assert.Equal(t, "subtraction", dual.OpSub.String())
	assert.Equal(t, "multiplication", dual.OpMul.String())
	assert.Equal(t, "division", dual.OpDiv.String())
	assert.Equal(t, "power", dual.OpPow.String())
	assert.Equal(t, "Op(99)", dual.Op(99).String())
}

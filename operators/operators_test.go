package operators_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/countdown/operators"
)

func TestComplexity_Tables(t *testing.T) {
	cases := []struct {
		v, add, mul int
	}{
		{1, 10, 0},
		{2, 20, 10},
		{3, 30, 40},
		{4, 40, 20},
		{5, 50, 10},
		{6, 60, 50},
		{7, 70, 100},
		{8, 80, 40},
		{9, 90, 60},
		{11, 110, 20},
		{12, 120, 50},
		{13, 130, 260},
		{10, 11, 2},
		{100, 12, 4},
		{250, 251, 502},
		{75, 750, 1500},
		{0, 0, 0},
		{20000, 24, 18},
	}
	for _, c := range cases {
		assert.Equal(t, c.add, operators.AddComplexity(c.v), "AddComplexity(%d)", c.v)
		assert.Equal(t, c.mul, operators.MulComplexity(c.v), "MulComplexity(%d)", c.v)
	}
}

func TestSupports(t *testing.T) {
	assert.True(t, operators.Add.Supports(4, 2))
	assert.True(t, operators.Add.Supports(5, 5))
	assert.False(t, operators.Add.Supports(2, 4), "operand order is canonical")

	assert.True(t, operators.Subtract.Supports(4, 2))
	assert.False(t, operators.Subtract.Supports(5, 5), "zero results are not allowed")

	assert.True(t, operators.Multiply.Supports(7, 7))
	assert.False(t, operators.Multiply.Supports(3, 7))

	assert.True(t, operators.Divide.Supports(6, 3))
	assert.True(t, operators.Divide.Supports(3, 3))
	assert.False(t, operators.Divide.Supports(7, 2), "division must be exact")
	assert.False(t, operators.Divide.Supports(7, 0))

	assert.False(t, operators.None.Supports(1, 1))
}

func TestSupports_Overflow(t *testing.T) {
	assert.False(t, operators.Add.Supports(math.MaxInt, 1))
	assert.True(t, operators.Add.Supports(math.MaxInt-1, 1))
	assert.False(t, operators.Multiply.Supports(math.MaxInt/2+1, 2))
	assert.True(t, operators.Multiply.Supports(math.MaxInt/2, 2))
	assert.False(t, operators.Divide.Supports(math.MinInt, -1))
}

func TestApply(t *testing.T) {
	assert.Equal(t, 6, operators.Add.Apply(4, 2))
	assert.Equal(t, 2, operators.Subtract.Apply(4, 2))
	assert.Equal(t, 8, operators.Multiply.Apply(4, 2))
	assert.Equal(t, 2, operators.Divide.Apply(4, 2))
}

func TestApply_UnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, operators.ErrUnsupported))
	}()
	operators.Divide.Apply(7, 2)
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, 20, operators.Add.Difficulty(4, 2))
	assert.Equal(t, 50, operators.Add.Difficulty(5, 5))
	assert.Equal(t, 200, operators.Subtract.Difficulty(4, 2))
	assert.Equal(t, (20+10)*30, operators.Multiply.Difficulty(4, 2))
	assert.Equal(t, 6000, operators.Divide.Difficulty(6, 3))
	assert.Equal(t, 1, operators.Divide.Difficulty(9, 9))
	// 100 ÷ 4 = 25: min(4+20, 4+2·500, 20+2·500) · 100
	assert.Equal(t, 2400, operators.Divide.Difficulty(100, 4))
}

func TestNamesAndParse(t *testing.T) {
	for _, k := range operators.CountdownRules {
		got, err := operators.Parse(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k, got)

		got, err = operators.Parse(k.ID())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for alias, want := range map[string]operators.Kind{"-": operators.Subtract, "*": operators.Multiply, "x": operators.Multiply, "/": operators.Divide} {
		got, err := operators.Parse(alias)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := operators.Parse("^")
	require.ErrorIs(t, err, operators.ErrUnknownOperator)

	_, err = operators.Table{operators.Add}.Parse("×")
	require.ErrorIs(t, err, operators.ErrUnknownOperator)
}

func TestChain(t *testing.T) {
	assert.Equal(t, operators.ChainAddition, operators.Add.Chain())
	assert.Equal(t, operators.ChainAddition, operators.Subtract.Chain())
	assert.Equal(t, operators.ChainMultiplication, operators.Multiply.Chain())
	assert.Equal(t, operators.ChainMultiplication, operators.Divide.Chain())
	assert.Equal(t, operators.ChainNone, operators.None.Chain())
}

func TestAllowsCanonicalSources(t *testing.T) {
	in := operators.Input
	from := func(v int, op operators.Kind, b int) operators.Origin {
		return operators.Origin{Value: v, Op: op, B: b}
	}

	cases := []struct {
		name string
		op   operators.Kind
		a, b operators.Origin
		want bool
	}{
		{"add inputs", operators.Add, in(4), in(2), true},
		{"add right-nested sum", operators.Add, in(4), from(5, operators.Add, 2), false},
		{"add right-nested difference", operators.Add, in(4), from(1, operators.Subtract, 2), false},
		{"add after subtract", operators.Add, from(3, operators.Subtract, 2), in(1), false},
		{"add chain non-increasing", operators.Add, from(7, operators.Add, 3), in(2), true},
		{"add chain equal", operators.Add, from(7, operators.Add, 3), in(3), true},
		{"add chain increasing", operators.Add, from(7, operators.Add, 3), in(4), false},
		{"add product operand", operators.Add, in(1), from(6, operators.Multiply, 2), true},

		{"sub inputs", operators.Subtract, in(9), in(2), true},
		{"sub right-nested sum", operators.Subtract, in(9), from(5, operators.Add, 2), false},
		{"sub chain non-increasing", operators.Subtract, from(6, operators.Subtract, 3), in(2), true},
		{"sub chain increasing", operators.Subtract, from(6, operators.Subtract, 3), in(4), false},
		{"sub after add", operators.Subtract, from(9, operators.Add, 4), in(7), true},

		{"mul inputs", operators.Multiply, in(4), in(2), true},
		{"mul right-nested product", operators.Multiply, in(4), from(6, operators.Multiply, 2), false},
		{"mul right-nested quotient", operators.Multiply, in(4), from(3, operators.Divide, 2), false},
		{"mul after divide", operators.Multiply, from(3, operators.Divide, 2), in(5), false},
		{"mul chain non-increasing", operators.Multiply, from(12, operators.Multiply, 3), in(2), true},
		{"mul chain increasing", operators.Multiply, from(12, operators.Multiply, 3), in(5), false},
		{"mul sum operand", operators.Multiply, from(7, operators.Add, 3), in(5), true},

		{"div inputs", operators.Divide, in(6), in(3), true},
		{"div right-nested product", operators.Divide, in(24), from(6, operators.Multiply, 2), false},
		{"div right-nested quotient", operators.Divide, in(24), from(3, operators.Divide, 2), false},
		{"div after divide", operators.Divide, from(12, operators.Divide, 2), in(3), true},
		{"div sum divisor", operators.Divide, in(24), from(6, operators.Add, 2), true},

		{"none never canonical", operators.None, in(1), in(1), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.op.AllowsCanonicalSources(c.a, c.b), c.name)
	}
}

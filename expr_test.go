package symexpr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symexpr"
)

var (
	x = symexpr.Var("x")
	y = symexpr.Var("y")
	z = symexpr.Var("z")
)

// ============================================================
// Number and Variable
// ============================================================

func TestNumber_String(t *testing.T) {
	assert.Equal(t, "42", symexpr.N(42).String())
	assert.Equal(t, "2.5", symexpr.N(2.5).String())
	assert.Equal(t, "-3", symexpr.N(-3).String())
	assert.Equal(t, "1e+21", symexpr.N(1e21).String())
}

func TestVariable_Evaluate_Bound(t *testing.T) {
	v, err := x.Evaluate(symexpr.Bindings{"x": 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestVariable_Evaluate_Unbound(t *testing.T) {
	_, err := y.Evaluate(symexpr.Bindings{"x": 4})
	var ue *symexpr.UnboundVariableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "y", ue.Name)
	assert.Equal(t, symexpr.TypeUnboundVariable, ue.Type())
}

func TestNumberOnly_EvaluatesLikeArithmetic(t *testing.T) {
	cases := []struct {
		e    symexpr.Expr
		want float64
	}{
		{symexpr.Add(symexpr.N(2), symexpr.Mul(symexpr.N(3), symexpr.N(4))), 14},
		{symexpr.Subtract(symexpr.N(10), symexpr.Div(symexpr.N(9), symexpr.N(3))), 7},
		{symexpr.Pow(symexpr.N(2), symexpr.N(10)), 1024},
		{symexpr.Neg(symexpr.N(5)), -5},
		{symexpr.Sqrt(symexpr.N(16)), 4},
		{symexpr.Mul(symexpr.Add(symexpr.N(1), symexpr.N(2)), symexpr.N(3)), 9},
	}
	for _, c := range cases {
		t.Run(c.e.String(), func(t *testing.T) {
			got, err := c.e.Evaluate(symexpr.Bindings{})
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestApply_Evaluate_KnownFunctions(t *testing.T) {
	b := symexpr.Bindings{"x": 0.5}
	for _, c := range []struct {
		e    symexpr.Expr
		want float64
	}{
		{symexpr.Sin(x), 0.479425538604203},
		{symexpr.Cos(x), 0.8775825618903728},
		{symexpr.Tan(x), 0.5463024898437905},
		{symexpr.Log(x), -0.6931471805599453},
		{symexpr.Ln(x), -0.6931471805599453},
		{symexpr.Sqrt(x), 0.7071067811865476},
	} {
		got, err := c.e.Evaluate(b)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-12, c.e.String())
	}
}

// ============================================================
// Rendering
// ============================================================

func TestString_Parenthesization(t *testing.T) {
	cases := []struct {
		e    symexpr.Expr
		want string
	}{
		{symexpr.Add(x, symexpr.N(3)), "x + 3"},
		{symexpr.Mul(symexpr.Add(x, symexpr.N(1)), y), "(x + 1) * y"},
		{symexpr.Subtract(x, symexpr.Add(y, z)), "x - (y + z)"},
		{symexpr.Subtract(x, symexpr.Subtract(y, z)), "x - (y - z)"},
		{symexpr.Subtract(symexpr.Subtract(x, y), z), "x - y - z"},
		{symexpr.Div(x, symexpr.Mul(y, z)), "x / (y * z)"},
		{symexpr.Mul(symexpr.Div(x, y), z), "x / y * z"},
		{symexpr.Pow(symexpr.Pow(x, symexpr.N(2)), symexpr.N(3)), "(x^2)^3"},
		{symexpr.Pow(x, symexpr.Pow(y, symexpr.N(2))), "x^y^2"},
		{symexpr.Neg(symexpr.Add(x, symexpr.N(1))), "-(x + 1)"},
		{symexpr.Neg(symexpr.Pow(x, symexpr.N(2))), "-x^2"},
		{symexpr.Pow(symexpr.Neg(x), symexpr.N(2)), "(-x)^2"},
		{symexpr.Pow(symexpr.N(-2), symexpr.N(2)), "(-2)^2"},
		{symexpr.Pow(x, symexpr.N(-1)), "x^-1"},
		{symexpr.Mul(symexpr.N(2), symexpr.Neg(x)), "2 * -x"},
		{symexpr.Sin(symexpr.Add(x, symexpr.N(1))), "sin(x + 1)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.e.String())
	}
}

func TestLaTeX(t *testing.T) {
	cases := []struct {
		e    symexpr.Expr
		want string
	}{
		{symexpr.Div(x, symexpr.Add(y, symexpr.N(1))), `\frac{x}{y + 1}`},
		{symexpr.Mul(symexpr.N(2), x), `2 \cdot x`},
		{symexpr.Mul(symexpr.Add(x, symexpr.N(1)), y), `\left(x + 1\right) \cdot y`},
		{symexpr.Pow(x, symexpr.N(2)), `x^{2}`},
		{symexpr.Pow(symexpr.Add(x, y), symexpr.N(2)), `\left(x + y\right)^{2}`},
		{symexpr.Sqrt(x), `\sqrt{x}`},
		{symexpr.Sin(x), `\sin\left(x\right)`},
		{symexpr.Neg(symexpr.Subtract(x, y)), `-\left(x - y\right)`},
		{symexpr.Call(symexpr.Fn("sinh"), x), `\operatorname{sinh}\left(x\right)`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.e.LaTeX())
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "Sum(Variable(x), Number(3))", symexpr.Add(x, symexpr.N(3)).GoString())
	assert.Equal(t, "Apply(Function(sin), Variable(x))", symexpr.Sin(x).GoString())
	assert.Equal(t,
		"Quotient(Negative(Variable(x)), Power(Variable(y), Number(2)))",
		symexpr.Div(symexpr.Neg(x), symexpr.Pow(y, symexpr.N(2))).GoString())
}

// ============================================================
// Substitution and structure
// ============================================================

func TestSubstitute_ReplacesEverywhere(t *testing.T) {
	e := symexpr.Add(symexpr.Mul(x, y), symexpr.Sin(symexpr.Div(x, symexpr.N(2))))
	got := e.Substitute("x", symexpr.N(4))
	assert.False(t, symexpr.Contains(got, "x"))
	assert.Equal(t, "4 * y + sin(4 / 2)", got.String())
}

func TestSubstitute_Power_BaseAndExponent(t *testing.T) {
	e := symexpr.Pow(x, x)
	got := e.Substitute("x", symexpr.N(2))
	assert.True(t, got.Equal(symexpr.Pow(symexpr.N(2), symexpr.N(2))))
	v, err := got.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestSubstitute_AbsentVariable(t *testing.T) {
	e := symexpr.Add(symexpr.Mul(x, symexpr.Sin(y)), symexpr.Div(symexpr.N(3), x))
	got := e.Substitute("z", symexpr.Pow(x, symexpr.N(2)))
	assert.True(t, got.Equal(e))
	for _, b := range []symexpr.Bindings{
		{"x": 1, "y": 0},
		{"x": -2.5, "y": 1.2},
		{"x": 10, "y": -3},
	} {
		assert.Equal(t, evalAt(t, e, b), evalAt(t, got, b))
	}
}

func TestSubstitute_DoesNotMutate(t *testing.T) {
	e := symexpr.Add(x, symexpr.N(1))
	_ = e.Substitute("x", y)
	assert.Equal(t, "x + 1", e.String())
}

func TestEqual_Structural(t *testing.T) {
	assert.True(t, symexpr.Equal(symexpr.Add(x, symexpr.N(1)), symexpr.Add(symexpr.Var("x"), symexpr.N(1))))
	assert.False(t, symexpr.Equal(symexpr.Add(x, symexpr.N(1)), symexpr.Add(symexpr.N(1), x)))
	assert.False(t, symexpr.Equal(symexpr.Add(x, y), symexpr.Subtract(x, y)))
	assert.False(t, symexpr.Equal(symexpr.Sin(x), symexpr.Cos(x)))
}

func TestAddOf_MulOf(t *testing.T) {
	assert.Equal(t, "0", symexpr.AddOf().String())
	assert.Equal(t, "1", symexpr.MulOf().String())
	assert.Equal(t, "x", symexpr.AddOf(x).String())
	assert.Equal(t, "x + y + z", symexpr.AddOf(x, y, z).String())
	assert.Equal(t, "x * y * z", symexpr.MulOf(x, y, z).String())
}

func TestAccessors(t *testing.T) {
	q := symexpr.Div(x, y)
	assert.Same(t, x, q.Numerator())
	assert.Same(t, y, q.Denominator())
	p := symexpr.Pow(x, symexpr.N(3))
	assert.Equal(t, 3.0, p.Exponent().(*symexpr.Number).Value())
	a := symexpr.Sqrt(z)
	assert.Equal(t, "sqrt", a.Function().Name())
	assert.Equal(t, "z", a.Arg().(*symexpr.Variable).Name())
}

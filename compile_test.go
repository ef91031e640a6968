package symexpr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symexpr"
)

func TestCompile_AgreesWithEvaluate(t *testing.T) {
	exprs := []string{
		"x^2 + 3 * x - 1",
		"sin(x) * cos(y) / (1 + x^2)",
		"-sqrt(x * x + y * y)",
		"ln(x) - log(y) + tan(x / 4)",
		"x^y^0.5",
	}
	bindings := []symexpr.Bindings{
		{"x": 1, "y": 2},
		{"x": 0.25, "y": 9},
		{"x": 3.5, "y": 0.1},
	}
	for _, src := range exprs {
		e := symexpr.MustParse(src)
		f, err := symexpr.Compile(e)
		require.NoError(t, err, src)
		for _, b := range bindings {
			want, err := e.Evaluate(b)
			require.NoError(t, err)
			got, err := f(b)
			require.NoError(t, err)
			assert.Equal(t, want, got, src)
		}
	}
}

func TestCompile_UnknownFunction(t *testing.T) {
	_, err := symexpr.Compile(symexpr.MustParse("1 + sinh(x)"))
	var uf *symexpr.UnknownFunctionError
	assert.True(t, errors.As(err, &uf))
}

func TestCompile_RuntimeErrors(t *testing.T) {
	f, err := symexpr.Compile(symexpr.MustParse("x / y"))
	require.NoError(t, err)

	_, err = f(symexpr.Bindings{"x": 1})
	var ue *symexpr.UnboundVariableError
	assert.True(t, errors.As(err, &ue))

	_, err = f(symexpr.Bindings{"x": 1, "y": 0})
	var dz *symexpr.DivisionByZeroError
	assert.True(t, errors.As(err, &dz))

	g, err := symexpr.Compile(symexpr.MustParse("-sqrt(x)"))
	require.NoError(t, err)
	_, err = g(symexpr.Bindings{"x": -4})
	var de *symexpr.DomainError
	assert.True(t, errors.As(err, &de))
}

func TestCompile_Reusable(t *testing.T) {
	f, err := symexpr.Compile(symexpr.MustParse("2 * x + 1"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		v, err := f(symexpr.Bindings{"x": float64(i)})
		require.NoError(t, err)
		assert.Equal(t, float64(2*i+1), v)
	}
}

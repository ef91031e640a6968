package symexpr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symexpr"
)

func TestError_Messages(t *testing.T) {
	assert.Equal(t, `[UnboundVariable] variable "x" not bound`, symexpr.NewUnboundVariableError("x").Error())
	assert.Equal(t, `[UnknownFunction] unknown function "sinh"`, symexpr.NewUnknownFunctionError("sinh").Error())
	assert.Equal(t, "[SyntaxError] offset 3: boom", symexpr.NewSyntaxError(3, "boom").Error())
	assert.Equal(t, "[DomainError] sqrt is undefined at -1", symexpr.NewDomainError("sqrt", -1).Error())
	assert.Equal(t,
		"[NotImplemented] derivative of x^y not implemented: exponent is not a number",
		symexpr.NewNotImplementedError(symexpr.Pow(x, y), "exponent is not a number").Error())
}

func TestError_ImplementsInterface(t *testing.T) {
	for _, err := range []symexpr.Error{
		symexpr.NewUnboundVariableError("x"),
		symexpr.NewUnknownFunctionError("f"),
		symexpr.NewNotImplementedError(x, "r"),
		symexpr.NewDivisionByZeroError(x),
		symexpr.NewDomainError("ln", -2),
		symexpr.NewSyntaxError(0, "m"),
	} {
		assert.NotEmpty(t, err.Type())
		assert.Contains(t, err.Error(), string(err.Type()))
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	e := symexpr.Div(x, symexpr.Subtract(x, x))
	_, err := e.Evaluate(symexpr.Bindings{"x": 1})
	var dz *symexpr.DivisionByZeroError
	require.True(t, errors.As(err, &dz))
	assert.Equal(t, "x / (x - x)", dz.Expr)

	_, err = symexpr.Pow(symexpr.N(0), symexpr.N(-1)).Evaluate(nil)
	assert.True(t, errors.As(err, &dz))
}

func TestEvaluate_DomainError(t *testing.T) {
	_, err := symexpr.Sqrt(symexpr.N(-1)).Evaluate(nil)
	var de *symexpr.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "sqrt", de.Func)
	assert.Equal(t, -1.0, de.Arg)

	_, err = symexpr.Ln(x).Evaluate(symexpr.Bindings{"x": -3})
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "ln", de.Func)

	_, err = symexpr.Pow(symexpr.N(-8), symexpr.N(1.0/3)).Evaluate(nil)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "^", de.Func)
}

func TestEvaluate_InfinityIsNotAnError(t *testing.T) {
	v, err := symexpr.Ln(symexpr.N(0)).Evaluate(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestEvaluate_NaNInputPropagates(t *testing.T) {
	v, err := symexpr.Sqrt(x).Evaluate(symexpr.Bindings{"x": math.NaN()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEvaluate_UnknownFunction(t *testing.T) {
	_, err := symexpr.Call(symexpr.Fn("sinh"), x).Evaluate(symexpr.Bindings{"x": 1})
	var uf *symexpr.UnknownFunctionError
	require.True(t, errors.As(err, &uf))
	assert.Equal(t, "sinh", uf.Name)
}

func TestEvaluate_UnknownFunctionReportedBeforeArgument(t *testing.T) {
	_, err := symexpr.Call(symexpr.Fn("sinh"), x).Evaluate(nil)
	var uf *symexpr.UnknownFunctionError
	assert.True(t, errors.As(err, &uf))
}

func TestMultiError(t *testing.T) {
	me := &symexpr.MultiError{Errors: []error{
		symexpr.NewDomainError("sqrt", -1),
		symexpr.NewUnboundVariableError("q"),
	}}
	assert.Equal(t, symexpr.TypeDomain, me.Type())
	assert.Contains(t, me.Error(), "2 error(s) occurred:")
	assert.Contains(t, me.Error(), `- [UnboundVariable] variable "q" not bound`)

	var ue *symexpr.UnboundVariableError
	assert.True(t, errors.As(me, &ue))
	assert.Equal(t, symexpr.ErrorType("MultiError"), (&symexpr.MultiError{}).Type())
}

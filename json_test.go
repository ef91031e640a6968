package symexpr_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symexpr"
)

func TestToJSON_Shape(t *testing.T) {
	s, err := symexpr.ToJSON(symexpr.Add(x, symexpr.N(3)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"sum","left":{"type":"var","name":"x"},"right":{"type":"num","value":3}}`, s)

	s, err = symexpr.ToJSON(symexpr.Div(symexpr.Sin(x), symexpr.Pow(y, symexpr.Neg(symexpr.N(2)))))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "quot",
		"numerator": {"type": "apply", "func": "sin", "arg": {"type": "var", "name": "x"}},
		"denominator": {"type": "pow", "base": {"type": "var", "name": "y"},
			"exp": {"type": "neg", "expr": {"type": "num", "value": 2}}}
	}`, s)
}

func TestJSON_RoundTrip(t *testing.T) {
	exprs := []symexpr.Expr{
		x,
		symexpr.N(-0.5),
		symexpr.Subtract(symexpr.Mul(x, y), symexpr.Div(z, symexpr.N(7))),
		symexpr.Pow(symexpr.Add(x, symexpr.N(1)), symexpr.Sqrt(y)),
		symexpr.Neg(symexpr.Call(symexpr.Fn("custom"), symexpr.Ln(x))),
	}
	for _, e := range exprs {
		s, err := symexpr.ToJSON(e)
		require.NoError(t, err)
		back, err := symexpr.ParseJSON([]byte(s))
		require.NoError(t, err, s)
		assert.True(t, back.Equal(e), "%s decoded as %#v", s, back)
	}
}

func TestJSON_NonFiniteNumbers(t *testing.T) {
	s, err := symexpr.ToJSON(symexpr.N(math.Inf(1)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"num","value":"+Inf"}`, s)

	back, err := symexpr.ParseJSON([]byte(s))
	require.NoError(t, err)
	assert.True(t, math.IsInf(back.(*symexpr.Number).Value(), 1))

	s, err = symexpr.ToJSON(symexpr.N(math.NaN()))
	require.NoError(t, err)
	back, err = symexpr.ParseJSON([]byte(s))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back.(*symexpr.Number).Value()))
}

func TestFromJSON_NumericString(t *testing.T) {
	e, err := symexpr.FromJSON(map[string]interface{}{"type": "num", "value": "2.5"})
	require.NoError(t, err)
	assert.True(t, e.Equal(symexpr.N(2.5)))
}

func TestFromJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"not an object", `[1, 2]`, "invalid JSON"},
		{"missing type", `{"name": "x"}`, "missing 'type'"},
		{"empty type", `{"type": ""}`, "non-empty string"},
		{"unknown type", `{"type": "matrix"}`, "unknown expression type: matrix"},
		{"missing name", `{"type": "var"}`, `var: missing "name"`},
		{"bad value", `{"type": "num", "value": true}`, "must be a number"},
		{"bad numeric string", `{"type": "num", "value": "abc"}`, "invalid num value"},
		{"child not object", `{"type": "neg", "expr": 3}`, `neg: "expr" must be an object`},
		{"nested", `{"type": "sum", "left": {"type": "var", "name": "x"}, "right": {"type": "bogus"}}`, "sum: right: "},
		{"deep", `{"type": "apply", "func": "sin", "arg": {"type": "pow", "base": {"type": "num", "value": 1}}}`, `apply: arg: [DecodeError] pow: missing "exp"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := symexpr.ParseJSON([]byte(c.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
			var de *symexpr.DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestFromJSON_NilMap(t *testing.T) {
	_, err := symexpr.FromJSON(nil)
	var de *symexpr.DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "var", symexpr.Kind(x))
	assert.Equal(t, "num", symexpr.Kind(symexpr.N(1)))
	assert.Equal(t, "neg", symexpr.Kind(symexpr.Neg(x)))
	assert.Equal(t, "sum", symexpr.Kind(symexpr.Add(x, y)))
	assert.Equal(t, "diff", symexpr.Kind(symexpr.Subtract(x, y)))
	assert.Equal(t, "mul", symexpr.Kind(symexpr.Mul(x, y)))
	assert.Equal(t, "quot", symexpr.Kind(symexpr.Div(x, y)))
	assert.Equal(t, "pow", symexpr.Kind(symexpr.Pow(x, y)))
	assert.Equal(t, "apply", symexpr.Kind(symexpr.Sin(x)))
}

func TestToJSON_IsValidJSON(t *testing.T) {
	s, err := symexpr.ToJSON(symexpr.MustParse("x^2 + sin(y) / 3"))
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(s)))
}

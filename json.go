package symexpr

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON encodes e as a tree of node objects, each carrying a "type" tag.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// jsonNumber returns v as a JSON-encodable value. NaN and the infinities have
// no JSON number form and are written as strings FromJSON accepts.
func jsonNumber(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNumber(v)
	}
	return v
}

// Kind returns the JSON type tag of e's outermost node, e.g. "sum" or "apply".
func Kind(e Expr) string { return e.exprType() }

// ParseJSON decodes the text produced by ToJSON.
func ParseJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, newDecodeError("invalid JSON: %v", err)
	}
	return FromJSON(m)
}

// FromJSON rebuilds an expression from a decoded node object. Errors in nested
// nodes are wrapped with the path to the failing node.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, newDecodeError("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, newDecodeError("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, newDecodeError("field 'type' must be a non-empty string")
	}

	subExpr := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, newDecodeError("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, newDecodeError("%s: %q must be an object", typ, field)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", newDecodeError("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", newDecodeError("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	subPair := func(lf, rf string) (Expr, Expr, error) {
		l, err := subExpr(lf)
		if err != nil {
			return nil, nil, err
		}
		r, err := subExpr(rf)
		if err != nil {
			return nil, nil, err
		}
		return l, r, nil
	}

	switch typ {
	case "var":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		return Var(name), nil

	case "num":
		valAny, ok := data["value"]
		if !ok {
			return nil, newDecodeError("num: missing 'value'")
		}
		switch val := valAny.(type) {
		case float64:
			return N(val), nil
		case string:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, newDecodeError("invalid num value: %q", val)
			}
			return N(f), nil
		}
		return nil, newDecodeError("num: 'value' must be a number or numeric string")

	case "neg":
		e, err := subExpr("expr")
		if err != nil {
			return nil, err
		}
		return Neg(e), nil

	case "sum":
		l, r, err := subPair("left", "right")
		if err != nil {
			return nil, err
		}
		return Add(l, r), nil

	case "diff":
		l, r, err := subPair("left", "right")
		if err != nil {
			return nil, err
		}
		return Subtract(l, r), nil

	case "mul":
		l, r, err := subPair("left", "right")
		if err != nil {
			return nil, err
		}
		return Mul(l, r), nil

	case "quot":
		n, d, err := subPair("numerator", "denominator")
		if err != nil {
			return nil, err
		}
		return Div(n, d), nil

	case "pow":
		b, x, err := subPair("base", "exp")
		if err != nil {
			return nil, err
		}
		return Pow(b, x), nil

	case "apply":
		name, err := subString("func")
		if err != nil {
			return nil, err
		}
		arg, err := subExpr("arg")
		if err != nil {
			return nil, err
		}
		return Call(Fn(name), arg), nil
	}
	return nil, newDecodeError("unknown expression type: %s", typ)
}

package symexpr

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// maxDiffOrder bounds the n accepted by the diffn tool.
const maxDiffOrder = 32

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result    interface{} `json:"result,omitempty"`
	Kind      string      `json:"kind,omitempty"`
	LaTeX     string      `json:"latex,omitempty"`
	String    string      `json:"string,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorType ErrorType   `json:"error_type,omitempty"`
}

func errorResponse(err error) ToolResponse {
	resp := ToolResponse{Error: err.Error()}
	var se Error
	if errors.As(err, &se) {
		resp.ErrorType = se.Type()
	}
	return resp
}

// HandleToolCall runs one named operation. Expression parameters may be a
// JSON node object (see FromJSON) or a string in the text syntax (see Parse).
// Failures are reported in ToolResponse.Error, never by panicking.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		switch val := v.(type) {
		case map[string]interface{}:
			return FromJSON(val)
		case string:
			return Parse(val)
		}
		return nil, fmt.Errorf("param %s must be an expression object or string", key)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getStrings := func(key string) ([]string, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]string, len(raw))
		for i, r := range raw {
			s, ok := r.(string)
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be string", key, i)
			}
			result[i] = s
		}
		return result, nil
	}
	getBindings := func(key string) (Bindings, error) {
		v, ok := req.Params[key]
		if !ok {
			return Bindings{}, nil
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be an object", key)
		}
		b := make(Bindings, len(raw))
		for name, val := range raw {
			f, ok := val.(float64)
			if !ok {
				return nil, fmt.Errorf("param %s.%s must be a number", key, name)
			}
			b[name] = f
		}
		return b, nil
	}
	getBool := func(key string) bool {
		b, _ := req.Params[key].(bool)
		return b
	}
	respond := func(e Expr) ToolResponse {
		if getBool("simplify") {
			e = Simplify(e)
		}
		return ToolResponse{Result: e.toJSON(), Kind: Kind(e), LaTeX: LaTeX(e), String: String(e)}
	}
	respondList := func(es []Expr) ToolResponse {
		if getBool("simplify") {
			for i := range es {
				es[i] = Simplify(es[i])
			}
		}
		strs := make([]string, len(es))
		latexStrs := make([]string, len(es))
		for i, e := range es {
			strs[i] = String(e)
			latexStrs[i] = LaTeX(e)
		}
		return ToolResponse{
			Result: strs,
			String: "[" + strings.Join(strs, ", ") + "]",
			LaTeX:  "[" + strings.Join(latexStrs, ", ") + "]",
		}
	}
	respondNames := func(set map[string]struct{}) ToolResponse {
		names := SortedNames(set)
		return ToolResponse{Result: names, String: strings.Join(names, ", ")}
	}

	switch req.Tool {
	case "parse", "simplify", "expand", "to_latex", "to_string", "variables", "functions":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		switch req.Tool {
		case "simplify":
			return respond(Simplify(e))
		case "expand":
			return respond(Expand(e))
		case "to_latex":
			return ToolResponse{Result: LaTeX(e), LaTeX: LaTeX(e)}
		case "to_string":
			return ToolResponse{Result: e.GoString(), String: String(e)}
		case "variables":
			return respondNames(Variables(e))
		case "functions":
			return respondNames(Functions(e))
		}
		return respond(e)

	case "evaluate":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		b, err := getBindings("bindings")
		if err != nil {
			return errorResponse(err)
		}
		v, err := Evaluate(e, b)
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: jsonNumber(v), String: formatNumber(v)}

	case "derivative":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		v, err := getString("var")
		if err != nil {
			return errorResponse(err)
		}
		d, err := Diff(e, v)
		if err != nil {
			return errorResponse(err)
		}
		return respond(d)

	case "diffn":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		v, err := getString("var")
		if err != nil {
			return errorResponse(err)
		}
		nF, ok := req.Params["n"].(float64)
		if !ok {
			return ToolResponse{Error: "param n must be a number"}
		}
		if nF != math.Trunc(nF) {
			return ToolResponse{Error: fmt.Sprintf("param n must be an integer, got %v", nF)}
		}
		if nF < 0 {
			return ToolResponse{Error: "param n must be >= 0"}
		}
		if nF > maxDiffOrder {
			return ToolResponse{Error: fmt.Sprintf("param n must be <= %d", maxDiffOrder)}
		}
		d, err := DiffN(e, v, int(nF))
		if err != nil {
			return errorResponse(err)
		}
		return respond(d)

	case "gradient":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		vars, err := getStrings("vars")
		if err != nil {
			return errorResponse(err)
		}
		grad, err := Gradient(e, vars)
		if err != nil {
			return errorResponse(err)
		}
		return respondList(grad)

	case "substitute":
		e, err := getExpr("expr")
		if err != nil {
			return errorResponse(err)
		}
		v, err := getString("var")
		if err != nil {
			return errorResponse(err)
		}
		val, err := getExpr("value")
		if err != nil {
			return errorResponse(err)
		}
		return respond(Sub(e, v, val))

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ToolSpec returns the JSON schema of every tool HandleToolCall accepts.
func ToolSpec() string {
	expr := map[string]string{"expr": "object|string"}
	exprSimplify := map[string]string{"expr": "object|string", "simplify": "boolean"}
	exprVar := map[string]string{"expr": "object|string", "var": "string", "simplify": "boolean"}
	tools := []map[string]interface{}{
		ts("parse", "Parse infix text into an expression tree", []string{"expr"}, exprSimplify),
		ts("evaluate", "Evaluate numerically. bindings maps variable names to numbers", []string{"expr"}, map[string]string{"expr": "object|string", "bindings": "object"}),
		ts("derivative", "First derivative d/dvar", []string{"expr", "var"}, exprVar),
		ts("diffn", "nth derivative. Requires n (integer, 0 to 32)", []string{"expr", "var", "n"}, map[string]string{"expr": "object|string", "var": "string", "n": "integer", "simplify": "boolean"}),
		ts("gradient", "Partial derivatives for each of vars (string[])", []string{"expr", "vars"}, map[string]string{"expr": "object|string", "vars": "array", "simplify": "boolean"}),
		ts("expand", "Distribute products over sums", []string{"expr"}, exprSimplify),
		ts("simplify", "Fold constants and drop identities", []string{"expr"}, exprSimplify),
		ts("substitute", "Replace var with value", []string{"expr", "var", "value"}, map[string]string{"expr": "object|string", "var": "string", "value": "object|string", "simplify": "boolean"}),
		ts("to_latex", "Render as LaTeX", []string{"expr"}, expr),
		ts("to_string", "Render as text and developer form", []string{"expr"}, expr),
		ts("variables", "Sorted variable names", []string{"expr"}, expr),
		ts("functions", "Sorted function names", []string{"expr"}, expr),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

package symexpr

import (
	"math"
	"sort"
)

// Function is a named reference to a unary numeric function. It is not an
// Expr; it only appears as the callee of an Apply.
type Function struct{ name string }

// Fn returns the function called name. The name is not checked here:
// Evaluate reports unknown names with an UnknownFunctionError and Derivative
// reports names without a tabulated derivative with a NotImplementedError.
func Fn(name string) Function { return Function{name: name} }

func (f Function) Name() string     { return f.name }
func (f Function) String() string   { return f.name }
func (f Function) GoString() string { return "Function(" + f.name + ")" }

// Known reports whether f has a numeric implementation.
func (f Function) Known() bool {
	_, ok := functionTable[f.name]
	return ok
}

// Differentiable reports whether f has a tabulated derivative.
func (f Function) Differentiable() bool {
	_, ok := derivativeTable[f.name]
	return ok
}

func (f Function) latex(arg string) string {
	switch f.name {
	case "sqrt":
		return "\\sqrt{" + arg + "}"
	case "sin", "cos", "tan", "log", "ln":
		return "\\" + f.name + "\\left(" + arg + "\\right)"
	}
	return "\\operatorname{" + f.name + "}\\left(" + arg + "\\right)"
}

// derivativeAt returns f'(arg) from the derivative table.
func (f Function) derivativeAt(arg Expr) (Expr, bool) {
	tmpl, ok := derivativeTable[f.name]
	if !ok {
		return nil, false
	}
	return tmpl.Substitute(placeholderName, arg), true
}

// functionTable binds function names to their numeric implementations.
// log is the natural logarithm, like ln.
var functionTable = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
}

// placeholderName cannot be produced by Parse, so substituting it never
// captures a user variable.
const placeholderName = "$u"

var placeholder = Var(placeholderName)

// derivativeTable holds d/du f(u) for each differentiable function, written
// in terms of placeholder. It is read-only after package initialization.
// tan and log extend the classic sin, cos, ln, sqrt set.
var derivativeTable = map[string]Expr{
	"sin":  Cos(placeholder),
	"cos":  Neg(Sin(placeholder)),
	"tan":  Div(N(1), Pow(Cos(placeholder), N(2))),
	"ln":   Div(N(1), placeholder),
	"log":  Div(N(1), placeholder),
	"sqrt": Div(N(1), Mul(N(2), Sqrt(placeholder))),
}

// FunctionNames returns the names of all functions with a numeric
// implementation, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functionTable))
	for name := range functionTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

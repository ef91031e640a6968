// Package symexpr provides symbolic algebraic expressions for Go.
//
// Expressions are immutable trees built from nine node kinds: variables,
// numbers, negation, sums, differences, products, quotients, powers and
// applications of named functions. Every node can be:
//   - evaluated against variable bindings
//   - differentiated with respect to a variable
//   - substituted (a variable replaced by another expression)
//   - expanded one level of distributivity
//   - rendered as text, LaTeX, a Go-style debug form, or JSON
//
// Operations that rewrite a tree return a new tree and never mutate their
// receiver.
package symexpr

import (
	"math"
	"strconv"
)

// ============================================================
// Core Interface
// ============================================================

// Expr is a node of an expression tree. The set of implementations is closed:
// *Variable, *Number, *Negative, *Sum, *Difference, *Product, *Quotient,
// *Power and *Apply.
type Expr interface {
	Evaluate(b Bindings) (float64, error)
	Derivative(varName string) (Expr, error)
	Substitute(varName string, value Expr) Expr
	Expand() Expr
	String() string
	LaTeX() string
	GoString() string
	Equal(other Expr) bool
	precedence() precedence
	exprType() string
	toJSON() map[string]interface{}
}

// Bindings maps variable names to their values at evaluation time.
type Bindings map[string]float64

// precedence is the binding strength of a node's outermost operator. Rendering
// parenthesizes a child whose precedence is below what its parent requires.
type precedence int

const (
	precSum precedence = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func wrap(e Expr, min precedence) string {
	if e.precedence() < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func wrapLaTeX(e Expr, min precedence) string {
	if e.precedence() < min {
		return "\\left(" + e.LaTeX() + "\\right)"
	}
	return e.LaTeX()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ============================================================
// Variable
// ============================================================

type Variable struct{ name string }

// Var returns the variable called name.
func Var(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Name() string           { return v.name }
func (v *Variable) Expand() Expr           { return v }
func (v *Variable) String() string         { return v.name }
func (v *Variable) LaTeX() string          { return v.name }
func (v *Variable) GoString() string       { return "Variable(" + v.name + ")" }
func (v *Variable) precedence() precedence { return precAtom }
func (v *Variable) exprType() string       { return "var" }
func (v *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && o.name == v.name
}
func (v *Variable) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "var", "name": v.name}
}

func (v *Variable) Evaluate(b Bindings) (float64, error) {
	val, ok := b[v.name]
	if !ok {
		return 0, NewUnboundVariableError(v.name)
	}
	return val, nil
}

func (v *Variable) Derivative(varName string) (Expr, error) {
	if v.name == varName {
		return N(1), nil
	}
	return N(0), nil
}

func (v *Variable) Substitute(varName string, value Expr) Expr {
	if v.name == varName {
		return value
	}
	return v
}

// ============================================================
// Number
// ============================================================

type Number struct{ value float64 }

// N returns a numeric constant.
func N(value float64) *Number { return &Number{value: value} }

func (n *Number) Value() float64                     { return n.value }
func (n *Number) Evaluate(Bindings) (float64, error) { return n.value, nil }
func (n *Number) Derivative(string) (Expr, error)    { return N(0), nil }
func (n *Number) Substitute(string, Expr) Expr       { return n }
func (n *Number) Expand() Expr                       { return n }
func (n *Number) String() string                     { return formatNumber(n.value) }
func (n *Number) LaTeX() string                      { return formatNumber(n.value) }
func (n *Number) GoString() string                   { return "Number(" + formatNumber(n.value) + ")" }
func (n *Number) exprType() string                   { return "num" }
func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && o.value == n.value
}

func (n *Number) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": jsonNumber(n.value)}
}

// A negative literal renders with a leading minus, so it binds like a unary
// negation.
func (n *Number) precedence() precedence {
	if math.Signbit(n.value) {
		return precUnary
	}
	return precAtom
}

// ============================================================
// Negative
// ============================================================

type Negative struct{ expr Expr }

// Neg returns -e.
func Neg(e Expr) *Negative { return &Negative{expr: e} }

func (n *Negative) Operand() Expr          { return n.expr }
func (n *Negative) Expand() Expr           { return Neg(n.expr.Expand()) }
func (n *Negative) String() string         { return "-" + wrap(n.expr, precUnary) }
func (n *Negative) LaTeX() string          { return "-" + wrapLaTeX(n.expr, precUnary) }
func (n *Negative) GoString() string       { return "Negative(" + n.expr.GoString() + ")" }
func (n *Negative) precedence() precedence { return precUnary }
func (n *Negative) exprType() string       { return "neg" }
func (n *Negative) Equal(other Expr) bool {
	o, ok := other.(*Negative)
	return ok && n.expr.Equal(o.expr)
}
func (n *Negative) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "neg", "expr": n.expr.toJSON()}
}

func (n *Negative) Evaluate(b Bindings) (float64, error) {
	v, err := n.expr.Evaluate(b)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *Negative) Derivative(varName string) (Expr, error) {
	d, err := n.expr.Derivative(varName)
	if err != nil {
		return nil, err
	}
	return Neg(d), nil
}

func (n *Negative) Substitute(varName string, value Expr) Expr {
	return Neg(n.expr.Substitute(varName, value))
}

// ============================================================
// Sum
// ============================================================

type Sum struct{ left, right Expr }

// Add returns left + right.
func Add(left, right Expr) *Sum { return &Sum{left: left, right: right} }

func (s *Sum) Left() Expr             { return s.left }
func (s *Sum) Right() Expr            { return s.right }
func (s *Sum) Expand() Expr           { return Add(s.left.Expand(), s.right.Expand()) }
func (s *Sum) precedence() precedence { return precSum }
func (s *Sum) exprType() string       { return "sum" }
func (s *Sum) String() string         { return wrap(s.left, precSum) + " + " + wrap(s.right, precSum) }
func (s *Sum) LaTeX() string {
	return wrapLaTeX(s.left, precSum) + " + " + wrapLaTeX(s.right, precSum)
}
func (s *Sum) GoString() string {
	return "Sum(" + s.left.GoString() + ", " + s.right.GoString() + ")"
}
func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	return ok && s.left.Equal(o.left) && s.right.Equal(o.right)
}
func (s *Sum) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "sum", "left": s.left.toJSON(), "right": s.right.toJSON()}
}

func (s *Sum) Evaluate(b Bindings) (float64, error) {
	l, r, err := evalPair(s.left, s.right, b)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}

func (s *Sum) Derivative(varName string) (Expr, error) {
	dl, dr, err := derivePair(s.left, s.right, varName)
	if err != nil {
		return nil, err
	}
	return Add(dl, dr), nil
}

func (s *Sum) Substitute(varName string, value Expr) Expr {
	return Add(s.left.Substitute(varName, value), s.right.Substitute(varName, value))
}

// ============================================================
// Difference
// ============================================================

type Difference struct{ left, right Expr }

// Subtract returns left - right.
func Subtract(left, right Expr) *Difference { return &Difference{left: left, right: right} }

func (d *Difference) Left() Expr             { return d.left }
func (d *Difference) Right() Expr            { return d.right }
func (d *Difference) Expand() Expr           { return Subtract(d.left.Expand(), d.right.Expand()) }
func (d *Difference) precedence() precedence { return precSum }
func (d *Difference) exprType() string       { return "diff" }
func (d *Difference) String() string {
	return wrap(d.left, precSum) + " - " + wrap(d.right, precProduct)
}
func (d *Difference) LaTeX() string {
	return wrapLaTeX(d.left, precSum) + " - " + wrapLaTeX(d.right, precProduct)
}
func (d *Difference) GoString() string {
	return "Difference(" + d.left.GoString() + ", " + d.right.GoString() + ")"
}
func (d *Difference) Equal(other Expr) bool {
	o, ok := other.(*Difference)
	return ok && d.left.Equal(o.left) && d.right.Equal(o.right)
}
func (d *Difference) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "diff", "left": d.left.toJSON(), "right": d.right.toJSON()}
}

func (d *Difference) Evaluate(b Bindings) (float64, error) {
	l, r, err := evalPair(d.left, d.right, b)
	if err != nil {
		return 0, err
	}
	return l - r, nil
}

func (d *Difference) Derivative(varName string) (Expr, error) {
	dl, dr, err := derivePair(d.left, d.right, varName)
	if err != nil {
		return nil, err
	}
	return Subtract(dl, dr), nil
}

func (d *Difference) Substitute(varName string, value Expr) Expr {
	return Subtract(d.left.Substitute(varName, value), d.right.Substitute(varName, value))
}

// ============================================================
// Product
// ============================================================

type Product struct{ left, right Expr }

// Mul returns left * right.
func Mul(left, right Expr) *Product { return &Product{left: left, right: right} }

func (p *Product) Left() Expr             { return p.left }
func (p *Product) Right() Expr            { return p.right }
func (p *Product) precedence() precedence { return precProduct }
func (p *Product) exprType() string       { return "mul" }
func (p *Product) String() string {
	return wrap(p.left, precProduct) + " * " + wrap(p.right, precProduct)
}
func (p *Product) LaTeX() string {
	return wrapLaTeX(p.left, precProduct) + " \\cdot " + wrapLaTeX(p.right, precProduct)
}
func (p *Product) GoString() string {
	return "Product(" + p.left.GoString() + ", " + p.right.GoString() + ")"
}
func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	return ok && p.left.Equal(o.left) && p.right.Equal(o.right)
}
func (p *Product) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "mul", "left": p.left.toJSON(), "right": p.right.toJSON()}
}

func (p *Product) Evaluate(b Bindings) (float64, error) {
	l, r, err := evalPair(p.left, p.right, b)
	if err != nil {
		return 0, err
	}
	return l * r, nil
}

// Derivative skips the product rule when one factor is a number or a variable
// other than varName, keeping that factor as a plain coefficient. The left
// operand is checked before the right.
func (p *Product) Derivative(varName string) (Expr, error) {
	if _, ok := p.left.(*Number); ok {
		return scaleDerivative(p.left, p.right, varName)
	}
	if _, ok := p.right.(*Number); ok {
		return scaleDerivative(p.right, p.left, varName)
	}
	if v, ok := p.left.(*Variable); ok && v.name != varName {
		return scaleDerivative(p.left, p.right, varName)
	}
	if v, ok := p.right.(*Variable); ok && v.name != varName {
		return scaleDerivative(p.right, p.left, varName)
	}
	dl, dr, err := derivePair(p.left, p.right, varName)
	if err != nil {
		return nil, err
	}
	return Add(Mul(dl, p.right), Mul(p.left, dr)), nil
}

func scaleDerivative(coeff, e Expr, varName string) (Expr, error) {
	d, err := e.Derivative(varName)
	if err != nil {
		return nil, err
	}
	return Mul(coeff, d), nil
}

func (p *Product) Substitute(varName string, value Expr) Expr {
	return Mul(p.left.Substitute(varName, value), p.right.Substitute(varName, value))
}

// Expand distributes over a sum operand, preferring the left one:
// (a + b) * c = a*c + b*c and a * (b + c) = a*b + a*c.
func (p *Product) Expand() Expr {
	left := p.left.Expand()
	right := p.right.Expand()
	if s, ok := left.(*Sum); ok {
		return Add(Mul(s.left, right).Expand(), Mul(s.right, right).Expand())
	}
	if s, ok := right.(*Sum); ok {
		return Add(Mul(left, s.left).Expand(), Mul(left, s.right).Expand())
	}
	return Mul(left, right)
}

// ============================================================
// Quotient
// ============================================================

type Quotient struct{ num, den Expr }

// Div returns numerator / denominator.
func Div(numerator, denominator Expr) *Quotient {
	return &Quotient{num: numerator, den: denominator}
}

func (q *Quotient) Numerator() Expr        { return q.num }
func (q *Quotient) Denominator() Expr      { return q.den }
func (q *Quotient) Expand() Expr           { return Div(q.num.Expand(), q.den.Expand()) }
func (q *Quotient) precedence() precedence { return precProduct }
func (q *Quotient) exprType() string       { return "quot" }
func (q *Quotient) String() string {
	return wrap(q.num, precProduct) + " / " + wrap(q.den, precUnary)
}
func (q *Quotient) LaTeX() string {
	return "\\frac{" + q.num.LaTeX() + "}{" + q.den.LaTeX() + "}"
}
func (q *Quotient) GoString() string {
	return "Quotient(" + q.num.GoString() + ", " + q.den.GoString() + ")"
}
func (q *Quotient) Equal(other Expr) bool {
	o, ok := other.(*Quotient)
	return ok && q.num.Equal(o.num) && q.den.Equal(o.den)
}
func (q *Quotient) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "quot", "numerator": q.num.toJSON(), "denominator": q.den.toJSON()}
}

func (q *Quotient) Evaluate(b Bindings) (float64, error) {
	n, d, err := evalPair(q.num, q.den, b)
	if err != nil {
		return 0, err
	}
	return divide(n, d, q)
}

// Derivative applies the quotient rule, (n'*d - n*d') / d^2, reduced to n'/d
// when the denominator is a number.
func (q *Quotient) Derivative(varName string) (Expr, error) {
	dn, err := q.num.Derivative(varName)
	if err != nil {
		return nil, err
	}
	if _, ok := q.den.(*Number); ok {
		return Div(dn, q.den), nil
	}
	dd, err := q.den.Derivative(varName)
	if err != nil {
		return nil, err
	}
	return Div(Subtract(Mul(dn, q.den), Mul(q.num, dd)), Pow(q.den, N(2))), nil
}

func (q *Quotient) Substitute(varName string, value Expr) Expr {
	return Div(q.num.Substitute(varName, value), q.den.Substitute(varName, value))
}

// ============================================================
// Power
// ============================================================

type Power struct{ base, exp Expr }

// Pow returns base^exponent.
func Pow(base, exponent Expr) *Power { return &Power{base: base, exp: exponent} }

func (p *Power) Base() Expr             { return p.base }
func (p *Power) Exponent() Expr         { return p.exp }
func (p *Power) Expand() Expr           { return Pow(p.base.Expand(), p.exp.Expand()) }
func (p *Power) precedence() precedence { return precPower }
func (p *Power) exprType() string       { return "pow" }
func (p *Power) String() string         { return wrap(p.base, precAtom) + "^" + wrap(p.exp, precUnary) }
func (p *Power) LaTeX() string          { return wrapLaTeX(p.base, precAtom) + "^{" + p.exp.LaTeX() + "}" }
func (p *Power) GoString() string {
	return "Power(" + p.base.GoString() + ", " + p.exp.GoString() + ")"
}
func (p *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
func (p *Power) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "pow", "base": p.base.toJSON(), "exp": p.exp.toJSON()}
}

func (p *Power) Evaluate(b Bindings) (float64, error) {
	base, exp, err := evalPair(p.base, p.exp, b)
	if err != nil {
		return 0, err
	}
	return power(base, exp, p)
}

// Derivative uses the power rule, which needs a numeric exponent.
func (p *Power) Derivative(varName string) (Expr, error) {
	c, ok := p.exp.(*Number)
	if !ok {
		return nil, NewNotImplementedError(p, "exponent is not a number")
	}
	db, err := p.base.Derivative(varName)
	if err != nil {
		return nil, err
	}
	rule := Mul(N(c.value), Pow(p.base, N(c.value-1)))
	return Mul(rule, db), nil
}

func (p *Power) Substitute(varName string, value Expr) Expr {
	return Pow(p.base.Substitute(varName, value), p.exp.Substitute(varName, value))
}

// ============================================================
// Apply (named function application)
// ============================================================

type Apply struct {
	fn  Function
	arg Expr
}

// Call returns fn(arg).
func Call(fn Function, arg Expr) *Apply { return &Apply{fn: fn, arg: arg} }

func Sin(arg Expr) *Apply  { return Call(Fn("sin"), arg) }
func Cos(arg Expr) *Apply  { return Call(Fn("cos"), arg) }
func Tan(arg Expr) *Apply  { return Call(Fn("tan"), arg) }
func Log(arg Expr) *Apply  { return Call(Fn("log"), arg) }
func Ln(arg Expr) *Apply   { return Call(Fn("ln"), arg) }
func Sqrt(arg Expr) *Apply { return Call(Fn("sqrt"), arg) }

func (a *Apply) Function() Function     { return a.fn }
func (a *Apply) Arg() Expr              { return a.arg }
func (a *Apply) Expand() Expr           { return Call(a.fn, a.arg.Expand()) }
func (a *Apply) precedence() precedence { return precAtom }
func (a *Apply) exprType() string       { return "apply" }
func (a *Apply) String() string         { return a.fn.name + "(" + a.arg.String() + ")" }
func (a *Apply) LaTeX() string          { return a.fn.latex(a.arg.LaTeX()) }
func (a *Apply) GoString() string {
	return "Apply(" + a.fn.GoString() + ", " + a.arg.GoString() + ")"
}
func (a *Apply) Equal(other Expr) bool {
	o, ok := other.(*Apply)
	return ok && a.fn == o.fn && a.arg.Equal(o.arg)
}
func (a *Apply) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "apply", "func": a.fn.name, "arg": a.arg.toJSON()}
}

func (a *Apply) Evaluate(b Bindings) (float64, error) {
	impl, ok := functionTable[a.fn.name]
	if !ok {
		return 0, NewUnknownFunctionError(a.fn.name)
	}
	x, err := a.arg.Evaluate(b)
	if err != nil {
		return 0, err
	}
	return applyFunc(a.fn.name, impl, x)
}

// Derivative applies the chain rule: the argument's derivative times the
// function's tabulated derivative evaluated at the argument.
func (a *Apply) Derivative(varName string) (Expr, error) {
	outer, ok := a.fn.derivativeAt(a.arg)
	if !ok {
		return nil, NewNotImplementedError(a, "no derivative for function "+strconv.Quote(a.fn.name))
	}
	inner, err := a.arg.Derivative(varName)
	if err != nil {
		return nil, err
	}
	return Mul(inner, outer), nil
}

func (a *Apply) Substitute(varName string, value Expr) Expr {
	return Call(a.fn, a.arg.Substitute(varName, value))
}

// ============================================================
// Builders and shared arithmetic
// ============================================================

// AddOf folds terms left to right into nested sums. It returns 0 for no
// terms and the term itself for one.
func AddOf(terms ...Expr) Expr {
	if len(terms) == 0 {
		return N(0)
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Add(acc, t)
	}
	return acc
}

// MulOf folds factors left to right into nested products. It returns 1 for
// no factors and the factor itself for one.
func MulOf(factors ...Expr) Expr {
	if len(factors) == 0 {
		return N(1)
	}
	acc := factors[0]
	for _, f := range factors[1:] {
		acc = Mul(acc, f)
	}
	return acc
}

func evalPair(l, r Expr, b Bindings) (float64, float64, error) {
	lv, err := l.Evaluate(b)
	if err != nil {
		return 0, 0, err
	}
	rv, err := r.Evaluate(b)
	if err != nil {
		return 0, 0, err
	}
	return lv, rv, nil
}

func derivePair(l, r Expr, varName string) (Expr, Expr, error) {
	dl, err := l.Derivative(varName)
	if err != nil {
		return nil, nil, err
	}
	dr, err := r.Derivative(varName)
	if err != nil {
		return nil, nil, err
	}
	return dl, dr, nil
}

func divide(n, d float64, e Expr) (float64, error) {
	if d == 0 {
		return 0, NewDivisionByZeroError(e)
	}
	return n / d, nil
}

func power(base, exp float64, e Expr) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, NewDivisionByZeroError(e)
	}
	v := math.Pow(base, exp)
	if math.IsNaN(v) && !math.IsNaN(base) && !math.IsNaN(exp) {
		return 0, NewDomainError("^", base)
	}
	return v, nil
}

func applyFunc(name string, impl func(float64) float64, x float64) (float64, error) {
	v := impl(x)
	if math.IsNaN(v) && !math.IsNaN(x) {
		return 0, NewDomainError(name, x)
	}
	return v, nil
}

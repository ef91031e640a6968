package symexpr

import "math"

// ============================================================
// Simplify
// ============================================================

// Simplify folds numeric subtrees and drops additive and multiplicative
// identities, bottom-up. It is cosmetic: it does not collect like terms or
// reorder operands beyond moving a numeric coefficient to the left, and it
// never folds an operation whose numeric result would be an error.
//
// Note that x*0, 0/x and x-x fold to 0, and x^0 to 1, without checking that
// x is defined: Simplify(1/x - 1/x) is 0 even though the original fails at
// x = 0.
func Simplify(e Expr) Expr {
	switch v := e.(type) {
	case *Negative:
		x := Simplify(v.expr)
		if n, ok := x.(*Number); ok {
			return N(-n.value)
		}
		if inner, ok := x.(*Negative); ok {
			return inner.expr
		}
		return Neg(x)

	case *Sum:
		l, r := Simplify(v.left), Simplify(v.right)
		if ln, rn, ok := numbers(l, r); ok {
			return N(ln + rn)
		}
		if isNum(l, 0) {
			return r
		}
		if isNum(r, 0) {
			return l
		}
		if rn, ok := r.(*Negative); ok {
			return Simplify(Subtract(l, rn.expr))
		}
		return Add(l, r)

	case *Difference:
		l, r := Simplify(v.left), Simplify(v.right)
		if ln, rn, ok := numbers(l, r); ok {
			return N(ln - rn)
		}
		if isNum(r, 0) {
			return l
		}
		if isNum(l, 0) {
			return Simplify(Neg(r))
		}
		if l.Equal(r) {
			return N(0)
		}
		return Subtract(l, r)

	case *Product:
		l, r := Simplify(v.left), Simplify(v.right)
		if ln, rn, ok := numbers(l, r); ok {
			return N(ln * rn)
		}
		if isNum(l, 0) || isNum(r, 0) {
			return N(0)
		}
		if isNum(l, 1) {
			return r
		}
		if isNum(r, 1) {
			return l
		}
		if isNum(l, -1) {
			return Simplify(Neg(r))
		}
		if isNum(r, -1) {
			return Simplify(Neg(l))
		}
		if _, ok := r.(*Number); ok {
			l, r = r, l
		}
		// c1 * (c2 * x) => (c1*c2) * x
		if c1, ok := l.(*Number); ok {
			if inner, ok := r.(*Product); ok {
				if c2, ok := inner.left.(*Number); ok {
					return Simplify(Mul(N(c1.value*c2.value), inner.right))
				}
			}
		}
		return Mul(l, r)

	case *Quotient:
		n, d := Simplify(v.num), Simplify(v.den)
		if nv, dv, ok := numbers(n, d); ok && dv != 0 {
			return N(nv / dv)
		}
		if isNum(d, 1) {
			return n
		}
		if isNum(n, 0) {
			if dn, ok := d.(*Number); !ok || dn.value != 0 {
				return N(0)
			}
		}
		return Div(n, d)

	case *Power:
		b, x := Simplify(v.base), Simplify(v.exp)
		if isNum(x, 0) {
			return N(1)
		}
		if isNum(x, 1) {
			return b
		}
		if bv, xv, ok := numbers(b, x); ok {
			if r, err := power(bv, xv, v); err == nil && !math.IsInf(r, 0) {
				return N(r)
			}
		}
		return Pow(b, x)

	case *Apply:
		arg := Simplify(v.arg)
		if n, ok := arg.(*Number); ok {
			if impl, known := functionTable[v.fn.name]; known {
				if r, err := applyFunc(v.fn.name, impl, n.value); err == nil && !math.IsInf(r, 0) {
					return N(r)
				}
			}
		}
		return Call(v.fn, arg)
	}
	return e
}

func numbers(l, r Expr) (float64, float64, bool) {
	ln, ok1 := l.(*Number)
	rn, ok2 := r.(*Number)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return ln.value, rn.value, true
}

func isNum(e Expr, v float64) bool {
	n, ok := e.(*Number)
	return ok && n.value == v
}

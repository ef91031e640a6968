package symexpr

import "fmt"

// Compiled is an expression lowered to a Go closure. Calling it gives the
// same result as Evaluate on the source expression, without walking the tree
// or looking up function names again.
type Compiled func(b Bindings) (float64, error)

// Compile lowers e to a Compiled closure. Unknown function names are
// reported here rather than on every call.
func Compile(e Expr) (Compiled, error) {
	switch v := e.(type) {
	case *Variable:
		name := v.name
		return func(b Bindings) (float64, error) {
			x, ok := b[name]
			if !ok {
				return 0, NewUnboundVariableError(name)
			}
			return x, nil
		}, nil

	case *Number:
		c := v.value
		return func(Bindings) (float64, error) { return c, nil }, nil

	case *Negative:
		f, err := Compile(v.expr)
		if err != nil {
			return nil, err
		}
		return func(b Bindings) (float64, error) {
			x, err := f(b)
			return -x, err
		}, nil

	case *Sum:
		return compileBinary(v.left, v.right, func(l, r float64) (float64, error) { return l + r, nil })
	case *Difference:
		return compileBinary(v.left, v.right, func(l, r float64) (float64, error) { return l - r, nil })
	case *Product:
		return compileBinary(v.left, v.right, func(l, r float64) (float64, error) { return l * r, nil })
	case *Quotient:
		return compileBinary(v.num, v.den, func(n, d float64) (float64, error) { return divide(n, d, v) })
	case *Power:
		return compileBinary(v.base, v.exp, func(b, x float64) (float64, error) { return power(b, x, v) })

	case *Apply:
		impl, ok := functionTable[v.fn.name]
		if !ok {
			return nil, NewUnknownFunctionError(v.fn.name)
		}
		f, err := Compile(v.arg)
		if err != nil {
			return nil, err
		}
		name := v.fn.name
		return func(b Bindings) (float64, error) {
			x, err := f(b)
			if err != nil {
				return 0, err
			}
			return applyFunc(name, impl, x)
		}, nil
	}
	return nil, fmt.Errorf("symexpr: cannot compile %T", e)
}

func compileBinary(l, r Expr, op func(float64, float64) (float64, error)) (Compiled, error) {
	lf, err := Compile(l)
	if err != nil {
		return nil, err
	}
	rf, err := Compile(r)
	if err != nil {
		return nil, err
	}
	return func(b Bindings) (float64, error) {
		lv, err := lf(b)
		if err != nil {
			return 0, err
		}
		rv, err := rf(b)
		if err != nil {
			return 0, err
		}
		return op(lv, rv)
	}, nil
}

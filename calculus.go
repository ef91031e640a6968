package symexpr

// ============================================================
// Top-level convenience functions
// ============================================================

func Evaluate(e Expr, b Bindings) (float64, error) { return e.Evaluate(b) }
func String(e Expr) string                         { return e.String() }
func LaTeX(e Expr) string                          { return e.LaTeX() }
func Expand(e Expr) Expr                           { return e.Expand() }

func Sub(e Expr, varName string, value Expr) Expr {
	return e.Substitute(varName, value)
}

func Diff(e Expr, varName string) (Expr, error) {
	return e.Derivative(varName)
}

// DiffN returns the n-th derivative of e. Intermediate results are simplified
// so the tree does not grow with every step; n == 0 returns e unchanged.
func DiffN(e Expr, varName string, n int) (Expr, error) {
	result := e
	for i := 0; i < n; i++ {
		d, err := result.Derivative(varName)
		if err != nil {
			return nil, err
		}
		result = Simplify(d)
	}
	return result, nil
}

// Gradient returns the partial derivative of e with respect to each name in
// varNames. Failures for individual variables are collected in a MultiError.
func Gradient(e Expr, varNames []string) ([]Expr, error) {
	result := make([]Expr, len(varNames))
	var errs []error
	for i, v := range varNames {
		d, err := e.Derivative(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result[i] = d
	}
	if len(errs) > 0 {
		return nil, &MultiError{Errors: errs}
	}
	return result, nil
}

package symexpr

import "sort"

// ============================================================
// Tree inspection
// ============================================================

// Children returns the direct sub-expressions of e in left-to-right order.
// Leaves have none.
func Children(e Expr) []Expr {
	switch v := e.(type) {
	case *Negative:
		return []Expr{v.expr}
	case *Sum:
		return []Expr{v.left, v.right}
	case *Difference:
		return []Expr{v.left, v.right}
	case *Product:
		return []Expr{v.left, v.right}
	case *Quotient:
		return []Expr{v.num, v.den}
	case *Power:
		return []Expr{v.base, v.exp}
	case *Apply:
		return []Expr{v.arg}
	}
	return nil
}

// Walk visits e and its descendants in pre-order. It stops as soon as visit
// returns false and reports whether the walk ran to completion.
func Walk(e Expr, visit func(Expr) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range Children(e) {
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

// Variables returns the set of variable names occurring in e.
func Variables(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	Walk(e, func(n Expr) bool {
		if v, ok := n.(*Variable); ok {
			result[v.name] = struct{}{}
		}
		return true
	})
	return result
}

// Functions returns the set of function names applied anywhere in e.
func Functions(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	Walk(e, func(n Expr) bool {
		if a, ok := n.(*Apply); ok {
			result[a.fn.name] = struct{}{}
		}
		return true
	})
	return result
}

// Contains reports whether the variable varName occurs in e.
func Contains(e Expr, varName string) bool {
	return !Walk(e, func(n Expr) bool {
		v, ok := n.(*Variable)
		return !ok || v.name != varName
	})
}

// ContainsSum reports whether e has a Sum node anywhere.
func ContainsSum(e Expr) bool {
	return !Walk(e, func(n Expr) bool {
		_, ok := n.(*Sum)
		return !ok
	})
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Expr) bool { return a.Equal(b) }

// SortedNames returns the members of a name set in ascending order.
func SortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

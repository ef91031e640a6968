package symexpr

import (
	"fmt"
	"strings"
)

// ErrorType names the category of a symexpr error.
type ErrorType string

const (
	TypeUnboundVariable ErrorType = "UnboundVariable"
	TypeUnknownFunction ErrorType = "UnknownFunction"
	TypeNotImplemented  ErrorType = "NotImplemented"
	TypeDivisionByZero  ErrorType = "DivisionByZero"
	TypeDomain          ErrorType = "DomainError"
	TypeSyntax          ErrorType = "SyntaxError"
	TypeDecode          ErrorType = "DecodeError"
)

// Error is implemented by every error returned from this package.
type Error interface {
	error
	Type() ErrorType
}

// BaseError carries the fields shared by all symexpr errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// UnboundVariableError is returned when evaluation meets a variable that has
// no value in the bindings.
type UnboundVariableError struct {
	BaseError
	Name string
}

// UnknownFunctionError is returned when evaluation meets a function name that
// has no numeric implementation.
type UnknownFunctionError struct {
	BaseError
	Name string
}

// NotImplementedError is returned by Derivative for forms it cannot handle:
// non-numeric exponents and functions missing from the derivative table.
type NotImplementedError struct {
	BaseError
	Expr string
}

// DivisionByZeroError is returned when a denominator evaluates to zero.
type DivisionByZeroError struct {
	BaseError
	Expr string
}

// DomainError is returned when a function or power has no real value at the
// given argument, e.g. sqrt(-1).
type DomainError struct {
	BaseError
	Func string
	Arg  float64
}

// SyntaxError is returned by Parse. Pos is the byte offset in the source.
type SyntaxError struct {
	BaseError
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s] offset %d: %s", e.ErrType, e.Pos, e.Msg)
}

// DecodeError is returned by FromJSON for malformed node objects.
type DecodeError struct {
	BaseError
}

// NewUnboundVariableError creates an UnboundVariableError.
func NewUnboundVariableError(name string) *UnboundVariableError {
	return &UnboundVariableError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("variable %q not bound", name),
			ErrType: TypeUnboundVariable,
		},
		Name: name,
	}
}

// NewUnknownFunctionError creates an UnknownFunctionError.
func NewUnknownFunctionError(name string) *UnknownFunctionError {
	return &UnknownFunctionError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("unknown function %q", name),
			ErrType: TypeUnknownFunction,
		},
		Name: name,
	}
}

// NewNotImplementedError creates a NotImplementedError for expression e.
func NewNotImplementedError(e Expr, reason string) *NotImplementedError {
	return &NotImplementedError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("derivative of %s not implemented: %s", e.String(), reason),
			ErrType: TypeNotImplemented,
		},
		Expr: e.String(),
	}
}

// NewDivisionByZeroError creates a DivisionByZeroError for expression e.
func NewDivisionByZeroError(e Expr) *DivisionByZeroError {
	return &DivisionByZeroError{
		BaseError: BaseError{
			Msg:     "division by zero in " + e.String(),
			ErrType: TypeDivisionByZero,
		},
		Expr: e.String(),
	}
}

// NewDomainError creates a DomainError.
func NewDomainError(fn string, arg float64) *DomainError {
	return &DomainError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("%s is undefined at %s", fn, formatNumber(arg)),
			ErrType: TypeDomain,
		},
		Func: fn,
		Arg:  arg,
	}
}

// NewSyntaxError creates a SyntaxError at byte offset pos.
func NewSyntaxError(pos int, msg string) *SyntaxError {
	return &SyntaxError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeSyntax,
		},
		Pos: pos,
	}
}

func newDecodeError(format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf(format, args...),
			ErrType: TypeDecode,
		},
	}
}

// MultiError collects errors from operations that run over several
// expressions, such as Gradient.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if se, ok := m.Errors[0].(Error); ok {
			return se.Type()
		}
	}
	return "MultiError"
}

// Unwrap lets errors.As and errors.Is look through the collected errors.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

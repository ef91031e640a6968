package symexpr

import (
	"strconv"
)

// ============================================================
// Lexer
// ============================================================

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	lit  string
	pos  int // byte offset in the input
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			i++
		case ch == '+':
			tokens = append(tokens, token{tokPlus, "+", i})
			i++
		case ch == '-':
			tokens = append(tokens, token{tokMinus, "-", i})
			i++
		case ch == '*':
			// ** is accepted as a synonym for ^.
			if i+1 < len(src) && src[i+1] == '*' {
				tokens = append(tokens, token{tokCaret, "**", i})
				i += 2
			} else {
				tokens = append(tokens, token{tokStar, "*", i})
				i++
			}
		case ch == '/':
			tokens = append(tokens, token{tokSlash, "/", i})
			i++
		case ch == '^':
			tokens = append(tokens, token{tokCaret, "^", i})
			i++
		case ch == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case ch == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case isDigit(ch) || ch == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < len(src) && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < len(src) && isDigit(src[j]) {
					for j < len(src) && isDigit(src[j]) {
						j++
					}
					i = j
				}
			}
			tokens = append(tokens, token{tokNumber, src[start:i], start})
		case isIdentStart(ch):
			start := i
			for i < len(src) && (isIdentStart(src[i]) || isDigit(src[i])) {
				i++
			}
			tokens = append(tokens, token{tokIdent, src[start:i], start})
		default:
			return nil, NewSyntaxError(i, "unexpected character "+strconv.QuoteRune(rune(ch)))
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(src)})
	return tokens, nil
}

// ============================================================
// Parser
// ============================================================

type parser struct {
	tokens []token
	pos    int
}

// Parse reads the text form produced by Expr.String:
//
//	expr    := term (("+" | "-") term)*
//	term    := unary (("*" | "/") unary)*
//	unary   := "-" unary | "+" unary | power
//	power   := primary ("^" unary)?
//	primary := number | ident | ident "(" expr ")" | "(" expr ")"
//
// "^" is right-associative and binds tighter than unary minus, so -x^2 is
// -(x^2). Function names are not checked until evaluation.
func Parse(src string) (Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokEOF {
		return nil, NewSyntaxError(0, "empty expression")
	}
	p := &parser{tokens: tokens}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, NewSyntaxError(t.pos, "unexpected token "+strconv.Quote(t.lit))
	}
	return e, nil
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and examples.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic("symexpr: MustParse(" + strconv.Quote(src) + "): " + err.Error())
	}
	return e
}

func (p *parser) peek() token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) error {
	if t := p.peek(); t.kind != kind {
		if t.kind == tokEOF {
			return NewSyntaxError(t.pos, "expected "+what+", found end of input")
		}
		return NewSyntaxError(t.pos, "expected "+what+", found "+strconv.Quote(t.lit))
	}
	p.advance()
	return nil
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPlus || p.peek().kind == tokMinus {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op.kind == tokPlus {
			left = Add(left, right)
		} else {
			left = Subtract(left, right)
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokStar || p.peek().kind == tokSlash {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op.kind == tokStar {
			left = Mul(left, right)
		} else {
			left = Div(left, right)
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.peek().kind {
	case tokMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(operand), nil
	case tokPlus:
		p.advance()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Pow(base, exp), nil
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.advance()
		v, err := strconv.ParseFloat(t.lit, 64)
		if err != nil {
			return nil, NewSyntaxError(t.pos, "invalid number "+strconv.Quote(t.lit))
		}
		return N(v), nil

	case tokIdent:
		p.advance()
		if p.peek().kind != tokLParen {
			return Var(t.lit), nil
		}
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return Call(Fn(t.lit), arg), nil

	case tokLParen:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return e, nil

	case tokEOF:
		return nil, NewSyntaxError(t.pos, "unexpected end of input")
	}
	return nil, NewSyntaxError(t.pos, "unexpected token "+strconv.Quote(t.lit))
}

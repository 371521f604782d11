package gcalc

import (
	"errors"
	"strconv"
)

// Parser implements the grammar
//
//	program := exp ';'
//	exp     := term (('+'|'-') term)*
//	term    := factor (('*'|'/') factor)*
//	factor  := NUMBER | '(' exp ')'
//
// with a single token of lookahead pulled from the scanner on demand.
// The parser owns the scanner for its whole lifetime.
type Parser struct {
	sc  *Scanner
	tok Token
}

func NewParser(sc *Scanner) *Parser {
	return &Parser{sc: sc}
}

type parsingError struct{ error }

func parseErr(e *Error) {
	panic(parsingError{error: e})
}

func parseErrf(kind ErrorKind, format string, args ...any) {
	parseErr(errf(kind, format, args...))
}

// ParseStatement parses one "exp ';'" and returns its tree.
//
// The terminating semicolon is verified but left as lookahead, and
// consumed by the next call. That way the scanner does not block on
// more input before the caller had a chance to report the result.
func (p *Parser) ParseStatement() (expr Expr, err error) {
	// This is the unwinding point for everything below.
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(parsingError); ok {
				expr, err = nil, re.error
			} else {
				panic(r)
			}
		}
	}()

	// Eats the previous statement's semicolon, or primes the very
	// first lookahead.
	p.next()

	expr = p.parseExpr()
	if p.tok.Kind != SEMICOLON {
		parseErrf(ErrSyntax, "expected %s, found %s", SEMICOLON, p.tok.Kind)
	}
	return expr, nil
}

func (p *Parser) parseExpr() Expr {
	expr := p.parseTerm()
	for p.tok.Kind == PLUS || p.tok.Kind == DASH {
		op := p.tok
		p.next()
		expr = &BinaryExpr{
			Op:    op,
			Left:  expr,
			Right: p.parseTerm(),
		}
	}
	return expr
}

func (p *Parser) parseTerm() Expr {
	expr := p.parseFactor()
	for p.tok.Kind == STAR || p.tok.Kind == SLASH {
		op := p.tok
		p.next()
		expr = &BinaryExpr{
			Op:    op,
			Left:  expr,
			Right: p.parseFactor(),
		}
	}
	return expr
}

func (p *Parser) parseFactor() Expr {
	switch p.tok.Kind {
	case NUMBER:
		v, err := strconv.ParseInt(p.tok.Literal, 10, 32)
		if err != nil {
			parseErrf(ErrEval, "number %q does not fit in 32 bits", p.tok.Literal)
		}
		p.next()
		return &Literal{Value: int32(v)}

	case PAREN_LEFT:
		p.next()
		expr := p.parseExpr()
		p.eat(PAREN_RIGHT)
		return expr

	default:
		parseErrf(ErrSyntax, "expected number or parenthesis, found %s", p.tok.Kind)
		return nil
	}
}

// eat the lookahead if it has the expected kind, else fail.
func (p *Parser) eat(tt TokenType) {
	if p.tok.Kind != tt {
		parseErrf(ErrSyntax, "expected %s, found %s", tt, p.tok.Kind)
	}
	p.next()
}

// next replaces the lookahead with a fresh token from the scanner.
func (p *Parser) next() {
	tok, err := p.sc.Scan()
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			parseErr(ce)
		}
		parseErrf(ErrIO, "%s", err)
	}
	p.tok = tok
}

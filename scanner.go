package gcalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type TokenType int

const (
	ILLEGAL TokenType = iota

	NUMBER

	PLUS
	DASH
	STAR
	SLASH
	PAREN_LEFT
	PAREN_RIGHT
	SEMICOLON
)

var tokenTypes = map[TokenType]string{
	ILLEGAL: "ILLEGAL",

	NUMBER: "NUMBER",

	PLUS:        "+",
	DASH:        "-",
	STAR:        "*",
	SLASH:       "/",
	PAREN_LEFT:  "(",
	PAREN_RIGHT: ")",
	SEMICOLON:   ";",
}

func (t TokenType) String() string {
	return tokenTypes[t]
}

type Token struct {
	Kind TokenType
	// Literal is the raw digit text for NUMBER tokens.
	// Converting it to an integer is the parser's problem.
	Literal string

	Line int
}

func (t *Token) String() string {
	return fmt.Sprintf("[%d] %s: %q", t.Line, t.Kind, t.Literal)
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Scanner tokenizes a live input stream one line at a time.
// A new line is pulled from the reader only when the current one is
// exhausted, so an expression may span physical lines transparently.
type Scanner struct {
	in *bufio.Reader

	// Scanner state.
	// buf holds the current line, including its trailing newline.
	buf []byte
	// at the next byte to read.
	at int
	// line of buf, starting from 1.
	line int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{in: bufio.NewReader(r)}
}

// refill discards the current buffer and blocks reading the next line.
// Running out of input when a line is required is fatal.
func (s *Scanner) refill() error {
	line, err := s.in.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return errf(ErrIO, "unable to read line")
	}
	// A final line without a trailing newline still counts.
	s.buf = line
	s.at = 0
	s.line += 1
	return nil
}

// peek at the next byte, refilling across line boundaries.
func (s *Scanner) peek() (byte, error) {
	for s.at >= len(s.buf) {
		if err := s.refill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.at], nil
}

func (s *Scanner) skip() {
	s.at += 1
}

// Scan returns the next token from the stream.
// The error is a *Error of kind ErrIO if the input ran out,
// or ErrLexical if a byte matched no token class.
func (s *Scanner) Scan() (Token, error) {
	// Skip whitespace so s is at some non-whitespace byte.
whitespace:
	for {
		b, err := s.peek()
		if err != nil {
			return Token{}, err
		}
		switch b {
		case ' ', '\n', '\r', '\t':
			s.skip()
		default:
			break whitespace
		}
	}

	start := s.at
	line := s.line

	b := s.buf[s.at]
	if isDigit(b) {
		// The buffer keeps its newline, so a digit run never
		// crosses a refill.
		for s.at < len(s.buf) && isDigit(s.buf[s.at]) {
			s.skip()
		}
		return Token{Kind: NUMBER, Literal: string(s.buf[start:s.at]), Line: line}, nil
	}

	s.skip()

	var kind TokenType
	switch b {
	case '+':
		kind = PLUS
	case '-':
		kind = DASH
	case '*':
		kind = STAR
	case '/':
		kind = SLASH
	case '(':
		kind = PAREN_LEFT
	case ')':
		kind = PAREN_RIGHT
	case ';':
		kind = SEMICOLON
	default:
		return Token{}, errf(ErrLexical, "unrecognized character: %q", b)
	}

	return Token{Kind: kind, Literal: string(s.buf[start:s.at]), Line: line}, nil
}

// ScanString tokenizes s until the input runs out.
// Lexical errors are returned, plain end of input is not.
func ScanString(s string) ([]Token, error) {
	sc := NewScanner(strings.NewReader(s))

	toks := []Token{}
	for {
		tok, err := sc.Scan()
		var ce *Error
		if errors.As(err, &ce) && ce.Kind == ErrIO {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

package gcalc

import "fmt"

// ErrorKind classifies the fatal errors the calculator can hit.
// Every kind is terminal for the whole process, there is no recovery
// to a later statement.
type ErrorKind int

const (
	// ErrIO means the underlying input could not supply another line.
	ErrIO ErrorKind = iota
	// ErrLexical means a character matched no token class.
	ErrLexical
	// ErrSyntax means the lookahead token broke a grammar production.
	ErrSyntax
	// ErrEval means a runtime failure: division by zero, arithmetic
	// overflow, or a literal too large for 32 bits.
	ErrEval
)

var errorKinds = map[ErrorKind]string{
	ErrIO:      "io error",
	ErrLexical: "lexical error",
	ErrSyntax:  "syntax error",
	ErrEval:    "eval error",
}

func (k ErrorKind) String() string {
	return errorKinds[k]
}

// Error is the single outcome type for all fatal conditions.
// Callers can distinguish the kinds with errors.As.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

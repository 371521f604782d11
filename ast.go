package gcalc

import (
	"fmt"
	"strings"
)

// Expr is a node in the expression tree.
// There are only two shapes: integer literals at the leaves and
// binary operator applications everywhere else. Parentheses in the
// source only steer parsing, they leave no node behind.
type Expr interface {
	expr()
}

type (
	Literal struct {
		Value int32
	}

	BinaryExpr struct {
		Op          Token
		Left, Right Expr
	}
)

func (e *Literal) expr()    {}
func (e *BinaryExpr) expr() {}

// PrintAST representation of Expr nodes, one line each.
// Operators print prefix style, so "1+2*3" is "(+ 1 (* 2 3))".
func PrintAST(exprs ...Expr) string {
	sb := strings.Builder{}
	for _, e := range exprs {
		fmt.Fprintf(&sb, "%s\n", printExpr(e))
	}
	return strings.TrimSpace(sb.String())
}

func printExpr(e Expr) string {
	switch v := e.(type) {
	case *Literal:
		return fmt.Sprintf("%d", v.Value)
	case *BinaryExpr:
		l := printExpr(v.Left)
		r := printExpr(v.Right)
		return parenthesize(v.Op.Literal, l, r)
	default:
		panic(fmt.Sprintf("unknown node: %T :: %#v", e, e))
	}
}

func parenthesize(vs ...any) string {
	if len(vs) == 0 {
		return "()"
	}
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "(")

	fmt.Fprintf(&sb, "%v", vs[0])
	for _, v := range vs[1:] {
		fmt.Fprintf(&sb, " %v", v)
	}
	fmt.Fprintf(&sb, ")")

	return sb.String()
}

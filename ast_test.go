package gcalc_test

import (
	"testing"

	"github.com/vikblom/gcalc"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{src: "1;", want: "1"},
		{src: "1 + 1;", want: "(+ 1 1)"},

		// Same precedence folds left.
		{src: "8-3-2;", want: "(- (- 8 3) 2)"},
		{src: "100/10/5;", want: "(/ (/ 100 10) 5)"},

		// * and / bind tighter than + and -.
		{src: "2+3*4;", want: "(+ 2 (* 3 4))"},
		{src: "2*3+4;", want: "(+ (* 2 3) 4)"},

		// Parentheses regroup but leave no node behind.
		{src: "(2+3)*4;", want: "(* (+ 2 3) 4)"},
		{src: "((1+2)*(3+4));", want: "(* (+ 1 2) (+ 3 4))"},
		{src: "(1);", want: "1"},

		// An expression may span lines.
		{src: "1 +\n2;", want: "(+ 1 2)"},
	}

	for _, tt := range tests {
		expr := parse(t, tt.src)
		got := gcalc.PrintAST(expr)
		if tt.want != got {
			t.Errorf("PrintAST(%q) = %q but want %q", tt.src, got, tt.want)
		}
	}
}

func TestPrinterBuiltTree(t *testing.T) {
	// (+ 1 (* 2 3)) assembled by hand.
	expr := &gcalc.BinaryExpr{
		Op:   gcalc.Token{Kind: gcalc.PLUS, Literal: "+"},
		Left: &gcalc.Literal{Value: 1},
		Right: &gcalc.BinaryExpr{
			Op:    gcalc.Token{Kind: gcalc.STAR, Literal: "*"},
			Left:  &gcalc.Literal{Value: 2},
			Right: &gcalc.Literal{Value: 3},
		},
	}

	want := "(+ 1 (* 2 3))"
	if got := gcalc.PrintAST(expr); got != want {
		t.Errorf("PrintAST() = %q but want %q", got, want)
	}
}

package gcalc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vikblom/gcalc"
)

func parse(t *testing.T, src string) gcalc.Expr {
	t.Helper()
	p := gcalc.NewParser(gcalc.NewScanner(strings.NewReader(src)))
	expr, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}
	return expr
}

func TestParseStatement(t *testing.T) {
	expr := parse(t, "1 + 1;")

	bin, ok := expr.(*gcalc.BinaryExpr)
	if !ok {
		t.Fatalf("expected *BinaryExpr but got %T", expr)
	}
	if bin.Op.Kind != gcalc.PLUS {
		t.Errorf("operator = %s but want %s", bin.Op.Kind, gcalc.PLUS)
	}
}

func TestParseSequentialStatements(t *testing.T) {
	p := gcalc.NewParser(gcalc.NewScanner(strings.NewReader("1+1;\n2*2;\n")))

	first, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("first statement: %s", err)
	}
	second, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("second statement: %s", err)
	}

	if got := gcalc.PrintAST(first); got != "(+ 1 1)" {
		t.Errorf("first statement = %q but want %q", got, "(+ 1 1)")
	}
	if got := gcalc.PrintAST(second); got != "(* 2 2)" {
		t.Errorf("second statement = %q but want %q", got, "(* 2 2)")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want gcalc.ErrorKind
	}{
		// No unary minus in the grammar.
		{"-7/2;", gcalc.ErrSyntax},
		{"1 + ;", gcalc.ErrSyntax},
		{"1+1);", gcalc.ErrSyntax},
		{"(1+1;", gcalc.ErrSyntax},
		{"1&2;", gcalc.ErrLexical},
		{"99999999999;", gcalc.ErrEval},
		// Running out of input mid-statement is an io error.
		{"1+1", gcalc.ErrIO},
		{"", gcalc.ErrIO},
	}

	for _, tt := range tests {
		p := gcalc.NewParser(gcalc.NewScanner(strings.NewReader(tt.src)))
		_, err := p.ParseStatement()
		if err == nil {
			t.Errorf("parsing %q should fail", tt.src)
			continue
		}
		var ce *gcalc.Error
		if !errors.As(err, &ce) || ce.Kind != tt.want {
			t.Errorf("parsing %q should fail with %s, got: %v", tt.src, tt.want, err)
		}
	}
}

func TestParseErrorMessageNamesTokens(t *testing.T) {
	p := gcalc.NewParser(gcalc.NewScanner(strings.NewReader("1+1)")))
	_, err := p.ParseStatement()
	if err == nil {
		t.Fatal("expected parse to fail")
	}
	want := "expected ;, found )"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err, want)
	}
}

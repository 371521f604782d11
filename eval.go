package gcalc

import (
	"fmt"
	"io"
	"math"
)

type runtimeError struct{ error }

func runtimeErrf(format string, args ...any) {
	panic(runtimeError{error: errf(ErrEval, format, args...)})
}

// Eval computes the value of the tree rooted at expr.
//
// Arithmetic is checked 32-bit: overflow of + - *, MinInt32 / -1 and
// division by zero all fail instead of wrapping. Division truncates
// toward zero.
func Eval(expr Expr) (v int32, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtimeError); ok {
				err = re.error
			} else {
				panic(r)
			}
		}
	}()

	return eval(expr), nil
}

// eval walks the tree post-order.
func eval(e Expr) int32 {
	switch v := e.(type) {
	case *Literal:
		return v.Value

	case *BinaryExpr:
		l := eval(v.Left)
		r := eval(v.Right)
		switch v.Op.Kind {
		case PLUS:
			return narrow(int64(l)+int64(r), v.Op, l, r)
		case DASH:
			return narrow(int64(l)-int64(r), v.Op, l, r)
		case STAR:
			return narrow(int64(l)*int64(r), v.Op, l, r)
		case SLASH:
			if r == 0 {
				runtimeErrf("division by zero")
			}
			return narrow(int64(l)/int64(r), v.Op, l, r)
		}
		runtimeErrf("impossible binary %s", v.Op.Kind)

	default:
		panic(fmt.Sprintf("unknown node: %T :: %#v", e, e))
	}

	panic("unreachable")
}

// narrow a widened result back to 32 bits, or fail.
// Operands never exceed 32 bits, so one widened step cannot wrap int64.
func narrow(wide int64, op Token, l, r int32) int32 {
	if wide < math.MinInt32 || wide > math.MaxInt32 {
		runtimeErrf("integer overflow in %d %s %d", l, op.Kind, r)
	}
	return int32(wide)
}

// Interpreter evaluates a stream of statements, printing one result
// line per statement.
type Interpreter struct {
	out io.Writer

	// Prompt is written to out before each statement when set.
	Prompt string
}

func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Run parses and evaluates statements from in until the first fatal
// error, which it returns. Running out of input is itself fatal, so
// Run never returns nil.
func (i *Interpreter) Run(in io.Reader) error {
	p := NewParser(NewScanner(in))
	for {
		if i.Prompt != "" {
			fmt.Fprint(i.out, i.Prompt)
		}

		expr, err := p.ParseStatement()
		if err != nil {
			return err
		}
		v, err := Eval(expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(i.out, "%d\n", v)
	}
}

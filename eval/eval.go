// Package eval computes the numeric result of a parsed program.
//
// The walk is post-order over an accumulator stack: children push their
// values, parents pop and combine them. Each Evaluator owns a fresh symbol
// table seeded with the built-in constants; nothing persists across
// evaluators.
package eval

import (
	"fmt"
	"math"
	"strconv"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// ResultName is the variable holding the final result of a program.
const ResultName = "out"

// Evaluator walks a program tree and computes its numeric result.
type Evaluator struct {
	stack   []float64
	symbols map[string]float64
}

// New creates an evaluator whose symbol table holds only the built-in
// constants.
func New() *Evaluator {
	return &Evaluator{
		symbols: map[string]float64{
			"pi": math.Pi,
			"e":  math.E,
		},
	}
}

// Run evaluates every statement of the program in order. Later statements
// observe the bindings of earlier ones. The first failure aborts the run.
func (ev *Evaluator) Run(prog *ast.Program) error {
	return ev.eval(prog)
}

// Result returns the value bound to "out" after a run. ok is false when the
// program never assigned it: the program has no result, which is not an
// error.
func (ev *Evaluator) Result() (float64, bool) {
	v, ok := ev.symbols[ResultName]
	return v, ok
}

// Lookup returns the current value of a variable or constant.
func (ev *Evaluator) Lookup(name string) (float64, bool) {
	v, ok := ev.symbols[name]
	return v, ok
}

func (ev *Evaluator) push(v float64) {
	ev.stack = append(ev.stack, v)
}

func (ev *Evaluator) pop() float64 {
	v := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return v
}

func (ev *Evaluator) eval(e ast.Expr) error {
	switch e := e.(type) {
	case *ast.Program:
		for _, stmt := range e.Statements {
			if err := ev.eval(stmt); err != nil {
				return err
			}
		}
	case *ast.AssignExpr:
		if err := ev.eval(e.Value); err != nil {
			return err
		}
		// The name is stored exactly as lexed: assignment is
		// case-sensitive even though the constants are not.
		ev.symbols[e.ID.Value] = ev.pop()
	case *ast.ValueExpr:
		v, err := strconv.ParseFloat(e.Num, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", e.Num, err)
		}
		ev.push(v)
	case *ast.RefExpr:
		v, ok := ev.symbols[e.Token.Value]
		if !ok {
			return &UndefinedSymbolError{Name: e.Token.Value}
		}
		ev.push(v)
	case *ast.UnaryExpr:
		if err := ev.eval(e.Operand); err != nil {
			return err
		}
		if e.Op == lexer.TokMinus {
			ev.push(-ev.pop())
		}
	case *ast.FactorialExpr:
		if err := ev.eval(e.Operand); err != nil {
			return err
		}
		v := ev.pop()
		// Iterative accumulation while the counter stays <= the operand.
		// A negative operand yields 1 and a fractional operand stops at
		// the last integer below it: 3.5! is 1*2*3, not gamma(4.5).
		res := 1.0
		for i := 2.0; i <= v; i++ {
			res *= i
		}
		ev.push(res)
	case *ast.BinaryExpr:
		if err := ev.eval(e.Left); err != nil {
			return err
		}
		if err := ev.eval(e.Right); err != nil {
			return err
		}
		r := ev.pop()
		l := ev.pop()
		switch e.Op {
		case lexer.TokPlus:
			ev.push(l + r)
		case lexer.TokMinus:
			ev.push(l - r)
		case lexer.TokMultiply:
			ev.push(l * r)
		case lexer.TokDivide:
			// Division by zero is not an error: IEEE-754 gives ±Inf,
			// and 0/0 gives NaN.
			ev.push(l / r)
		case lexer.TokPower:
			ev.push(math.Pow(l, r))
		default:
			panic(fmt.Errorf("unsupported binary operator %s", e.Op))
		}
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
	return nil
}

// UndefinedSymbolError reports a reference to a name that is neither a
// built-in constant nor a previously assigned variable.
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol %q", e.Name)
}

// Package ast defines the expression tree built by the parser.
//
// The node set is closed: every variant implements the unexported marker
// method, and the tree walkers in eval and render dispatch with an
// exhaustive type switch over the variants.
package ast

import (
	"fmt"
	"strings"

	"go.creack.net/calc/lexer"
)

// Expr is the interface implemented by every expression node.
type Expr interface {
	// Dump returns a fully parenthesized plain-text form of the node,
	// for debugging and tests.
	Dump() string
	expr()
}

// Program represents the top-level program: an ordered sequence of
// assignment statements.
type Program struct {
	Statements []*AssignExpr
}

func (p *Program) expr() {}

func (p *Program) Dump() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.Dump())
	}
	return strings.Join(parts, "; ")
}

// ValueExpr is a numeric literal. It keeps the raw digit/dot text as lexed;
// conversion to a number happens at evaluation time.
type ValueExpr struct {
	Num string
}

func (v *ValueExpr) expr() {}

func (v *ValueExpr) Dump() string { return v.Num }

// RefExpr is a reference to a named symbol, constant or variable.
type RefExpr struct {
	Token lexer.Token
}

func (r *RefExpr) expr() {}

func (r *RefExpr) Dump() string { return r.Token.Value }

// UnaryExpr is a sign applied to an operand. Op is TokPlus or TokMinus.
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expr
}

func (u *UnaryExpr) expr() {}

func (u *UnaryExpr) Dump() string {
	sign := "+"
	if u.Op == lexer.TokMinus {
		sign = "-"
	}
	return fmt.Sprintf("(%s%s)", sign, u.Operand.Dump())
}

// FactorialExpr is the factorial of an operand.
type FactorialExpr struct {
	Operand Expr
}

func (f *FactorialExpr) expr() {}

func (f *FactorialExpr) Dump() string {
	return fmt.Sprintf("(%s!)", f.Operand.Dump())
}

// BinaryExpr is a binary operation. Op is one of TokPlus, TokMinus,
// TokMultiply, TokDivide, TokPower.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

func (b *BinaryExpr) expr() {}

func (b *BinaryExpr) Dump() string {
	ops := map[lexer.TokenType]string{
		lexer.TokPlus:     "+",
		lexer.TokMinus:    "-",
		lexer.TokMultiply: "*",
		lexer.TokDivide:   "/",
		lexer.TokPower:    "^",
	}
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), ops[b.Op], b.Right.Dump())
}

// AssignExpr binds the value of an expression to a name.
type AssignExpr struct {
	ID    lexer.Token
	Value Expr
}

func (a *AssignExpr) expr() {}

func (a *AssignExpr) Dump() string {
	return fmt.Sprintf("%s = %s", a.ID.Value, a.Value.Dump())
}

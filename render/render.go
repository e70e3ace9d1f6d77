// Package render produces display markup for a parsed program.
//
// Constants and operators are substituted with HTML entities: &pi; and &ee;
// for the built-ins, &minus; and &times; for the sign operators, a
// superscript/subscript fraction for division and a superscript for
// exponentiation. Parenthesization is decided per node by inspecting the
// immediate child, not by a precedence table; the fraction and exponent
// layouts carry their own grouping, so their operands stay bare in cases
// where an inline operator would need parentheses.
//
// Unlike evaluation, rendering never fails: an identifier that is not a
// built-in constant is printed as its own text.
package render

import (
	"fmt"
	"strings"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// Substitution markup for the built-in constants.
var constants = map[string]string{
	"pi": "&pi;",
	"e":  "&ee;",
}

var inlineOps = map[lexer.TokenType]string{
	lexer.TokPlus:     "+",
	lexer.TokMinus:    "&minus;",
	lexer.TokMultiply: "&times;",
}

// Renderer walks a program tree and produces its markup form.
type Renderer struct{}

// New creates a renderer.
func New() *Renderer { return &Renderer{} }

// Render returns the markup for a full program, one line per statement.
func (r *Renderer) Render(prog *ast.Program) string {
	var b strings.Builder
	r.renderExpr(&b, prog)
	return b.String()
}

func (r *Renderer) renderExpr(b *strings.Builder, e ast.Expr) {
	switch e := e.(type) {
	case *ast.Program:
		for i, stmt := range e.Statements {
			if i > 0 {
				b.WriteString("<br>")
			}
			r.renderExpr(b, stmt)
		}
	case *ast.AssignExpr:
		b.WriteString(e.ID.Value)
		b.WriteString(" = ")
		r.renderExpr(b, e.Value)
	case *ast.ValueExpr:
		b.WriteString(e.Num)
	case *ast.RefExpr:
		if sub, ok := constants[e.Token.Value]; ok {
			b.WriteString(sub)
			return
		}
		b.WriteString(e.Token.Value)
	case *ast.UnaryExpr:
		if e.Op == lexer.TokMinus {
			b.WriteString("&minus;")
		} else {
			b.WriteString("+")
		}
		r.renderTight(b, e.Operand)
	case *ast.FactorialExpr:
		r.renderTight(b, e.Operand)
		b.WriteByte('!')
	case *ast.BinaryExpr:
		switch e.Op {
		case lexer.TokDivide:
			b.WriteString("<sup>")
			r.renderLeft(b, e)
			b.WriteString("</sup>&frasl;<sub>")
			r.renderRight(b, e)
			b.WriteString("</sub>")
		case lexer.TokPower:
			r.renderLeft(b, e)
			b.WriteString("<sup>")
			r.renderRight(b, e)
			b.WriteString("</sup>")
		default:
			r.renderLeft(b, e)
			b.WriteString(inlineOps[e.Op])
			r.renderRight(b, e)
		}
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// renderTight renders the operand of a sign or factorial node, which binds
// tighter than any binary operator: anything but a literal, a reference, or
// another factorial gets parenthesized.
func (r *Renderer) renderTight(b *strings.Builder, operand ast.Expr) {
	switch operand.(type) {
	case *ast.ValueExpr, *ast.RefExpr, *ast.FactorialExpr:
		r.renderExpr(b, operand)
	default:
		r.renderGrouped(b, operand)
	}
}

// renderLeft renders the left operand of a binary node. It stays bare when
// it is a literal, a factorial, a reference, or a binary child whose
// operator is division, the parent's own operator, or exponentiation (the
// latter two carry their own grouping markup).
func (r *Renderer) renderLeft(b *strings.Builder, parent *ast.BinaryExpr) {
	bare := false
	switch child := parent.Left.(type) {
	case *ast.ValueExpr, *ast.RefExpr, *ast.FactorialExpr:
		bare = true
	case *ast.BinaryExpr:
		bare = child.Op == lexer.TokDivide || child.Op == parent.Op || child.Op == lexer.TokPower
	}
	if bare {
		r.renderExpr(b, parent.Left)
		return
	}
	r.renderGrouped(b, parent.Left)
}

// renderRight renders the right operand of a binary node. The policy is not
// symmetric with the left one: an exponentiation parent never parenthesizes
// its exponent (the superscript disambiguates), and a binary child stays
// bare only for division or the parent's own operator.
func (r *Renderer) renderRight(b *strings.Builder, parent *ast.BinaryExpr) {
	bare := parent.Op == lexer.TokPower
	if !bare {
		switch child := parent.Right.(type) {
		case *ast.ValueExpr, *ast.RefExpr, *ast.FactorialExpr:
			bare = true
		case *ast.BinaryExpr:
			bare = child.Op == lexer.TokDivide || child.Op == parent.Op
		}
	}
	if bare {
		r.renderExpr(b, parent.Right)
		return
	}
	r.renderGrouped(b, parent.Right)
}

func (r *Renderer) renderGrouped(b *strings.Builder, e ast.Expr) {
	b.WriteByte('(')
	r.renderExpr(b, e)
	b.WriteByte(')')
}

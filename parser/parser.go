// Package parser builds an ast.Program from raw input text.
//
// The parser is recursive descent with a single token of lookahead. Each
// production maps 1:1 to a parse function:
//
//	program    := ( assignment (NEWLINE|SEMICOLON)? )* EOF
//	assignment := IDENTIFIER '=' expr
//	expr       := term ( (PLUS|MINUS) expr )?
//	term       := factor ( NUMBER | (MULTIPLY|DIVIDE|POWER) term )?
//	factor     := (PLUS|MINUS) factor
//	           | FACTORIAL factor
//	           | ( '(' expr ')' | IDENTIFIER | NUMBER ) FACTORIAL?
//
// The grammar is intentionally shallow: expr recurses into expr and term
// into term, so every binary operator is right-associative, and there are
// only two binary precedence levels. A bare NUMBER token directly after a
// factor is an implicit multiplication; nothing else triggers one.
package parser

import (
	"fmt"
	"strings"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token
}

// Parser consumes a token stream and produces one program tree.
type Parser interface {
	Parse() (*ast.Program, error)
}

// New creates a parser for the given input, primed with its first token.
func New(input string) (Parser, error) {
	return newParser(input)
}

func newParser(input string) (*parser, error) {
	p := &parser{lex: lexer.New(input)}
	p.curToken = p.lex.NextToken()
	if p.curToken.Type == lexer.TokError {
		return nil, p.lex.Err()
	}
	return p, nil
}

// Parse parses a full program from the given input.
func Parse(input string) (*ast.Program, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse consumes the whole token stream and returns the program root.
func (p *parser) Parse() (*ast.Program, error) {
	return parseProgram(p)
}

func (p *parser) advance() error {
	p.prevToken = p.curToken
	p.curToken = p.lex.NextToken()
	if p.curToken.Type == lexer.TokError {
		return p.lex.Err()
	}
	return nil
}

// expect checks that the current token is of one of the expected types.
// It does not advance.
func (p *parser) expect(kinds ...lexer.TokenType) (lexer.Token, error) {
	if p.curToken.Type == lexer.TokError {
		return lexer.Token{}, p.lex.Err()
	}
	if p.curToken.Type.IsOneOf(kinds...) {
		return p.curToken, nil
	}
	return lexer.Token{}, &SyntaxError{Expected: kinds, Actual: p.curToken}
}

func parseProgram(p *parser) (*ast.Program, error) {
	prog := &ast.Program{}
	for p.curToken.Type != lexer.TokEOF {
		stmt, err := parseAssignment(p)
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		// At most one separator after each assignment.
		if p.curToken.Type.IsOneOf(lexer.TokNewline, lexer.TokSemicolon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return prog, nil
}

func parseAssignment(p *parser) (*ast.AssignExpr, error) {
	id, err := p.expect(lexer.TokIdentifier)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokAssign); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{ID: id, Value: value}, nil
}

func parseExpr(p *parser) (ast.Expr, error) {
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		op := p.curToken.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		// Recursing into expr rather than looping over terms makes the
		// chain right-associative: 1 - 2 - 3 is 1 - (2 - 3).
		right, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

func parseTerm(p *parser) (ast.Expr, error) {
	left, err := parseFactor(p)
	if err != nil {
		return nil, err
	}
	switch {
	case p.curToken.Type == lexer.TokNumber:
		// Two lexically adjacent number tokens multiply implicitly.
		// The trigger is exactly a NUMBER token: an identifier or an open
		// paren after a factor does not multiply, it fails upstream.
		right, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: lexer.TokMultiply, Right: right}, nil
	case p.curToken.Type.IsOneOf(lexer.TokMultiply, lexer.TokDivide, lexer.TokPower):
		op := p.curToken.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

func parseFactor(p *parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokError:
		return nil, p.lex.Err()
	case lexer.TokPlus, lexer.TokMinus:
		op := p.curToken.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	case lexer.TokFactorial:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		return &ast.FactorialExpr{Operand: operand}, nil
	}

	var base ast.Expr
	switch p.curToken.Type {
	case lexer.TokParenLeft:
		if err := p.advance(); err != nil {
			return nil, err
		}
		group, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = group
	case lexer.TokIdentifier:
		base = &ast.RefExpr{Token: p.curToken}
		if err := p.advance(); err != nil {
			return nil, err
		}
	case lexer.TokNumber:
		base = &ast.ValueExpr{Num: p.curToken.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
	default:
		return nil, &SyntaxError{
			Expected: []lexer.TokenType{
				lexer.TokPlus, lexer.TokMinus, lexer.TokFactorial,
				lexer.TokParenLeft, lexer.TokIdentifier, lexer.TokNumber,
			},
			Actual: p.curToken,
		}
	}

	// Single optional postfix factorial: 3!, (-2)!, x!.
	if p.curToken.Type == lexer.TokFactorial {
		if err := p.advance(); err != nil {
			return nil, err
		}
		base = &ast.FactorialExpr{Operand: base}
	}
	return base, nil
}

// SyntaxError reports a token that does not match the grammar.
type SyntaxError struct {
	// Expected is the set of token types legal at this point.
	Expected []lexer.TokenType
	// Actual is the offending token.
	Actual lexer.Token
}

func (e *SyntaxError) Error() string {
	names := make([]string, 0, len(e.Expected))
	for _, tt := range e.Expected {
		names = append(names, tt.String())
	}
	return fmt.Sprintf("expected %s but got %s at offset %d",
		strings.Join(names, " or "), e.Actual.Type, e.Actual.Pos())
}

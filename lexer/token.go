package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokAssign
	TokPlus
	TokMinus
	TokMultiply
	TokDivide
	TokPower
	TokFactorial

	// Delimiters.
	TokNewline
	TokSemicolon
	TokComma
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokAssign:    "ASSIGN",
	TokPlus:      "PLUS",
	TokMinus:     "MINUS",
	TokMultiply:  "MULTIPLY",
	TokDivide:    "DIVIDE",
	TokPower:     "POWER",
	TokFactorial: "FACTORIAL",

	TokNewline:    "NEWLINE",
	TokSemicolon:  "SEMICOLON",
	TokComma:      "COMMA",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of the calculator language.
type Token struct {
	Type  TokenType
	Value string

	pos int
}

// Pos returns the byte offset of the start of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

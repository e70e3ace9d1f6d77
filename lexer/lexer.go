// Package lexer provides a simple lexical analyzer for the calculator language.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Lexer struct {
	input string

	curToken Token
	err      *LexError

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans and returns the next token. Insignificant whitespace is
// skipped. Once the end of the input is reached, every subsequent call
// returns an EOF token.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the lexical error behind the last TokError token, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorRune(r rune) stateFn {
	l.err = &LexError{Char: r, Pos: l.pos}
	l.curToken = Token{Type: TokError, Value: l.err.Error(), pos: l.pos}
	// The error is terminal: drop the remaining input so that the lexer
	// settles into its EOF state.
	l.input = l.input[:l.pos]
	l.start = l.pos
	l.atEOF = true
	return nil
}

// LexError reports a character that cannot start any token.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Pos is the byte offset of the character in the input.
	Pos int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

package lexer

import "strings"

type stateFn func(*Lexer) stateFn

const (
	letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	numberChars = digitChars + "."
)

func lexText(l *Lexer) stateFn {
	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'\n': TokNewline,
		';':  TokSemicolon,
		'=':  TokAssign,
		'+':  TokPlus,
		'-':  TokMinus,
		'*':  TokMultiply,
		'/':  TokDivide,
		'^':  TokPower,
		'!':  TokFactorial,
		'(':  TokParenLeft,
		')':  TokParenRight,
		',':  TokComma,
	}

	switch r := l.peek(); {
	case l.atEOF || r == 0:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\v' || r == '\f':
		// Horizontal whitespace is insignificant. Newline is not: it marks
		// a statement boundary and is emitted as its own token above.
		l.acceptRun(" \t\v\f")
		l.ignore()
		return lexText
	case strings.ContainsRune(numberChars, r):
		return lexNumber
	case strings.ContainsRune(letterChars, r):
		return lexIdentifier
	default:
		if tt, ok := singles[r]; ok {
			l.next()
			return l.emit(tt)
		}
		return l.errorRune(r)
	}
}

// lexNumber scans a maximal run of digits and dots. The run is not validated
// here: "1.2.3" lexes fine and only fails at numeric conversion time.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	return l.emit(TokNumber)
}

// lexIdentifier scans a run of letters optionally followed by letters and
// digits. The built-in constant names are matched case-insensitively and
// normalized to lowercase; any other identifier is kept verbatim.
func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(letterChars)
	l.acceptRun(letterChars + digitChars)
	tok := l.thisToken(TokIdentifier)
	switch lower := strings.ToLower(tok.Value); lower {
	case "pi", "e":
		tok.Value = lower
	}
	return l.emitToken(tok)
}

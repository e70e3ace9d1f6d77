package parser

import (
	"errors"
	"testing"

	"github.com/kr/pretty"

	"go.creack.net/calc/lexer"
)

// testParse parses the input and compares the dumped tree shape.
func testParse(t *testing.T, input, expected string) {
	t.Helper()

	prog, err := Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %s", input, err)
	}
	if got := prog.Dump(); got != expected {
		t.Fatalf("wrong tree for %q.\nexpected: %s\ngot:      %s\n%# v",
			input, expected, got, pretty.Formatter(prog))
	}
}

// testParseError parses the input and expects a syntax error.
func testParseError(t *testing.T, input string) *SyntaxError {
	t.Helper()

	prog, err := Parse(input)
	if err == nil {
		t.Fatalf("parse %q: expected a syntax error, got %s", input, prog.Dump())
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("parse %q: expected a *SyntaxError, got %s", input, err)
	}
	return synErr
}

func TestParserAssignment(t *testing.T) {
	testParse(t, "out = 2 + 3", "out = (2 + 3)")
}

func TestParserRightAssociativity(t *testing.T) {
	// expr recurses into expr: every binary chain leans right.
	testParse(t, "out = 10 - 2 - 3", "out = (10 - (2 - 3))")
	testParse(t, "out = 100 / 2 / 5", "out = (100 / (2 / 5))")
	testParse(t, "out = 2 ^ 3 ^ 4", "out = (2 ^ (3 ^ 4))")
	testParse(t, "out = 1 + 2 + 3", "out = (1 + (2 + 3))")
}

func TestParserPrecedenceLevels(t *testing.T) {
	testParse(t, "out = 1 + 2 * 3", "out = (1 + (2 * 3))")
	testParse(t, "out = 1 * 2 + 3", "out = ((1 * 2) + 3)")
	// Multiplication, division and exponentiation share one level.
	testParse(t, "out = 2 ^ 3 * 4", "out = (2 ^ (3 * 4))")
	testParse(t, "out = (1 + 2) * 3", "out = ((1 + 2) * 3)")
}

func TestParserUnary(t *testing.T) {
	testParse(t, "out = -3", "out = (-3)")
	testParse(t, "out = --3", "out = (-(-3))")
	testParse(t, "out = +3", "out = (+3)")
	testParse(t, "out = -(1 + 2)", "out = (-(1 + 2))")
}

func TestParserFactorial(t *testing.T) {
	// The factorial operator nests both prefix and postfix.
	testParse(t, "out = 3!", "out = (3!)")
	testParse(t, "out = 3.5!", "out = (3.5!)")
	testParse(t, "out = (-2)!", "out = ((-2)!)")
	testParse(t, "out = !!3", "out = ((3!)!)")
	testParse(t, "out = -!3", "out = (-(3!))")
	testParse(t, "out = x!", "out = (x!)")
	testParse(t, "out = 3! + 2", "out = ((3!) + 2)")
}

func TestParserImplicitMultiplication(t *testing.T) {
	// Only two lexically adjacent number tokens multiply implicitly.
	testParse(t, "out = 2 3", "out = (2 * 3)")
	testParse(t, "out = 2 3 4", "out = (2 * (3 * 4))")

	// A number followed by an identifier or an open paren does not.
	testParseError(t, "out = 2pi")
	testParseError(t, "out = 2(3)")
}

func TestParserStatements(t *testing.T) {
	testParse(t, "x = 2; y = x * 3; out = y + 1",
		"x = 2; y = (x * 3); out = (y + 1)")
	testParse(t, "x = 1\ny = 2", "x = 1; y = 2")
	testParse(t, "x = 1\n", "x = 1")
	testParse(t, "x = 1;", "x = 1")
	testParse(t, "", "")
}

func TestParserSingleSeparator(t *testing.T) {
	// The grammar allows at most one separator per statement, so a blank
	// line between assignments does not parse.
	testParseError(t, "x = 1\n\ny = 2")
	testParseError(t, "x = 1;; y = 2")
}

func TestParserErrors(t *testing.T) {
	// A bare expression is not a statement.
	synErr := testParseError(t, "1 + 2")
	if synErr.Actual.Type != lexer.TokNumber {
		t.Fatalf("wrong actual token: %s", synErr.Actual)
	}

	testParseError(t, "x 1")
	testParseError(t, "x =")
	testParseError(t, "out = (1 + 2")
	testParseError(t, "out = 1 +")
	testParseError(t, "out = 3!!")
	testParseError(t, "out = 1, 2")
}

func TestParserLexError(t *testing.T) {
	_, err := Parse("out = 2 @ 3")
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected a *lexer.LexError, got %v", err)
	}
	if lexErr.Char != '@' {
		t.Fatalf("wrong character. expected=%q, got=%q", '@', lexErr.Char)
	}
}

func TestParserSyntaxErrorMessage(t *testing.T) {
	synErr := testParseError(t, "x + 1")
	expected := "expected ASSIGN but got PLUS at offset 2"
	if got := synErr.Error(); got != expected {
		t.Fatalf("wrong message.\nexpected: %s\ngot:      %s", expected, got)
	}
}

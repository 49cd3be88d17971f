package tokenizer

import (
	"testing"

	"github.com/yinsong19/expressions/internal/config"
	"github.com/yinsong19/expressions/internal/lexererr"
	"github.com/yinsong19/expressions/internal/token"
)

// mustParse and assertParseError are the shared helpers every
// tokenizer_*_test.go file in this package uses.

func mustParse(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := New(config.DefaultConfiguration(), input).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", input, err)
	}
	return toks
}

func assertParseError(t *testing.T, err error, wantMessage string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a ParseError containing %q, got nil", wantMessage)
	}
	pe, ok := err.(*lexererr.ParseError)
	if !ok {
		t.Fatalf("expected *lexererr.ParseError, got %T: %v", err, err)
	}
	if pe.Message != wantMessage {
		t.Errorf("ParseError.Message = %q, want %q", pe.Message, wantMessage)
	}
}

// TestBasicExpression is the broad smoke test, mirroring the teacher's
// lexer_test.go/lexer_basic_test.go: one compound expression exercising
// numbers, identifiers, operators and function calls together before the
// per-concern files below drill into each in isolation.
func TestBasicExpression(t *testing.T) {
	toks := mustParse(t, "SUM(1, 2) + a * -3.5")

	wantTypes := []token.Type{
		token.Function, token.BraceOpen, token.NumberLiteral, token.Comma,
		token.NumberLiteral, token.BraceClose, token.InfixOperator,
		token.VariableOrConstant, token.InfixOperator, token.PrefixOperator,
		token.NumberLiteral,
	}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantTypes), toks)
	}
	for i, wt := range wantTypes {
		if toks[i].Type != wt {
			t.Errorf("token[%d] type = %s, want %s", i, toks[i].Type, wt)
		}
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	toks := mustParse(t, "  1   +   2  ")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
}

func TestEmptyInputProducesNoTokens(t *testing.T) {
	toks := mustParse(t, "")
	if len(toks) != 0 {
		t.Fatalf("got %d tokens for empty input, want 0: %+v", len(toks), toks)
	}
}

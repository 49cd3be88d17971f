package tokenizer

import (
	"testing"

	"github.com/yinsong19/expressions/internal/token"
)

func TestArrayLiteral(t *testing.T) {
	toks := mustParse(t, "[1, 2, 3]")
	if toks[0].Type != token.ArrayOpen {
		t.Errorf("token[0] = %s, want ARRAY_OPEN", toks[0].Type)
	}
	if toks[len(toks)-1].Type != token.ArrayClose {
		t.Errorf("last token = %s, want ARRAY_CLOSE", toks[len(toks)-1].Type)
	}
}

func TestNestedArrayLiteral(t *testing.T) {
	toks := mustParse(t, "[[1, 2], [3, 4]]")
	if toks[0].Type != token.ArrayOpen || toks[1].Type != token.ArrayOpen {
		t.Fatalf("got %+v, want nested ARRAY_OPEN tokens at the start", toks)
	}
	if toks[len(toks)-1].Type != token.ArrayClose || toks[len(toks)-2].Type != token.ArrayClose {
		t.Fatalf("got %+v, want nested ARRAY_CLOSE tokens at the end", toks)
	}
}

func TestArrayLiteralAsFunctionArgument(t *testing.T) {
	toks := mustParse(t, "SUM([1, 2, 3])")
	if toks[0].Type != token.Function {
		t.Errorf("token[0] = %s, want FUNCTION", toks[0].Type)
	}
	if toks[2].Type != token.ArrayOpen {
		t.Errorf("token[2] = %s, want ARRAY_OPEN", toks[2].Type)
	}
}

package tokenizer

import (
	"testing"

	"github.com/yinsong19/expressions/internal/token"
)

func TestIntegerLiteral(t *testing.T) {
	toks := mustParse(t, "42")
	if len(toks) != 1 || toks[0].Type != token.NumberLiteral || toks[0].Value != "42" {
		t.Fatalf("got %+v, want single NUMBER_LITERAL \"42\"", toks)
	}
}

func TestFloatLiteral(t *testing.T) {
	toks := mustParse(t, "3.14")
	if len(toks) != 1 || toks[0].Value != "3.14" {
		t.Fatalf("got %+v, want single NUMBER_LITERAL \"3.14\"", toks)
	}
}

func TestLeadingDotFloatLiteral(t *testing.T) {
	toks := mustParse(t, ".5")
	if len(toks) != 1 || toks[0].Value != ".5" {
		t.Fatalf("got %+v, want single NUMBER_LITERAL \".5\"", toks)
	}
}

func TestHexNumber(t *testing.T) {
	toks := mustParse(t, "0xFF + 1")
	if toks[0].Type != token.NumberLiteral || toks[0].Value != "0xFF" {
		t.Errorf("token[0] = %s %q, want NUMBER_LITERAL \"0xFF\"", toks[0].Type, toks[0].Value)
	}
}

func TestHexNumberLowercasePrefix(t *testing.T) {
	toks := mustParse(t, "0xabc")
	if len(toks) != 1 || toks[0].Value != "0xabc" {
		t.Fatalf("got %+v, want single NUMBER_LITERAL \"0xabc\"", toks)
	}
}

func TestScientificNotationWithPositiveExponent(t *testing.T) {
	toks := mustParse(t, "1.5e+3")
	if len(toks) != 1 || toks[0].Value != "1.5e+3" {
		t.Fatalf("got %+v, want single token \"1.5e+3\"", toks)
	}
}

func TestScientificNotationWithNegativeExponent(t *testing.T) {
	toks := mustParse(t, "1.5e-3")
	if len(toks) != 1 || toks[0].Value != "1.5e-3" {
		t.Fatalf("got %+v, want single token \"1.5e-3\"", toks)
	}
}

func TestScientificNotationWithoutSign(t *testing.T) {
	toks := mustParse(t, "2E10")
	if len(toks) != 1 || toks[0].Value != "2E10" {
		t.Fatalf("got %+v, want single token \"2E10\"", toks)
	}
}

func TestNumberFollowedByIdentifierIsNotMerged(t *testing.T) {
	// The tokenizer never synthesizes tokens; "2a" is two lexemes, not an
	// implicit-multiplication rewrite (that belongs to a downstream parser).
	toks := mustParse(t, "2a")
	if len(toks) != 2 || toks[0].Value != "2" || toks[1].Value != "a" {
		t.Fatalf("got %+v, want [\"2\" \"a\"]", toks)
	}
}

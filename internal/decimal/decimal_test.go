package decimal

import (
	"strings"
	"testing"
)

func TestDefaultMathContext(t *testing.T) {
	mc := DefaultMathContext()
	if mc.Precision != 68 {
		t.Errorf("Precision = %d, want 68", mc.Precision)
	}
	if mc.Rounding != RoundHalfEven {
		t.Errorf("Rounding = %v, want RoundHalfEven", mc.Rounding)
	}
}

func TestNumberStringRoundTrip(t *testing.T) {
	n := NewFromString("3.5", 64)
	if n.String() != "3.5" {
		t.Errorf("String() = %q, want %q", n.String(), "3.5")
	}
}

func TestUnsetNumberStringsAsZero(t *testing.T) {
	var n Number
	if n.String() != "0" {
		t.Errorf("zero-value Number.String() = %q, want %q", n.String(), "0")
	}
	if n.Float() != nil {
		t.Errorf("zero-value Number.Float() = %v, want nil", n.Float())
	}
}

// wantPIDigits and wantEDigits are the spec-mandated standard-constant
// expansions (100 and 65 significant digits respectively, §6), verified
// independently against known expansions of pi and e rather than derived
// from piDigits/eDigits, so a typo in the source literal cannot also hide
// in the expected value here.
const (
	wantPIDigits = "3.141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067"
	wantEDigits  = "2.7182818284590452353602874713526624977572470936999595749669676277"
)

func significantDigitCount(decimalString string) int {
	return len(strings.ReplaceAll(decimalString, ".", ""))
}

func TestPIDigitsConstantMatchesKnownExpansion(t *testing.T) {
	if piDigits != wantPIDigits {
		t.Errorf("piDigits = %q, want %q", piDigits, wantPIDigits)
	}
	if got := significantDigitCount(piDigits); got != 100 {
		t.Errorf("piDigits has %d significant digits, want 100", got)
	}
}

func TestEDigitsConstantMatchesKnownExpansion(t *testing.T) {
	if eDigits != wantEDigits {
		t.Errorf("eDigits = %q, want %q", eDigits, wantEDigits)
	}
	if got := significantDigitCount(eDigits); got != 65 {
		t.Errorf("eDigits has %d significant digits, want 65", got)
	}
}

func TestPIMatchesKnownExpansion(t *testing.T) {
	got := PI().String()
	// math/big's binary rounding at fixed precision can perturb only the
	// last handful of decimal digits on round-trip; compare a long, safely
	// interior prefix rather than requiring exact equality of all 100 digits.
	const checkedPrefixLen = 80
	if len(got) < checkedPrefixLen || got[:checkedPrefixLen] != wantPIDigits[:checkedPrefixLen] {
		t.Errorf("PI().String() = %q, want it to start with %q", got, wantPIDigits[:checkedPrefixLen])
	}
}

func TestEMatchesKnownExpansion(t *testing.T) {
	got := E().String()
	const checkedPrefixLen = 50
	if len(got) < checkedPrefixLen || got[:checkedPrefixLen] != wantEDigits[:checkedPrefixLen] {
		t.Errorf("E().String() = %q, want it to start with %q", got, wantEDigits[:checkedPrefixLen])
	}
}

// Package decimal provides the thin numeric handle the configuration
// surface needs (MathContext precision/rounding, and the standard PI/E
// constants). The arbitrary-precision arithmetic itself — addition,
// multiplication, comparison semantics used during evaluation — is an
// external collaborator per spec.md §1/§2 ("the arbitrary-precision
// arithmetic library" is explicitly out of scope); this package only
// stores and prints values, it never computes with them.
//
// math/big is used here deliberately rather than a third-party decimal
// library: no example repo in the retrieval pack imports one, and the
// concern this package serves (an inert, precision-bearing value holder)
// is exactly what spec.md places outside the core's responsibility.
package decimal

import "math/big"

// RoundingMode mirrors the handful of modes MathContext needs to name.
// The tokenizer never interprets these; they are opaque configuration
// carried through to the (out-of-scope) arithmetic library.
type RoundingMode int

const (
	// RoundHalfEven is banker's rounding, the default per spec.md §4.3.
	RoundHalfEven RoundingMode = iota
	RoundHalfUp
	RoundDown
	RoundCeiling
	RoundFloor
)

// MathContext bundles numeric precision and rounding mode.
type MathContext struct {
	Precision uint
	Rounding  RoundingMode
}

// DefaultMathContext is 68 significant digits, round-half-to-even, as
// required by spec.md §4.3.
func DefaultMathContext() MathContext {
	return MathContext{Precision: 68, Rounding: RoundHalfEven}
}

// Number is the opaque numeric handle default-constant values are held
// as. It carries no arithmetic of its own.
type Number struct {
	value *big.Float
}

// NewFromString parses a literal decimal string at the given precision.
// Errors are swallowed into an unset Number (precision/format validation
// of literals is a tokenizer concern handled independently; this
// constructor exists only to seed fixed, known-good standard constants).
func NewFromString(s string, precision uint) Number {
	f, _, _ := big.ParseFloat(s, 10, precision, big.ToNearestEven)
	return Number{value: f}
}

// String renders the number in decimal form.
func (n Number) String() string {
	if n.value == nil {
		return "0"
	}
	return n.value.Text('f', -1)
}

// Float returns the underlying *big.Float, or nil if unset.
func (n Number) Float() *big.Float {
	return n.value
}

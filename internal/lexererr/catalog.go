package lexererr

import "fmt"

// Message catalog. The spec (§6) fixes these strings as part of the
// external interface — callers may match on Message for error-kind
// dispatch, so they are centralized here instead of inlined at call
// sites, mirroring the teacher's internal/interp/errors/catalog.go
// ErrMsg* convention.
const (
	MsgClosingBraceNotFound = "Closing brace not found"
	MsgClosingArrayNotFound = "Closing array not found"
	MsgClosingVarNotFound   = "Closing var not found"

	MsgUnexpectedClosingBrace = "Unexpected closing brace"
	MsgUnexpectedClosingArray = "Unexpected closing array"

	MsgArrayCloseNotAllowedHere = "Array close not allowed here"

	MsgUnexpectedTokenAfterInfixOperator = "Unexpected token after infix operator"

	MsgIllegalScientificFormat = "Illegal scientific format"
	MsgClosingQuoteNotFound    = "Closing quote not found"
	MsgUnknownEscapeCharacter  = "Unknown escape character"
)

// MsgUndefinedOperator renders "Undefined operator '<lexeme>'".
func MsgUndefinedOperator(lexeme string) string {
	return fmt.Sprintf("Undefined operator '%s'", lexeme)
}

// MsgUndefinedFunction renders "Undefined function '<name>'".
func MsgUndefinedFunction(name string) string {
	return fmt.Sprintf("Undefined function '%s'", name)
}

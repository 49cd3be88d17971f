// Package token defines the token model produced by the tokenizer: the
// closed set of token types and the immutable Token record itself.
package token

import "fmt"

// Type is the closed set of token tags the tokenizer can emit.
type Type int

const (
	// BraceOpen is '('.
	BraceOpen Type = iota
	// BraceClose is ')'.
	BraceClose
	// ArrayOpen is '['.
	ArrayOpen
	// ArrayClose is ']'.
	ArrayClose
	// Comma is ','.
	Comma
	// NumberLiteral is a decimal, hex, or scientific numeric literal.
	NumberLiteral
	// StringLiteral is a double-quoted string literal with escapes resolved.
	StringLiteral
	// VariableOrConstant is an identifier that is neither an operator nor a
	// registered function.
	VariableOrConstant
	// Function is an identifier followed by '(' (whitespace in between is
	// skipped) that resolves against the function dictionary.
	Function
	// PrefixOperator is an operator consumed in prefix position.
	PrefixOperator
	// InfixOperator is an operator consumed in infix position.
	InfixOperator
	// PostfixOperator is an operator consumed in postfix position.
	PostfixOperator
)

var typeNames = [...]string{
	BraceOpen:           "BRACE_OPEN",
	BraceClose:          "BRACE_CLOSE",
	ArrayOpen:           "ARRAY_OPEN",
	ArrayClose:          "ARRAY_CLOSE",
	Comma:               "COMMA",
	NumberLiteral:       "NUMBER_LITERAL",
	StringLiteral:       "STRING_LITERAL",
	VariableOrConstant:  "VARIABLE_OR_CONSTANT",
	Function:            "FUNCTION",
	PrefixOperator:      "PREFIX_OPERATOR",
	InfixOperator:       "INFIX_OPERATOR",
	PostfixOperator:     "POSTFIX_OPERATOR",
}

// String renders the token type name, e.g. "INFIX_OPERATOR".
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// IsOperatorOrFunction reports whether a token of this type is required to
// carry a Definition (the "definition presence" invariant of §8).
func (t Type) IsOperatorOrFunction() bool {
	switch t {
	case PrefixOperator, PostfixOperator, InfixOperator, Function:
		return true
	default:
		return false
	}
}

// Token is the immutable record the tokenizer emits. StartColumn is
// 1-based. Value holds the literal text as it appeared in the source,
// except for string literals where escape sequences are already resolved
// to the characters they denote. Definition is present iff Type is one of
// the four operator/function tags.
type Token struct {
	StartColumn int
	Value       string
	Type        Type
	Definition  any
}

// New builds a plain token with no attached definition (braces, commas,
// literals, variables).
func New(t Type, value string, startColumn int) Token {
	return Token{StartColumn: startColumn, Value: value, Type: t}
}

// NewWithDefinition builds an operator/function token carrying its
// resolved dictionary definition.
func NewWithDefinition(t Type, value string, startColumn int, definition any) Token {
	return Token{StartColumn: startColumn, Value: value, Type: t, Definition: definition}
}

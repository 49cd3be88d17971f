// Package expr is the embeddable public facade over the expression
// tokenizer: a small surface re-exporting Configuration construction and
// the Tokenize entry point, so callers outside this module do not need
// to import the internal/* packages directly.
package expr

import (
	"github.com/yinsong19/expressions/internal/config"
	"github.com/yinsong19/expressions/internal/function"
	"github.com/yinsong19/expressions/internal/lexererr"
	"github.com/yinsong19/expressions/internal/operator"
	"github.com/yinsong19/expressions/internal/token"
	"github.com/yinsong19/expressions/internal/tokenizer"
)

// ParseError is the single error type Tokenize ever returns.
type ParseError = lexererr.ParseError

// Re-exported token model, so callers can type-switch on a result
// without reaching into internal/token themselves.
type (
	Token     = token.Token
	TokenType = token.Type
)

const (
	BraceOpen          = token.BraceOpen
	BraceClose         = token.BraceClose
	ArrayOpen          = token.ArrayOpen
	ArrayClose         = token.ArrayClose
	Comma              = token.Comma
	NumberLiteral      = token.NumberLiteral
	StringLiteral      = token.StringLiteral
	VariableOrConstant = token.VariableOrConstant
	Function           = token.Function
	PrefixOperator     = token.PrefixOperator
	InfixOperator      = token.InfixOperator
	PostfixOperator    = token.PostfixOperator
)

// Configuration is the handle passed to Tokenize. Build one with
// NewConfiguration or NewBuilder.
type Configuration = config.Configuration

// Builder is the fluent Configuration assembler; see config.Builder for
// the full set of With* setters.
type Builder = config.Builder

// NewBuilder starts a Configuration build from the field defaults,
// without the standard operator/function/constant seeding. Most callers
// want NewConfiguration instead.
func NewBuilder() *Builder {
	return config.NewBuilder()
}

// NewConfiguration returns a Configuration seeded with the standard
// operator set (+ - * / ^ % comparisons && || !), the standard function
// set (ABS, CEILING, FACT, FLOOR, IF, LOG, LOG10, MAX, MIN, NOT, SUM,
// SQRT, MOVE, MA), and the standard constants (TRUE, FALSE, PI, E, NULL).
func NewConfiguration() *Configuration {
	return config.DefaultConfiguration()
}

// StandardConstants returns a fresh copy of the standard constants
// (TRUE, FALSE, PI, E, NULL), keyed by those upper-case names. Modifying
// the returned map does not affect later calls.
func StandardConstants() map[string]any {
	return config.StandardConstants()
}

// OperatorEntry and FunctionEntry are re-exported for use with
// Configuration.WithAdditionalOperators / WithAdditionalFunctions.
type (
	OperatorEntry  = config.OperatorEntry
	FunctionEntry  = config.FunctionEntry
	OperatorDef    = operator.Definition
	FunctionDef    = function.Definition
	StdOperatorDef = operator.StdDefinition
	StdFunctionDef = function.StdDefinition
)

// NewStdOperator builds a StdOperatorDef for registering a custom
// operator of the given precedence, associativity, and fixities.
func NewStdOperator(precedence int, assoc operator.Associativity, fixities ...operator.Fixity) StdOperatorDef {
	return operator.NewStdDefinition(precedence, assoc, fixities...)
}

// NewStdFunction names a custom function definition.
func NewStdFunction(name string) StdFunctionDef {
	return function.NewStdDefinition(name)
}

// Tokenize scans text against cfg and returns the resulting token
// sequence, or the first error encountered. The returned error is always
// either nil or a *ParseError (see ParseError in this package).
func Tokenize(cfg *Configuration, text string) ([]Token, error) {
	return tokenizer.New(cfg, text).Parse()
}

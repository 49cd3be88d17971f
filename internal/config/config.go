// Package config holds the Configuration surface described in spec.md
// §3/§4.3: the immutable-looking bundle of dictionaries, numeric and
// formatting policy, and collaborator hooks that feeds the tokenizer
// (and, downstream, the evaluator).
//
// Configuration is a handle, not a value: the dictionaries it holds
// mutate in place via AddOperator/AddFunction and the fluent
// WithAdditional* methods. Mutating a Configuration concurrently with a
// Tokenizer.Parse call that reads it is not supported (spec.md §5) —
// dictionaries are safe to share read-only across goroutines, but
// builder-style mutation is the caller's responsibility to serialize.
package config

import (
	"time"

	"github.com/yinsong19/expressions/internal/accessor"
	"github.com/yinsong19/expressions/internal/decimal"
	"github.com/yinsong19/expressions/internal/function"
	"github.com/yinsong19/expressions/internal/operator"
	"github.com/yinsong19/expressions/internal/tsfunc"
	"github.com/yinsong19/expressions/internal/valueconv"
)

// DecimalPlacesUnlimited is the -1 sentinel meaning "do not post-round".
const DecimalPlacesUnlimited = -1

// Configuration is the immutable-after-build bundle the tokenizer
// consumes. See the package doc comment for its mutability contract.
type Configuration struct {
	operators *operator.Dictionary
	functions *function.Dictionary

	mathContext           decimal.MathContext
	decimalPlacesRounding int
	stripTrailingZeros    bool
	allowOverwriteConst   bool
	arraysAllowed         bool
	varsAllowed           bool
	implicitMultiplication bool
	powerOfPrecedence     int
	zoneID                *time.Location

	valueConverter  valueconv.Converter
	dataAccessor    accessor.Factory
	defaultConstants *ConstantsMap
}

// Operators returns the operator dictionary the tokenizer queries.
func (c *Configuration) Operators() *operator.Dictionary { return c.operators }

// Functions returns the function dictionary the tokenizer queries.
func (c *Configuration) Functions() *function.Dictionary { return c.functions }

// ArraysAllowed reports whether '[' / ']' tokens are recognized
// (spec.md §6 "arraysAllowed", default true). This is the only flag the
// tokenizer itself consults; the rest are downstream-only.
func (c *Configuration) ArraysAllowed() bool { return c.arraysAllowed }

// VarsAllowed reports the "varsAllowed" flag (downstream only; carried
// here for completeness of the configuration surface).
func (c *Configuration) VarsAllowed() bool { return c.varsAllowed }

// ImplicitMultiplicationAllowed reports the downstream-only
// "implicitMultiplicationAllowed" flag (default true).
func (c *Configuration) ImplicitMultiplicationAllowed() bool { return c.implicitMultiplication }

// MathContext returns the configured numeric precision/rounding policy.
func (c *Configuration) MathContext() decimal.MathContext { return c.mathContext }

// DecimalPlacesRounding returns the decimal-place rounding policy, or
// DecimalPlacesUnlimited.
func (c *Configuration) DecimalPlacesRounding() int { return c.decimalPlacesRounding }

// StripTrailingZeros reports the zero-stripping policy (downstream only).
func (c *Configuration) StripTrailingZeros() bool { return c.stripTrailingZeros }

// AllowOverwriteConstants reports whether a caller may shadow a standard
// constant name (downstream only).
func (c *Configuration) AllowOverwriteConstants() bool { return c.allowOverwriteConst }

// PowerOfPrecedence returns the configured precedence for the power
// operator (downstream only — the tokenizer never interprets precedence).
func (c *Configuration) PowerOfPrecedence() int { return c.powerOfPrecedence }

// ZoneID returns the configured time zone (downstream only).
func (c *Configuration) ZoneID() *time.Location { return c.zoneID }

// ValueConverter returns the configured evaluation value converter
// (downstream only).
func (c *Configuration) ValueConverter() valueconv.Converter { return c.valueConverter }

// DataAccessorFactory returns the per-expression accessor factory
// (downstream only).
func (c *Configuration) DataAccessorFactory() accessor.Factory { return c.dataAccessor }

// DefaultConstants returns the case-insensitive default-constants map.
func (c *Configuration) DefaultConstants() *ConstantsMap { return c.defaultConstants }

// WithAdditionalOperators registers each (name, definition) pair into the
// existing operator dictionary in place, in order, and returns the same
// Configuration for fluent chaining. No deep copy is made.
func (c *Configuration) WithAdditionalOperators(entries ...OperatorEntry) *Configuration {
	for _, e := range entries {
		c.operators.AddOperator(e.Name, e.Definition)
	}
	return c
}

// WithAdditionalFunctions registers each (name, definition) pair into the
// existing function dictionary in place, in order, and returns the same
// Configuration for fluent chaining. No deep copy is made.
//
// Calling this twice with the same entry leaves the effective function
// set unchanged the second time (idempotence of additive config, spec.md
// §8) because the dictionary is a plain map keyed by the case-folded name.
func (c *Configuration) WithAdditionalFunctions(entries ...FunctionEntry) *Configuration {
	for _, e := range entries {
		c.functions.AddFunction(e.Name, e.Definition)
	}
	return c
}

// OperatorEntry pairs a name with an operator.Definition for batch
// registration via WithAdditionalOperators.
type OperatorEntry struct {
	Name       string
	Definition operator.Definition
}

// FunctionEntry pairs a name with a function.Definition for batch
// registration via WithAdditionalFunctions.
type FunctionEntry struct {
	Name       string
	Definition function.Definition
}

// standardFunctionNames seeds the default function set named in spec.md
// §3. MOVE and MA come from the tsfunc package (time-series domain,
// bodies out of scope); the rest are named-only StdDefinitions since
// their bodies are likewise an external collaborator.
var standardFunctionNames = []string{
	"ABS", "CEILING", "FACT", "FLOOR", "IF", "LOG", "LOG10",
	"MAX", "MIN", "NOT", "SUM", "SQRT",
}

func seedStandardOperators(d *operator.Dictionary) {
	unary := operator.NewStdDefinition(operator.PrecedenceUnary, operator.RightAssociative, operator.Prefix)
	d.AddOperator("+", unary)
	d.AddOperator("-", unary)

	binary := func(prec int) operator.StdDefinition {
		return operator.NewStdDefinition(prec, operator.LeftAssociative, operator.Infix)
	}
	d.AddOperator("+", binary(operator.PrecedenceAdditive))
	d.AddOperator("-", binary(operator.PrecedenceAdditive))
	d.AddOperator("*", binary(operator.PrecedenceMultiplicative))
	d.AddOperator("/", binary(operator.PrecedenceMultiplicative))
	d.AddOperator("^", binary(operator.PrecedencePower))
	d.AddOperator("%", binary(operator.PrecedenceMultiplicative))

	cmp := binary(operator.PrecedenceComparison)
	for _, name := range []string{"=", "==", "!=", "<>", "<", "<=", ">", ">="} {
		d.AddOperator(name, cmp)
	}

	d.AddOperator("&&", binary(operator.PrecedenceLogicalAnd))
	d.AddOperator("||", binary(operator.PrecedenceLogicalOr))
	d.AddOperator("!", operator.NewStdDefinition(operator.PrecedenceUnary, operator.RightAssociative, operator.Prefix))
}

func seedStandardFunctions(d *function.Dictionary) {
	for _, name := range standardFunctionNames {
		d.AddFunction(name, function.NewStdDefinition(name))
	}
	d.AddFunction("MOVE", tsfunc.Move())
	d.AddFunction("MA", tsfunc.MA())
}

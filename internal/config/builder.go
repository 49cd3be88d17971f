package config

import (
	"time"

	"github.com/yinsong19/expressions/internal/accessor"
	"github.com/yinsong19/expressions/internal/decimal"
	"github.com/yinsong19/expressions/internal/function"
	"github.com/yinsong19/expressions/internal/operator"
	"github.com/yinsong19/expressions/internal/valueconv"
)

// Builder assembles a Configuration with a fluent API, following the
// teacher's ParserBuilder shape (internal/parser/parser_builder.go):
// NewBuilder() -> .With*(...) -> .Build().
type Builder struct {
	cfg *Configuration
}

// NewBuilder starts from the field defaults spec.md §4.3 names: 68-digit
// precision, banker's rounding, unlimited decimal-place rounding,
// strip-trailing-zeros, allow-overwrite-constants, arrays/vars/implicit-
// multiplication all allowed, standard power-operator precedence, host
// default time zone, a fresh-per-expression scalar-map accessor, and the
// identity value converter. The dictionaries and constants map start
// empty; callers typically start from DefaultConfiguration() instead,
// which additionally seeds the standard operator/function/constant sets.
func NewBuilder() *Builder {
	return &Builder{
		cfg: &Configuration{
			operators:              operator.NewDictionary(),
			functions:              function.NewDictionary(),
			mathContext:            decimal.DefaultMathContext(),
			decimalPlacesRounding:  DecimalPlacesUnlimited,
			stripTrailingZeros:     true,
			allowOverwriteConst:    true,
			arraysAllowed:          true,
			varsAllowed:            true,
			implicitMultiplication: true,
			powerOfPrecedence:      operator.PrecedencePower,
			zoneID:                 time.Local,
			valueConverter:         valueconv.Default(),
			dataAccessor:           accessor.DefaultFactory(),
			defaultConstants:       NewConstantsMap(),
		},
	}
}

// WithOperators replaces the operator dictionary outright.
func (b *Builder) WithOperators(d *operator.Dictionary) *Builder {
	b.cfg.operators = d
	return b
}

// WithFunctions replaces the function dictionary outright.
func (b *Builder) WithFunctions(d *function.Dictionary) *Builder {
	b.cfg.functions = d
	return b
}

// WithMathContext sets numeric precision and rounding mode.
func (b *Builder) WithMathContext(mc decimal.MathContext) *Builder {
	b.cfg.mathContext = mc
	return b
}

// WithDecimalPlacesRounding sets the decimal-place rounding policy, or
// DecimalPlacesUnlimited to disable post-rounding.
func (b *Builder) WithDecimalPlacesRounding(places int) *Builder {
	b.cfg.decimalPlacesRounding = places
	return b
}

// WithStripTrailingZeros toggles zero-stripping.
func (b *Builder) WithStripTrailingZeros(strip bool) *Builder {
	b.cfg.stripTrailingZeros = strip
	return b
}

// WithAllowOverwriteConstants toggles whether a caller may shadow a
// standard constant name.
func (b *Builder) WithAllowOverwriteConstants(allow bool) *Builder {
	b.cfg.allowOverwriteConst = allow
	return b
}

// WithArraysAllowed toggles '[' / ']' recognition. This is the only flag
// among these that the tokenizer itself consults.
func (b *Builder) WithArraysAllowed(allowed bool) *Builder {
	b.cfg.arraysAllowed = allowed
	return b
}

// WithVarsAllowed toggles the downstream-only "varsAllowed" flag.
func (b *Builder) WithVarsAllowed(allowed bool) *Builder {
	b.cfg.varsAllowed = allowed
	return b
}

// WithImplicitMultiplicationAllowed toggles the downstream-only
// "implicitMultiplicationAllowed" flag.
func (b *Builder) WithImplicitMultiplicationAllowed(allowed bool) *Builder {
	b.cfg.implicitMultiplication = allowed
	return b
}

// WithPowerOfPrecedence sets the power operator's precedence. Use
// operator.PrecedencePower (the standard value) or
// operator.PowerOfPrecedenceHigher (the "higher" alternative spec.md
// §4.3 mentions).
func (b *Builder) WithPowerOfPrecedence(precedence int) *Builder {
	b.cfg.powerOfPrecedence = precedence
	return b
}

// WithZoneID sets the configured time zone.
func (b *Builder) WithZoneID(zone *time.Location) *Builder {
	b.cfg.zoneID = zone
	return b
}

// WithValueConverter sets the evaluation value converter.
func (b *Builder) WithValueConverter(c valueconv.Converter) *Builder {
	b.cfg.valueConverter = c
	return b
}

// WithDataAccessorFactory sets the per-expression data accessor factory.
func (b *Builder) WithDataAccessorFactory(f accessor.Factory) *Builder {
	b.cfg.dataAccessor = f
	return b
}

// WithDefaultConstants replaces the default-constants map outright.
func (b *Builder) WithDefaultConstants(m *ConstantsMap) *Builder {
	b.cfg.defaultConstants = m
	return b
}

// Build finalizes and returns the Configuration.
func (b *Builder) Build() *Configuration {
	return b.cfg
}

// DefaultConfiguration returns a configuration seeded with the standard
// operator set, standard function set, and standard constants map
// (spec.md §3), on top of the field defaults NewBuilder() establishes.
func DefaultConfiguration() *Configuration {
	cfg := NewBuilder().Build()
	seedStandardOperators(cfg.operators)
	seedStandardFunctions(cfg.functions)
	seedStandardConstants(cfg.defaultConstants)
	return cfg
}

func seedStandardConstants(m *ConstantsMap) {
	m.Set("TRUE", true)
	m.Set("FALSE", false)
	m.Set("PI", decimal.PI())
	m.Set("E", decimal.E())
	m.Set("NULL", nil)
}

// StandardConstants returns a fresh copy of the standard constants
// (TRUE, FALSE, PI, E, NULL), keyed by those upper-case names. The
// result is a plain map: lookups in it are exact (case-sensitive), and
// a caller may modify it without affecting later calls.
func StandardConstants() map[string]any {
	return map[string]any{
		"TRUE":  true,
		"FALSE": false,
		"PI":    decimal.PI(),
		"E":     decimal.E(),
		"NULL":  nil,
	}
}

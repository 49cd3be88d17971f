// Package function holds the function dictionary described in spec.md
// §4.2: a single name->Definition map with case-insensitive lookup.
//
// Case folding uses golang.org/x/text/cases rather than strings.ToLower so
// the normalization follows Unicode casing rules consistently with the
// rest of the module's text handling (the teacher repo pulls in
// golang.org/x/text for the same reason).
package function

import (
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Definition is opaque to the tokenizer beyond existing. Downstream (the
// evaluator, out of scope here) is responsible for arity checking and
// invocation.
type Definition interface {
	// Name returns the function's canonical display name, e.g. "SUM".
	Name() string
}

// Dictionary is a case-insensitive name->Definition map. The canonical
// internal key form is the Unicode case-fold of the registered name;
// lookups fold their argument the same way.
type Dictionary struct {
	entries map[string]Definition
}

// NewDictionary returns an empty function dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Definition)}
}

func normalize(name string) string {
	return foldCaser.String(name)
}

// AddFunction registers def under name, case-insensitively. A second
// registration under a name that differs only by case overwrites the
// first, matching the dictionary's map-put semantics.
func (d *Dictionary) AddFunction(name string, def Definition) {
	d.entries[normalize(name)] = def
}

// HasFunction reports whether name (case-insensitively) is registered.
func (d *Dictionary) HasFunction(name string) bool {
	_, ok := d.entries[normalize(name)]
	return ok
}

// GetFunction returns the definition registered for name, if any.
func (d *Dictionary) GetFunction(name string) (Definition, bool) {
	def, ok := d.entries[normalize(name)]
	return def, ok
}

// StdDefinition is the minimal concrete Definition used to seed the
// standard function set (§3: ABS, CEILING, FACT, FLOOR, IF, LOG, LOG10,
// MAX, MIN, NOT, SUM, SQRT). The time-series functions MOVE and MA are
// seeded with tsfunc.Definition values instead.
// Its body is intentionally not implemented — function bodies are an
// out-of-scope external collaborator per spec.md §1.
type StdDefinition struct {
	name string
}

// NewStdDefinition names a standard function definition.
func NewStdDefinition(name string) StdDefinition { return StdDefinition{name: name} }

func (d StdDefinition) Name() string { return d.name }

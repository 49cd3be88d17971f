package accessor

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSONAccessor resolves variable names as dotted gjson paths against a
// single JSON document. It is an alternate DataAccessor for callers who
// keep their variable environment as JSON rather than a Go map — the
// teacher repo pulls in gjson/sjson for exactly this kind of ad hoc value
// marshalling in its FFI layer.
type JSONAccessor struct {
	doc string
}

// NewJSONAccessor wraps a JSON document string.
func NewJSONAccessor(doc string) *JSONAccessor {
	return &JSONAccessor{doc: doc}
}

// Get resolves name as a gjson path. A missing path reports ok=false.
func (a *JSONAccessor) Get(name string) (any, bool) {
	result := gjson.Get(a.doc, name)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// Set writes value at the given gjson-compatible path, returning a new
// accessor over the updated document (the underlying document is treated
// as immutable).
func (a *JSONAccessor) Set(name string, value any) (*JSONAccessor, error) {
	updated, err := sjson.Set(a.doc, name, value)
	if err != nil {
		return nil, err
	}
	return &JSONAccessor{doc: updated}, nil
}

// JSONFactory returns a Factory that always hands out a fresh accessor
// bound to a copy of doc — matching the "fresh per-expression" contract
// spec.md §4.3 requires of every DataAccessorFactory.
func JSONFactory(doc string) Factory {
	return func() DataAccessor { return NewJSONAccessor(doc) }
}

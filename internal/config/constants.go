package config

import "golang.org/x/text/cases"

var foldCaser = cases.Fold()

// ConstantsMap is the case-insensitive default-constants map spec.md §3
// and §6 describe (TRUE, FALSE, PI, E, NULL seeded by default).
type ConstantsMap struct {
	entries map[string]any
}

// NewConstantsMap returns an empty case-insensitive constants map.
func NewConstantsMap() *ConstantsMap {
	return &ConstantsMap{entries: make(map[string]any)}
}

// Set registers value under name, case-insensitively.
func (m *ConstantsMap) Set(name string, value any) {
	m.entries[foldCaser.String(name)] = value
}

// Get looks up name case-insensitively.
func (m *ConstantsMap) Get(name string) (any, bool) {
	v, ok := m.entries[foldCaser.String(name)]
	return v, ok
}

// Snapshot returns a copy of the map's current contents, keyed by the
// case-folded names. The copy is a plain map the caller may modify;
// changes to it do not affect m.
func (m *ConstantsMap) Snapshot() map[string]any {
	out := make(map[string]any, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

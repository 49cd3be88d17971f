package config

import (
	"github.com/goccy/go-yaml"
)

// LoadStandardConstantsYAML decodes a flat YAML mapping of constant name
// to scalar value and applies each entry to m via Set, overwriting any
// default with the same (case-folded) name. This is an alternate way to
// seed or override the default-constants map from a document, mirroring
// the teacher's use of goccy/go-yaml for fixture and config loading.
//
// Example document:
//
//	PI: 3.14159
//	GRAVITY: 9.81
//	GREETING: "hello"
func LoadStandardConstantsYAML(m *ConstantsMap, doc []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return err
	}
	for name, value := range raw {
		m.Set(name, value)
	}
	return nil
}

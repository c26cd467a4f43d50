// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Extension is one enabled markdown dialect feature. In the document it is
// either a bare identifier or an identifier carrying nested options:
//
//	markdown_extensions:
//	  - footnotes
//	  - toc:
//	      permalink: true
type Extension struct {
	// Name is the extension identifier.
	Name string
	// Options are extension-specific settings, nil for bare identifiers.
	Options map[string]interface{}
}

// UnmarshalYAML decodes the two authored extension entry shapes.
func (e *Extension) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&e.Name)
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("markdown extension entry must be a single identifier mapping, got %d keys", len(value.Content)/2)
		}
		key, val := value.Content[0], value.Content[1]
		e.Name = key.Value
		if val.Tag == "!!null" {
			return nil
		}
		return val.Decode(&e.Options)
	default:
		return fmt.Errorf("markdown extension entry must be a string or a single identifier mapping")
	}
}

// MarshalYAML reproduces the authored extension entry shape.
func (e *Extension) MarshalYAML() (interface{}, error) {
	if len(e.Options) == 0 {
		return e.Name, nil
	}
	return map[string]map[string]interface{}{e.Name: e.Options}, nil
}

// BoolOption reads a boolean extension option, returning the given default
// when the option is absent or not a boolean.
func (e *Extension) BoolOption(name string, def bool) bool {
	if v, ok := e.Options[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

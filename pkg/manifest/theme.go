// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts both the shorthand `theme: <name>` and the mapping form.
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Name = value.Value
		t.scalarForm = true
		return nil
	case yaml.MappingNode:
		type plain Theme
		return value.Decode((*plain)(t))
	default:
		return fmt.Errorf("theme must be a string or a mapping")
	}
}

// MarshalYAML reproduces the authored theme shape.
func (t *Theme) MarshalYAML() (interface{}, error) {
	if t.scalarForm && len(t.Options) == 0 {
		return t.Name, nil
	}
	type plain Theme
	return (*plain)(t), nil
}

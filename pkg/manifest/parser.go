// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse reads a site configuration document into its Manifest model.
// The navigation tree comes out with parent links wired.
func Parse(b []byte) (*Manifest, error) {
	var m = &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("can't parse site configuration yaml content: %w", err)
	}
	for _, n := range m.Nav {
		n.SetParentsDownwards()
	}
	return m, nil
}

// Serialize writes the Manifest model back into its document form. The output
// is equivalent to the parsed input: same keys, same ordering for the ordered
// fields, same values.
func Serialize(m *Manifest) (string, error) {
	b, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("can't serialize site configuration: %w", err)
	}
	return string(b), nil
}

// AllNavNodes flattens the navigation tree in document order.
func AllNavNodes(nav []*NavNode) []*NavNode {
	var collected []*NavNode
	for _, n := range nav {
		collected = append(collected, n)
		collected = append(collected, AllNavNodes(n.Children)...)
	}
	return collected
}

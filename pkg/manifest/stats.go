// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

// Stats summarizes the shape of a navigation tree
type Stats struct {
	// Leaves is the number of entries referencing a document
	Leaves int
	// Sections is the number of internal entries
	Sections int
	// MaxDepth is the depth of the deepest entry, 1 for a flat nav
	MaxDepth int
}

// NavStats walks the navigation tree and collects its figures
func NavStats(nav []*NavNode) Stats {
	s := Stats{}
	collectStats(nav, 1, &s)
	return s
}

func collectStats(nav []*NavNode, depth int, s *Stats) {
	for _, node := range nav {
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if node.IsSection() {
			s.Sections++
			collectStats(node.Children, depth+1, s)
		} else {
			s.Leaves++
		}
	}
}

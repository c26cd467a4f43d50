// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// NavNode is one entry in the ordered navigation tree. A node is either a leaf,
// pairing a label with a content location relative to the content root, or a
// section, pairing a label with an ordered list of child nodes.
//
// The document shapes a node can be authored in:
//
//	- index.md                  # bare leaf, label derived by the renderer
//	- Home: index.md            # labeled leaf
//	- User Guide:               # section
//	    - guide/install.md
//	    - guide/usage.md
type NavNode struct {
	// Title is the navigation label. Empty for bare leaves.
	Title string
	// Path locates the leaf's document relative to the content root.
	Path string
	// Children are the ordered descendants of a section node.
	Children []*NavNode

	parent *NavNode
}

// IsSection returns true if the node is an internal node of the navigation tree
func (n *NavNode) IsSection() bool {
	return len(n.Children) > 0
}

// Name returns the label presented for this node. For bare leaves it is
// derived from the path the way renderers conventionally do it.
func (n *NavNode) Name() string {
	if n.Title != "" {
		return n.Title
	}
	name := strings.TrimSuffix(path.Base(n.Path), path.Ext(n.Path))
	return name
}

// Parent is the parent section of this node, nil at top level
func (n *NavNode) Parent() *NavNode {
	return n.parent
}

// RemoveParent unlinks the node from its parent section
func (n *NavNode) RemoveParent() {
	n.parent = nil
}

// SetParentsDownwards walks the subtree and wires the parent links
func (n *NavNode) SetParentsDownwards() {
	for _, child := range n.Children {
		child.parent = n
		child.SetParentsDownwards()
	}
}

// NodePath returns the breadcrumb of labels from the top level to this node,
// used to address nodes in diagnostics.
func (n *NavNode) NodePath() string {
	segments := []string{n.Name()}
	for p := n.parent; p != nil; p = p.parent {
		segments = append([]string{p.Name()}, segments...)
	}
	return strings.Join(segments, "/")
}

func (n *NavNode) String() string {
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return string(out)
}

// UnmarshalYAML decodes the three authored nav entry shapes.
func (n *NavNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&n.Path)
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("nav entry must be a single label mapping, got %d keys", len(value.Content)/2)
		}
		key, val := value.Content[0], value.Content[1]
		n.Title = key.Value
		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				return fmt.Errorf("nav entry %q has no target", n.Title)
			}
			return val.Decode(&n.Path)
		case yaml.SequenceNode:
			return val.Decode(&n.Children)
		default:
			return fmt.Errorf("nav entry %q must map to a path or a list of entries", n.Title)
		}
	default:
		return fmt.Errorf("nav entry must be a string or a single label mapping")
	}
}

// MarshalYAML reproduces the authored nav entry shape.
func (n *NavNode) MarshalYAML() (interface{}, error) {
	if n.IsSection() {
		return map[string][]*NavNode{n.Title: n.Children}, nil
	}
	if n.Title == "" {
		return n.Path, nil
	}
	return map[string]string{n.Title: n.Path}, nil
}

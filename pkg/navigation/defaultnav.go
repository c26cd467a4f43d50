// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"path"
	"sort"
	"strings"

	"github.com/gardener/siteconf/pkg/manifest"
)

// index files anchor their section and are listed first
var indexFileNames = []string{"index.md", "readme.md"}

// DefaultNav derives a navigation tree from the content root file tree, for
// documents that do not declare a nav of their own. Directories become
// sections labeled by their name, files become bare leaves. Within a section
// the index file comes first, then the remaining files, then subsections,
// each group in lexical order.
func DefaultNav(files []string) []*manifest.NavNode {
	root := &manifest.NavNode{}
	dirToNode := map[string]*manifest.NavNode{".": root}
	for _, file := range files {
		parent := dirNode(dirToNode, path.Dir(file))
		parent.Children = append(parent.Children, &manifest.NavNode{Path: file})
	}
	sortNav(root)
	root.SetParentsDownwards()
	// the synthetic root must not show up in breadcrumbs
	for _, top := range root.Children {
		top.RemoveParent()
	}
	return root.Children
}

// dirNode returns the section node for a directory path, constructing the
// chain of missing ancestor sections on the way
func dirNode(dirToNode map[string]*manifest.NavNode, dir string) *manifest.NavNode {
	if node, ok := dirToNode[dir]; ok {
		return node
	}
	node := &manifest.NavNode{Title: sectionLabel(path.Base(dir))}
	parent := dirNode(dirToNode, path.Dir(dir))
	parent.Children = append(parent.Children, node)
	dirToNode[dir] = node
	return node
}

func sortNav(node *manifest.NavNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra < rb
		}
		return a.Name() < b.Name()
	})
	for _, child := range node.Children {
		sortNav(child)
	}
}

func rank(n *manifest.NavNode) int {
	if n.IsSection() {
		return 2
	}
	if isIndexFile(n.Path) {
		return 0
	}
	return 1
}

func isIndexFile(p string) bool {
	base := strings.ToLower(path.Base(p))
	for _, name := range indexFileNames {
		if base == name {
			return true
		}
	}
	return false
}

// sectionLabel turns a directory name into a presentable nav label the way
// renderers conventionally do it: dashes and underscores become spaces and
// words are capitalized.
func sectionLabel(dir string) string {
	words := strings.FieldsFunc(dir, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

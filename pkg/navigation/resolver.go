// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gardener/siteconf/pkg/manifest"
)

// Resolver checks a navigation tree against the content root it refers to.
// The content root is abstracted as an fs.FS so that consumers can hand in
// os.DirFS for real sites and fstest.MapFS in tests.
type Resolver struct {
	fsys fs.FS
}

// Report is the outcome of resolving a navigation tree against a content root
type Report struct {
	// Dangling lists nav leaves whose path does not resolve to a document,
	// each formatted as "<breadcrumb> -> <path>"
	Dangling []string
	// Orphans lists documents under the content root not referenced by the nav
	Orphans []string
	// Referenced lists documents the nav refers to, in document order
	Referenced []string
}

// NewResolver creates a Resolver over the given content root
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Tree collects the markdown documents under the content root as sorted
// slash-separated paths relative to the root.
func (r *Resolver) Tree() ([]string, error) {
	var files []string
	err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".md") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't walk content root: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Resolve verifies that every nav leaf references an existing document and
// reports the documents no nav entry refers to. Leaves with absolute URL
// destinations are external links and are not resolved here.
func (r *Resolver) Resolve(nav []*manifest.NavNode) (*Report, error) {
	files, err := r.Tree()
	if err != nil {
		return nil, err
	}
	exists := make(map[string]struct{}, len(files))
	for _, f := range files {
		exists[f] = struct{}{}
	}
	report := &Report{}
	referenced := map[string]struct{}{}
	for _, node := range manifest.AllNavNodes(nav) {
		if node.IsSection() || isExternal(node.Path) {
			continue
		}
		p := path.Clean(node.Path)
		if _, ok := exists[p]; !ok {
			report.Dangling = append(report.Dangling, fmt.Sprintf("%s -> %s", node.NodePath(), node.Path))
			continue
		}
		report.Referenced = append(report.Referenced, p)
		referenced[p] = struct{}{}
	}
	for _, f := range files {
		if _, ok := referenced[f]; !ok {
			report.Orphans = append(report.Orphans, f)
		}
	}
	return report, nil
}

func isExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}

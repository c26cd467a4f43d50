// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"testing"
	"testing/fstest"

	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/stretchr/testify/assert"
)

func contentRoot() fstest.MapFS {
	return fstest.MapFS{
		"index.md":                 &fstest.MapFile{Data: []byte("# Home")},
		"changelog.md":             &fstest.MapFile{Data: []byte("# Changelog")},
		"guide/install.md":         &fstest.MapFile{Data: []byte("# Install")},
		"guide/advanced/tuning.md": &fstest.MapFile{Data: []byte("# Tuning")},
		"assets/logo.png":          &fstest.MapFile{Data: []byte{0x89}},
	}
}

func TestTree(t *testing.T) {
	r := NewResolver(contentRoot())
	files, err := r.Tree()
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"changelog.md",
		"guide/advanced/tuning.md",
		"guide/install.md",
		"index.md",
	}, files)
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expDangling   []string
		expOrphans    []string
		expReferenced []string
	}{
		{
			name: "fully resolved nav",
			content: `
site_name: X
nav:
  - Home: index.md
  - Guide:
      - guide/install.md
      - Tuning: guide/advanced/tuning.md
  - changelog.md`,
			expReferenced: []string{"index.md", "guide/install.md", "guide/advanced/tuning.md", "changelog.md"},
		},
		{
			name: "dangling leaf",
			content: `
site_name: X
nav:
  - Home: index.md
  - Guide:
      - Missing: guide/missing.md`,
			expDangling:   []string{"Guide/Missing -> guide/missing.md"},
			expOrphans:    []string{"changelog.md", "guide/advanced/tuning.md", "guide/install.md"},
			expReferenced: []string{"index.md"},
		},
		{
			name: "external leaves are not resolved",
			content: `
site_name: X
nav:
  - Home: index.md
  - changelog.md
  - guide/install.md
  - Tuning: guide/advanced/tuning.md
  - Issues: https://github.com/materialsproject/maggma/issues`,
			expReferenced: []string{"index.md", "changelog.md", "guide/install.md", "guide/advanced/tuning.md"},
		},
		{
			name: "dot segments are normalized",
			content: `
site_name: X
nav:
  - Home: ./index.md
  - changelog.md
  - guide/install.md
  - guide/advanced/tuning.md`,
			expReferenced: []string{"index.md", "changelog.md", "guide/install.md", "guide/advanced/tuning.md"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tc.content))
			assert.NoError(t, err)
			report, err := NewResolver(contentRoot()).Resolve(m.Nav)
			assert.NoError(t, err)
			assert.Equal(t, tc.expDangling, report.Dangling)
			assert.Equal(t, tc.expOrphans, report.Orphans)
			assert.Equal(t, tc.expReferenced, report.Referenced)
		})
	}
}

// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"github.com/gardener/siteconf/pkg/manifest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parser", func() {
	Describe("Parsing configuration documents", func() {
		DescribeTable("parsing tests", func(content []byte, expected *manifest.Manifest, expErr string) {
			m, err := manifest.Parse(content)
			if expErr == "" {
				Expect(err).To(BeNil())
			} else {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(expErr))
			}
			if expected != nil {
				for _, n := range expected.Nav {
					n.SetParentsDownwards()
				}
				Expect(m).To(Equal(expected))
			}
		},
			Entry("site identity only", []byte(`
site_name: Maggma Documentation
site_description: Framework to build data pipelines
copyright: Copyright 2022, The Materials Project`),
				&manifest.Manifest{
					SiteName:        "Maggma Documentation",
					SiteDescription: "Framework to build data pipelines",
					Copyright:       "Copyright 2022, The Materials Project",
				}, ""),
			Entry("nav with labeled leaves", []byte(`
site_name: X
nav:
  - Home: index.md
  - Changelog: changelog.md`),
				&manifest.Manifest{
					SiteName: "X",
					Nav: []*manifest.NavNode{
						{Title: "Home", Path: "index.md"},
						{Title: "Changelog", Path: "changelog.md"},
					},
				}, ""),
			Entry("nav with bare leaves and nested sections", []byte(`
site_name: X
nav:
  - index.md
  - User Guide:
      - guide/install.md
      - Advanced:
          - guide/advanced.md`),
				&manifest.Manifest{
					SiteName: "X",
					Nav: []*manifest.NavNode{
						{Path: "index.md"},
						{Title: "User Guide", Children: []*manifest.NavNode{
							{Path: "guide/install.md"},
							{Title: "Advanced", Children: []*manifest.NavNode{
								{Path: "guide/advanced.md"},
							}},
						}},
					},
				}, ""),
			Entry("markdown extensions with options", []byte(`
site_name: X
markdown_extensions:
  - admonition
  - toc:
      permalink: true`),
				&manifest.Manifest{
					SiteName: "X",
					MarkdownExtensions: []*manifest.Extension{
						{Name: "admonition"},
						{Name: "toc", Options: map[string]interface{}{"permalink": true}},
					},
				}, ""),
			Entry("plugins and repo properties", []byte(`
site_name: X
repo_url: https://github.com/materialsproject/maggma
docs_dir: docs
plugins:
  - search
  - mkdocstrings`),
				&manifest.Manifest{
					SiteName: "X",
					RepoURL:  "https://github.com/materialsproject/maggma",
					DocsDir:  "docs",
					Plugins:  []string{"search", "mkdocstrings"},
				}, ""),
			Entry("nav entry with multiple labels is rejected", []byte(`
site_name: X
nav:
  - Home: index.md
    Extra: extra.md`),
				nil, "nav entry must be a single label mapping"),
			Entry("nav section without target is rejected", []byte(`
site_name: X
nav:
  - Broken:`),
				nil, "nav entry \"Broken\" has no target"),
			Entry("markdown extension with multiple identifiers is rejected", []byte(`
site_name: X
markdown_extensions:
  - toc:
      permalink: true
    footnotes: {}`),
				nil, "markdown extension entry must be a single identifier mapping"),
			Entry("malformed yaml is rejected", []byte("site_name: [\n"),
				nil, "can't parse site configuration yaml content"),
		)
	})

	Describe("Parsing theme declarations", func() {
		It("accepts the mapping form with options", func() {
			m, err := manifest.Parse([]byte(`
site_name: X
theme:
  name: material
  locale: en`))
			Expect(err).To(BeNil())
			Expect(m.Theme.Name).To(Equal("material"))
			Expect(m.Theme.Options).To(Equal(map[string]interface{}{"locale": "en"}))
		})
		It("accepts the scalar shorthand", func() {
			m, err := manifest.Parse([]byte(`
site_name: X
theme: readthedocs`))
			Expect(err).To(BeNil())
			Expect(m.Theme.Name).To(Equal("readthedocs"))
			Expect(m.Theme.Options).To(BeEmpty())
		})
	})

	Describe("Nav node helpers", func() {
		It("wires parents and breadcrumbs", func() {
			m, err := manifest.Parse([]byte(`
site_name: X
nav:
  - Guide:
      - Setup: guide/setup.md`))
			Expect(err).To(BeNil())
			section := m.Nav[0]
			leaf := section.Children[0]
			Expect(section.Parent()).To(BeNil())
			Expect(leaf.Parent()).To(Equal(section))
			Expect(leaf.NodePath()).To(Equal("Guide/Setup"))
		})
		It("derives names for bare leaves", func() {
			n := &manifest.NavNode{Path: "guide/getting-started.md"}
			Expect(n.Name()).To(Equal("getting-started"))
		})
	})
})

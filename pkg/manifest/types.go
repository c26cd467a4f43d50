// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

// DefaultDocsDir is the content root assumed when a manifest does not declare docs_dir
const DefaultDocsDir = "docs"

// Manifest models a static site configuration document. It declares the site
// identity, the theme, an ordered navigation tree over the content root and
// the markdown dialect features and plugins the renderer should activate.
// The document is a pure input for the renderer: it is authored once, read at
// build time and carries no runtime semantics of its own.
type Manifest struct {
	// SiteName is the display title of the site.
	//
	// Mandatory
	SiteName string `yaml:"site_name"`
	// SiteDescription is the subtitle/meta description of the site.
	//
	// Optional
	SiteDescription string `yaml:"site_description,omitempty"`
	// Copyright is a free-text footer attribution.
	//
	// Optional
	Copyright string `yaml:"copyright,omitempty"`
	// Theme selects a named presentation theme with theme-specific options.
	//
	// Optional
	Theme *Theme `yaml:"theme,omitempty"`
	// Nav is the ordered navigation tree. Each entry is either a leaf pointing
	// to a document under the content root, or a section with an ordered list
	// of child entries. When omitted, consumers derive a default navigation
	// from the content root file tree.
	//
	// Optional
	Nav []*NavNode `yaml:"nav,omitempty"`
	// RepoURL links the upstream source repository of the site content.
	//
	// Optional
	RepoURL string `yaml:"repo_url,omitempty"`
	// DocsDir is the content root directory the nav paths are relative to.
	// Defaults to "docs" when omitted.
	//
	// Optional
	DocsDir string `yaml:"docs_dir,omitempty"`
	// MarkdownExtensions is the ordered list of enabled markdown dialect
	// features. An entry is an identifier, optionally carrying nested options.
	//
	// Optional
	MarkdownExtensions []*Extension `yaml:"markdown_extensions,omitempty"`
	// Plugins is the ordered list of renderer plugins to activate.
	//
	// Optional
	Plugins []string `yaml:"plugins,omitempty"`
}

// Theme is a named bundle of presentation rules plus theme-specific options.
// In the document it is either a bare identifier or a mapping with a name key:
//
//	theme: readthedocs
//
//	theme:
//	  name: material
//	  locale: en
type Theme struct {
	// Name is the theme identifier.
	//
	// Mandatory when options are present
	Name string `yaml:"name"`
	// Options are theme-specific settings passed through to the renderer verbatim.
	//
	// Optional
	Options map[string]interface{} `yaml:",inline"`

	// records the authored shorthand form for faithful serialization
	scalarForm bool
}

// DocsDirOrDefault returns the declared content root or the conventional default.
// The default is not materialized into the document so that serialization stays
// faithful to the authored input.
func (m *Manifest) DocsDirOrDefault() string {
	if m.DocsDir == "" {
		return DefaultDocsDir
	}
	return m.DocsDir
}

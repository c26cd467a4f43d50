// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"net/url"
	"path"

	"github.com/hashicorp/go-multierror"
)

// ValidateManifest performs schema validation of a site configuration document.
// All findings are aggregated, the document is never mutated.
func ValidateManifest(m *Manifest) error {
	var errs *multierror.Error
	if m == nil {
		return nil
	}
	if m.SiteName == "" {
		errs = multierror.Append(errs, fmt.Errorf("site_name is a mandatory property"))
	}
	if m.DocsDir != "" && path.IsAbs(m.DocsDir) {
		errs = multierror.Append(errs, fmt.Errorf("docs_dir %s must be a relative path", m.DocsDir))
	}
	if m.RepoURL != "" {
		if u, err := url.Parse(m.RepoURL); err != nil || !u.IsAbs() {
			errs = multierror.Append(errs, fmt.Errorf("repo_url %s must be an absolute URL", m.RepoURL))
		}
	}
	if m.Theme != nil && m.Theme.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("theme name is a mandatory property when theme options are set"))
	}
	errs = validateNav(m.Nav, errs)
	errs = validateExtensions(m, errs)
	errs = validatePlugins(m, errs)
	return errs.ErrorOrNil()
}

func validateNav(nav []*NavNode, errs *multierror.Error) *multierror.Error {
	for _, node := range nav {
		errs = validateNavNode(node, errs)
		errs = validateNav(node.Children, errs)
	}
	return errs
}

func validateNavNode(node *NavNode, errs *multierror.Error) *multierror.Error {
	if node.Path != "" && len(node.Children) > 0 {
		errs = multierror.Append(errs, fmt.Errorf("nav entry %s must be either a leaf or a section, not both", node.NodePath()))
		return errs
	}
	if node.Path == "" && len(node.Children) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("nav entry %s must contain at least one of these properties: path, children", node.NodePath()))
	}
	if len(node.Children) > 0 && node.Title == "" {
		errs = multierror.Append(errs, fmt.Errorf("nav section with children %s must have a label", node.NodePath()))
	}
	return errs
}

func validateExtensions(m *Manifest, errs *multierror.Error) *multierror.Error {
	if m.MarkdownExtensions != nil && len(m.MarkdownExtensions) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("markdown_extensions must not be an empty list"))
	}
	seen := map[string]struct{}{}
	for _, ext := range m.MarkdownExtensions {
		if ext.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("markdown extension identifier must not be empty"))
			continue
		}
		if _, ok := seen[ext.Name]; ok {
			errs = multierror.Append(errs, fmt.Errorf("markdown extension %s is declared more than once", ext.Name))
		}
		seen[ext.Name] = struct{}{}
	}
	return errs
}

func validatePlugins(m *Manifest, errs *multierror.Error) *multierror.Error {
	if m.Plugins != nil && len(m.Plugins) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("plugins must not be an empty list"))
	}
	seen := map[string]struct{}{}
	for _, plugin := range m.Plugins {
		if plugin == "" {
			errs = multierror.Append(errs, fmt.Errorf("plugin identifier must not be empty"))
			continue
		}
		if _, ok := seen[plugin]; ok {
			errs = multierror.Append(errs, fmt.Errorf("plugin %s is declared more than once", plugin))
		}
		seen[plugin] = struct{}{}
	}
	return errs
}

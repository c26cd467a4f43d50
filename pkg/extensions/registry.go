// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package extensions

import (
	"regexp"

	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// extends Linkify regex by excluding trailing whitespaces and punctuations `[^\s<?!.,:*_~]`
var urlRgx = regexp.MustCompile(`^(?:http|https|ftp)://[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-z]+(?::\d+)?(?:[/#?][-a-zA-Z0-9@:%_+.~#$!?&/=\(\);,'">\^{}\[\]` + "`" + `]*)?[^\s<?!.,:*_~]`)

// extenders maps extension identifiers from the configuration document to
// their parser-side counterparts
var extenders = map[string]goldmark.Extender{
	"tables":            extension.Table,
	"footnotes":         extension.Footnote,
	"def_list":          extension.DefinitionList,
	"linkify":           extension.Linkify,
	"smarty":            extension.Typographer,
	"meta":              meta.Meta,
	"tasklist":          extension.TaskList,
	"pymdownx.tasklist": extension.TaskList,
	"pymdownx.tilde":    extension.Strikethrough,
}

// rendererOnly holds identifiers the external renderer understands but that
// have no parser-side counterpart. They are valid in a document, the parser
// assembled here is simply not affected by them.
var rendererOnly = map[string]struct{}{
	"admonition":           {},
	"attr_list":            {},
	"codehilite":           {},
	"fenced_code":          {},
	"sane_lists":           {},
	"pymdownx.superfences": {},
	"pymdownx.highlight":   {},
	"pymdownx.snippets":    {},
}

// tocIdentifier carries the permalink sub-option and maps to heading ID generation
const tocIdentifier = "toc"

// Known returns true if the identifier is understood, either as a parser
// extension or as a renderer-only feature.
func Known(identifier string) bool {
	if identifier == tocIdentifier {
		return true
	}
	if _, ok := extenders[identifier]; ok {
		return true
	}
	_, ok := rendererOnly[identifier]
	return ok
}

// Build assembles a markdown parser from the extension list of a configuration
// document. Frontmatter support is always on, the way documentation tooling
// needs it regardless of the renderer dialect. Identifiers without a known
// mapping are returned for reporting, they do not fail the assembly since the
// external renderer owns the final word on its plugin surface.
func Build(exts []*manifest.Extension) (goldmark.Markdown, []string) {
	var (
		unknown       []string
		extenderList  = []goldmark.Extender{meta.Meta}
		parserOptions = []parser.Option{}
		seen          = map[string]struct{}{"meta": {}}
	)
	for _, ext := range exts {
		if ext.Name == tocIdentifier {
			parserOptions = append(parserOptions, parser.WithAutoHeadingID())
			continue
		}
		extender, ok := extenders[ext.Name]
		if !ok {
			if _, rendererKnown := rendererOnly[ext.Name]; !rendererKnown {
				unknown = append(unknown, ext.Name)
			}
			continue
		}
		if _, dup := seen[ext.Name]; dup {
			continue
		}
		seen[ext.Name] = struct{}{}
		extenderList = append(extenderList, extender)
	}
	md := goldmark.New(
		goldmark.WithExtensions(extenderList...),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithParserOptions(extension.WithLinkifyURLRegexp(urlRgx)),
	)
	return md, unknown
}

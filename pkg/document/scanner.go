// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Document is the scan result for one markdown file under the content root
type Document struct {
	// Path locates the document relative to the content root
	Path string
	// Title is the frontmatter title or the first level-1 heading
	Title string
	// FrontMatter is the parsed metadata block, nil when absent
	FrontMatter map[string]interface{}
	// LinkDestinations are all link, image and autolink destinations in document order
	LinkDestinations []string
}

// Scanner extracts structure from markdown documents using the parser
// assembled from the site configuration's own extension list
type Scanner struct {
	md goldmark.Markdown
}

// NewScanner creates a Scanner on top of the given markdown parser
func NewScanner(md goldmark.Markdown) *Scanner {
	return &Scanner{md: md}
}

// Scan parses a document and collects its frontmatter, title and link destinations
func (s *Scanner) Scan(path string, source []byte) (*Document, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	root := s.md.Parser().Parse(reader, parser.WithContext(context))
	frontMatter, err := meta.TryGet(context)
	if err != nil {
		return nil, fmt.Errorf("can't parse frontmatter of %s: %w", path, err)
	}
	doc := &Document{
		Path:        path,
		FrontMatter: frontMatter,
	}
	if title, ok := frontMatter["title"].(string); ok {
		doc.Title = title
	}
	err = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Link:
			doc.LinkDestinations = append(doc.LinkDestinations, string(n.Destination))
		case *ast.Image:
			doc.LinkDestinations = append(doc.LinkDestinations, string(n.Destination))
		case *ast.AutoLink:
			doc.LinkDestinations = append(doc.LinkDestinations, string(n.URL(source)))
		case *ast.Heading:
			if doc.Title == "" && n.Level == 1 {
				doc.Title = string(n.Text(source))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't walk document %s: %w", path, err)
	}
	return doc, nil
}

// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gardener/siteconf/pkg/manifest"
)

// TreePrinter renders a resolved navigation tree to an underlying writer
// (e.g. os.Stdout) as an indented hierarchy with run statistics.
type TreePrinter struct {
	Writer io.Writer
	t1     time.Time
}

// NewTreePrinter creates a TreePrinter writing to w
func NewTreePrinter(w io.Writer) *TreePrinter {
	return &TreePrinter{
		Writer: w,
		t1:     time.Now(),
	}
}

// Print formats and writes the navigation tree and its figures
func (p *TreePrinter) Print(nav []*manifest.NavNode) error {
	var b bytes.Buffer
	format(nav, 0, &b)

	stats := manifest.NavStats(nav)
	b.WriteString(fmt.Sprintf("\n%d leaves, %d sections, max depth %d\n", stats.Leaves, stats.Sections, stats.MaxDepth))

	elapsedTime := time.Since(p.t1)
	b.WriteString(fmt.Sprintf("Resolve finished in %f seconds\n", elapsedTime.Seconds()))

	_, err := p.Writer.Write(b.Bytes())
	return err
}

func format(nav []*manifest.NavNode, indent int, b *bytes.Buffer) {
	for _, node := range nav {
		b.Write(bytes.Repeat([]byte("  "), indent))
		if node.IsSection() {
			b.WriteString(fmt.Sprintf("%s\n", node.Name()))
			format(node.Children, indent+1, b)
			continue
		}
		b.WriteString(fmt.Sprintf("%s (%s)\n", node.Name(), node.Path))
	}
}

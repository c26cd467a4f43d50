// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"testing"

	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/stretchr/testify/assert"
)

func TestTreePrinterPrint(t *testing.T) {
	m, err := manifest.Parse([]byte(`
site_name: X
nav:
  - Home: index.md
  - Guide:
      - guide/install.md
      - Tuning: guide/tuning.md`))
	assert.NoError(t, err)

	var out bytes.Buffer
	err = NewTreePrinter(&out).Print(m.Nav)
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Home (index.md)\n")
	assert.Contains(t, out.String(), "Guide\n")
	assert.Contains(t, out.String(), "  install (guide/install.md)\n")
	assert.Contains(t, out.String(), "  Tuning (guide/tuning.md)\n")
	assert.Contains(t, out.String(), "3 leaves, 1 sections, max depth 2")
}

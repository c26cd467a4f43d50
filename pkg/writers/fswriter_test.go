// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSWriterWrite(t *testing.T) {
	root := t.TempDir()
	w := &FSWriter{Root: root}

	err := w.Write("mkdocs.yml", ".", []byte("site_name: X\n"))
	assert.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(root, "mkdocs.yml"))
	assert.NoError(t, err)
	assert.Equal(t, "site_name: X\n", string(content))
}

func TestFSWriterCreatesNestedPaths(t *testing.T) {
	root := t.TempDir()
	w := &FSWriter{Root: root}

	err := w.Write("config", "sites/maggma", []byte("site_name: Maggma Documentation\n"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "sites", "maggma", "config"))
	assert.NoError(t, err)
}

func TestFSWriterSkipsEmptyBlobs(t *testing.T) {
	root := t.TempDir()
	w := &FSWriter{Root: root}

	err := w.Write("mkdocs.yml", "site", nil)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "site"))
	assert.True(t, os.IsNotExist(err))
}

// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FSWriter is an implementation of Writer for writing blobs to the file
// system. Writes are atomic so that a configuration document being rewritten
// in place is never observed half-written by a concurrently running site build.
type FSWriter struct {
	Root string
}

func (f *FSWriter) Write(name, path string, blob []byte) error {
	p := filepath.Join(f.Root, path)

	if len(blob) == 0 {
		return nil
	}
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}

	filePath := filepath.Join(p, name)

	if err := renameio.WriteFile(filePath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}

	return nil
}

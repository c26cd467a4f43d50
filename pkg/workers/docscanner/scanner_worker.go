// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docscanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/gardener/siteconf/pkg/document"
	"github.com/gardener/siteconf/pkg/workers/linkvalidator"
	"github.com/hashicorp/go-multierror"
)

// ScanTask requests scanning of one document under the content root
type ScanTask struct {
	// Path of the document relative to the content root
	Path string
}

// ScannerWorker reads and scans documents under a content root. When a link
// validator is configured, every absolute link destination found in a scanned
// document is validated as well.
type ScannerWorker struct {
	fsys      fs.FS
	scanner   *document.Scanner
	validator *linkvalidator.ValidatorWorker

	mux  sync.Mutex
	docs []*document.Document
}

// NewScannerWorker creates a new ScannerWorker. validator may be nil to scan
// without link validation.
func NewScannerWorker(fsys fs.FS, scanner *document.Scanner, validator *linkvalidator.ValidatorWorker) (*ScannerWorker, error) {
	if fsys == nil || scanner == nil {
		return nil, errors.New("invalid argument: fsys and scanner are mandatory")
	}
	return &ScannerWorker{
		fsys:      fsys,
		scanner:   scanner,
		validator: validator,
	}, nil
}

// Work implements jobs.Worker
func (w *ScannerWorker) Work(ctx context.Context, task interface{}) error {
	t, ok := task.(*ScanTask)
	if !ok {
		return fmt.Errorf("incorrect scan task: %v", task)
	}
	source, err := fs.ReadFile(w.fsys, t.Path)
	if err != nil {
		return fmt.Errorf("can't read document %s: %w", t.Path, err)
	}
	doc, err := w.scanner.Scan(t.Path, source)
	if err != nil {
		return err
	}
	w.mux.Lock()
	w.docs = append(w.docs, doc)
	w.mux.Unlock()
	if w.validator == nil {
		return nil
	}
	var errs *multierror.Error
	for _, dest := range doc.LinkDestinations {
		if !strings.HasPrefix(dest, "http://") && !strings.HasPrefix(dest, "https://") {
			continue
		}
		if err := w.validator.Validate(ctx, dest, t.Path); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Documents returns the scanned documents sorted by path
func (w *ScannerWorker) Documents() []*document.Document {
	w.mux.Lock()
	defer w.mux.Unlock()
	out := make([]*document.Document, len(w.docs))
	copy(out, w.docs)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

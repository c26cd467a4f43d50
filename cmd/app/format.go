// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/gardener/siteconf/pkg/writers"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Normalize a site configuration document",
		Long: `Fmt parses a site configuration document and serializes it back in its
canonical shape: same keys, same ordering for the ordered fields, same values.
The result goes to the standard output, or back into the document with -w.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := makeOptions(cmd)
			if err != nil {
				return err
			}
			return runFmt(opts)
		},
	}
	cmd.Flags().StringP("config", "f", "", "Site configuration document path.")
	_ = cmd.MarkFlagRequired("config")
	cmd.Flags().BoolP("write", "w", false, "Write the result back to the document instead of the standard output.")
	return cmd
}

func runFmt(opts *options) error {
	content, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("can't read configuration document %s: %w", opts.ConfigPath, err)
	}
	m, err := manifest.Parse(content)
	if err != nil {
		return err
	}
	out, err := manifest.Serialize(m)
	if err != nil {
		return err
	}
	if !opts.Write {
		fmt.Print(out)
		return nil
	}
	w := &writers.FSWriter{Root: filepath.Dir(opts.ConfigPath)}
	return w.Write(filepath.Base(opts.ConfigPath), ".", []byte(out))
}

// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/gardener/siteconf/pkg/navigation"
	"github.com/gardener/siteconf/pkg/writers"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve and print the navigation tree",
		Long: `Resolve prints the navigation tree of a site configuration document to the
standard output. When the document declares no nav, the tree is derived from
the content root file hierarchy the way renderers do it by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := makeOptions(cmd)
			if err != nil {
				return err
			}
			return runResolve(opts)
		},
	}
	cmd.Flags().StringP("config", "f", "", "Site configuration document path.")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runResolve(opts *options) error {
	content, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("can't read configuration document %s: %w", opts.ConfigPath, err)
	}
	m, err := manifest.Parse(content)
	if err != nil {
		return err
	}
	nav := m.Nav
	if len(nav) == 0 {
		docsDir := filepath.Join(filepath.Dir(opts.ConfigPath), m.DocsDirOrDefault())
		files, err := navigation.NewResolver(os.DirFS(docsDir)).Tree()
		if err != nil {
			return err
		}
		klog.Infof("no nav declared, deriving it from %s", docsDir)
		nav = navigation.DefaultNav(files)
	}
	return writers.NewTreePrinter(os.Stdout).Print(nav)
}

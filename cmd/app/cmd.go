// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewCommand creates the root command and propagates the context to the Run
// callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteconf",
		Short: "Work with static site configuration documents",
		Long: `siteconf parses, validates, resolves and formats the configuration
documents of static documentation sites: the site identity, theme,
navigation tree, markdown extensions and renderer plugins.`,
	}

	cmd.AddCommand(newValidateCmd(ctx))
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newGenCmdDocs())

	klog.InitFlags(nil)
	addFlags(cmd)

	return cmd
}

// addFlags adds go flags to rootCmd
func addFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

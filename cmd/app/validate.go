// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gardener/siteconf/cmd/configuration"
	"github.com/gardener/siteconf/pkg/document"
	"github.com/gardener/siteconf/pkg/extensions"
	"github.com/gardener/siteconf/pkg/jobs"
	"github.com/gardener/siteconf/pkg/manifest"
	"github.com/gardener/siteconf/pkg/navigation"
	"github.com/gardener/siteconf/pkg/repohost"
	"github.com/gardener/siteconf/pkg/workers/docscanner"
	"github.com/gardener/siteconf/pkg/workers/linkvalidator"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newValidateCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a site configuration document",
		Long: `Validate parses a site configuration document and verifies its schema.
With --check-docs every nav leaf is resolved against the content root and
documents missing from the nav are reported. With --check-links the referenced
documents are scanned and their absolute link destinations are validated.
With --check-repo the repo_url is verified against its repository host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := makeOptions(cmd)
			if err != nil {
				return err
			}
			config, err := new(configuration.DefaultLoader).Load()
			if err != nil {
				return err
			}
			return runValidate(ctx, opts, config)
		},
	}
	cmd.Flags().StringP("config", "f", "", "Site configuration document path.")
	_ = cmd.MarkFlagRequired("config")
	cmd.Flags().Bool("check-docs", false, "Resolve nav references against the content root.")
	cmd.Flags().Bool("check-links", false, "Scan referenced documents and validate their absolute links.")
	cmd.Flags().Bool("check-repo", false, "Verify that repo_url points at an existing repository.")
	cmd.Flags().Bool("fail-fast", false, "Fail-fast vs fault tolerant operation.")
	cmd.Flags().Int("scan-workers", 10, "Number of parallel workers scanning documents.")
	cmd.Flags().String("github-oauth-token", "", "GitHub personal token authorizing read access to the repo_url host.")
	cmd.Flags().String("cache-dir", "", "Cache directory, used for the persistent HTTP cache.")
	cmd.Flags().StringSlice("hosts-to-report", nil, "Link hosts reported as findings during link validation.")
	return cmd
}

func runValidate(ctx context.Context, opts *options, config *configuration.Config) error {
	klog.Infof("Configuration document: %s", opts.ConfigPath)
	content, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("can't read configuration document %s: %w", opts.ConfigPath, err)
	}
	m, err := manifest.Parse(content)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	if err := manifest.ValidateManifest(m); err != nil {
		errs = multierror.Append(errs, err)
	}
	for _, ext := range m.MarkdownExtensions {
		if !extensions.Known(ext.Name) {
			klog.Warningf("markdown extension %s has no known mapping and is passed through to the renderer\n", ext.Name)
		}
	}

	if opts.CheckDocs || opts.CheckLinks {
		if err := checkDocs(ctx, opts, config, m); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if opts.CheckRepo && m.RepoURL != "" {
		if err := checkRepo(ctx, opts, config, m.RepoURL); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	klog.Infof("%s is valid", opts.ConfigPath)
	return nil
}

// checkDocs resolves the nav against the content root and optionally scans
// the referenced documents, validating their links
func checkDocs(ctx context.Context, opts *options, config *configuration.Config, m *manifest.Manifest) error {
	docsDir := filepath.Join(filepath.Dir(opts.ConfigPath), m.DocsDirOrDefault())
	if _, err := os.Stat(docsDir); err != nil {
		return fmt.Errorf("can't access content root %s: %w", docsDir, err)
	}
	docsFS := os.DirFS(docsDir)
	resolver := navigation.NewResolver(docsFS)

	nav := m.Nav
	if len(nav) == 0 {
		files, err := resolver.Tree()
		if err != nil {
			return err
		}
		nav = navigation.DefaultNav(files)
	}
	report, err := resolver.Resolve(nav)
	if err != nil {
		return err
	}
	var errs *multierror.Error
	for _, dangling := range report.Dangling {
		errs = multierror.Append(errs, fmt.Errorf("nav reference %s does not resolve under %s", dangling, docsDir))
	}
	for _, orphan := range report.Orphans {
		klog.Warningf("document %s is not referenced by the nav\n", orphan)
	}
	if !opts.CheckLinks {
		return errs.ErrorOrNil()
	}

	md, _ := extensions.Build(m.MarkdownExtensions)
	validator, err := newLinkValidator(ctx, opts, config)
	if err != nil {
		return multierror.Append(errs, err).ErrorOrNil()
	}
	scanWorker, err := docscanner.NewScannerWorker(docsFS, document.NewScanner(md), validator)
	if err != nil {
		return multierror.Append(errs, err).ErrorOrNil()
	}
	tasks := make([]interface{}, 0, len(report.Referenced))
	for _, path := range report.Referenced {
		tasks = append(tasks, &docscanner.ScanTask{Path: path})
	}
	job := &jobs.Job{
		MaxWorkers: opts.ScanWorkers,
		Worker:     scanWorker,
		FailFast:   opts.FailFast,
	}
	if err := job.Dispatch(ctx, tasks); err != nil {
		errs = multierror.Append(errs, err)
	}
	klog.Infof("scanned %d documents", len(scanWorker.Documents()))
	return errs.ErrorOrNil()
}

// checkRepo verifies repo_url against its repository host
func checkRepo(ctx context.Context, opts *options, config *configuration.Config, repoURL string) error {
	u, err := url.Parse(repoURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("repo_url %s must be an absolute URL", repoURL)
	}
	instance := u.Scheme + "://" + u.Host
	token := tokenForHost(opts, config, u.Host)
	cachePath := filepath.Join(cacheHomeDir(opts, config), "diskv", u.Host)
	client, _, err := repohost.BuildClient(ctx, token, instance, cachePath)
	if err != nil {
		return err
	}
	return repohost.Verify(ctx, client.Repositories, repoURL)
}

// newLinkValidator assembles the link validator on top of the persistent
// HTTP cache
func newLinkValidator(ctx context.Context, opts *options, config *configuration.Config) (*linkvalidator.ValidatorWorker, error) {
	cachePath := filepath.Join(cacheHomeDir(opts, config), "diskv", "links")
	_, httpClient, err := repohost.BuildClient(ctx, "", "https://github.com", cachePath)
	if err != nil {
		return nil, err
	}
	return linkvalidator.NewValidatorWorker(httpClient, hostsToReport(opts, config))
}

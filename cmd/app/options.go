// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"

	"github.com/gardener/siteconf/cmd/configuration"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
	"k8s.io/utils/pointer"
)

// EnvCacheDirKey overrides the persistent HTTP cache location
const EnvCacheDirKey = "SITECONF_CACHE_DIR"

// options collects the flag values of a command invocation.
// Flags overwrite values from the tool configuration file.
type options struct {
	ConfigPath    string   `mapstructure:"config"`
	FailFast      bool     `mapstructure:"fail-fast"`
	ScanWorkers   int      `mapstructure:"scan-workers"`
	CheckDocs     bool     `mapstructure:"check-docs"`
	CheckLinks    bool     `mapstructure:"check-links"`
	CheckRepo     bool     `mapstructure:"check-repo"`
	GhOAuthToken  string   `mapstructure:"github-oauth-token"`
	CacheHomeDir  string   `mapstructure:"cache-dir"`
	HostsToReport []string `mapstructure:"hosts-to-report"`
	Write         bool     `mapstructure:"write"`
}

// makeOptions unmarshals the command flags through viper
func makeOptions(cmd *cobra.Command) (*options, error) {
	vip := viper.New()
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	opts := &options{}
	if err := vip.Unmarshal(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// tokenForHost picks the OAuth token for a repository host.
// A token provided by flag overrides the tool configuration.
func tokenForHost(opts *options, config *configuration.Config, host string) string {
	if opts.GhOAuthToken != "" {
		if credentialsFor(config, host) != nil {
			klog.Warningf("%s token is overridden by the provided token with `--github-oauth-token` flag\n", host)
		}
		return opts.GhOAuthToken
	}
	cred := credentialsFor(config, host)
	if cred == nil {
		klog.Infof("using unauthenticated %s access\n", host)
		// credentials for the host are not set and default to empty
		cred = &configuration.Credentials{
			Host:       host,
			Username:   pointer.StringPtr(""),
			OAuthToken: pointer.StringPtr(""),
		}
	}
	if cred.OAuthToken == nil {
		// when no token is specified consider the configuration incorrect
		klog.Warningf("configuration is considered incorrect because of missing oauth token for host: %s\n", cred.Host)
		return ""
	}
	return *cred.OAuthToken
}

func credentialsFor(config *configuration.Config, host string) *configuration.Credentials {
	for _, cred := range config.Credentials {
		if cred.Host == host {
			return cred
		}
	}
	return nil
}

// cacheHomeDir resolves the persistent HTTP cache directory: environment
// variable, flag, tool configuration, then the siteconf home directory.
func cacheHomeDir(opts *options, config *configuration.Config) string {
	if cacheDir, found := os.LookupEnv(EnvCacheDirKey); found {
		if cacheDir == "" {
			klog.Warningf("%s is set to empty string. siteconf will use the current dir for the cache\n", EnvCacheDirKey)
		}
		return cacheDir
	}

	if opts.CacheHomeDir != "" {
		return opts.CacheHomeDir
	}

	if config != nil && config.CacheHome != nil {
		return *config.CacheHome
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	// default value $HOME/.siteconf
	return filepath.Join(userHomeDir, configuration.SiteconfHomeDir)
}

// hostsToReport merges the flag values with the tool configuration
func hostsToReport(opts *options, config *configuration.Config) []string {
	hosts := append([]string{}, config.HostsToReport...)
	for _, h := range opts.HostsToReport {
		if !contains(hosts, h) {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

func contains(s []string, str string) bool {
	for _, e := range s {
		if e == str {
			return true
		}
	}
	return false
}

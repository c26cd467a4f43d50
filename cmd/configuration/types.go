// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config is the optional tool-level configuration loaded from the siteconf
// home directory. It carries operator settings that do not belong in the site
// configuration documents themselves.
type Config struct {
	// Credentials per repository host, used when verifying repo_url
	Credentials []*Credentials `yaml:"credentials,omitempty"`
	// CacheHome overrides the directory for the persistent HTTP cache
	CacheHome *string `yaml:"cacheHome,omitempty"`
	// HostsToReport are link hosts that should be reported as findings
	// e.g. hosts scheduled for decommissioning
	HostsToReport []string `yaml:"hostsToReport,omitempty"`
}

// Credentials holds authentication for a repository host
type Credentials struct {
	Host       string  `yaml:"host"`
	Username   *string `yaml:"username,omitempty"`
	OAuthToken *string `yaml:"oauthToken,omitempty"`
}

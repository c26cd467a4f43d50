// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"path/filepath"
	"testing"

	"github.com/gardener/siteconf/cmd/configuration"
	"github.com/stretchr/testify/assert"
	"k8s.io/utils/pointer"
)

func TestTokenForHost(t *testing.T) {
	config := &configuration.Config{
		Credentials: []*configuration.Credentials{
			{Host: "github.com", OAuthToken: pointer.StringPtr("configured-token")},
			{Host: "github.example.org"},
		},
	}
	testCases := []struct {
		name     string
		opts     *options
		host     string
		expToken string
	}{
		{
			name:     "flag overrides configuration",
			opts:     &options{GhOAuthToken: "flag-token"},
			host:     "github.com",
			expToken: "flag-token",
		},
		{
			name:     "configured credentials",
			opts:     &options{},
			host:     "github.com",
			expToken: "configured-token",
		},
		{
			name:     "unknown host defaults to unauthenticated",
			opts:     &options{},
			host:     "github.acme.org",
			expToken: "",
		},
		{
			name:     "credentials without a token",
			opts:     &options{},
			host:     "github.example.org",
			expToken: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expToken, tokenForHost(tc.opts, config, tc.host))
		})
	}
}

func TestCacheHomeDir(t *testing.T) {
	config := &configuration.Config{CacheHome: pointer.StringPtr("/var/cache/siteconf")}

	t.Setenv(EnvCacheDirKey, "/tmp/env-cache")
	assert.Equal(t, "/tmp/env-cache", cacheHomeDir(&options{CacheHomeDir: "/tmp/flag-cache"}, config))

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvCacheDirKey, "")
	assert.Equal(t, "", cacheHomeDir(&options{}, config))
}

func TestCacheHomeDirPrecedenceWithoutEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	config := &configuration.Config{CacheHome: pointer.StringPtr("/var/cache/siteconf")}

	assert.Equal(t, "/tmp/flag-cache", cacheHomeDir(&options{CacheHomeDir: "/tmp/flag-cache"}, config))
	assert.Equal(t, "/var/cache/siteconf", cacheHomeDir(&options{}, config))
	assert.Equal(t, filepath.Join(home, configuration.SiteconfHomeDir), cacheHomeDir(&options{}, &configuration.Config{}))
}

func TestHostsToReport(t *testing.T) {
	config := &configuration.Config{HostsToReport: []string{"old-wiki.example.org"}}
	opts := &options{HostsToReport: []string{"old-wiki.example.org", "legacy.example.org"}}
	assert.Equal(t, []string{"old-wiki.example.org", "legacy.example.org"}, hostsToReport(opts, config))
}

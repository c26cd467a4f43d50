// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repohost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
)

// BuildClient assembles a GitHub API client for the given host, with a
// persistent disk cache at cachePath and an OAuth token when one is provided.
func BuildClient(ctx context.Context, accessToken string, host string, cachePath string) (*github.Client, *http.Client, error) {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}

	httpClient := cacheTransport.Client()

	if host == "https://github.com" {
		return github.NewClient(httpClient), httpClient, nil
	}
	client, err := github.NewEnterpriseClient(host, "", httpClient)
	return client, httpClient, err
}

// Verify checks that repoURL points at an existing repository on the host the
// client talks to.
func Verify(ctx context.Context, repositories RepositoriesService, repoURL string) error {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return err
	}
	_, resp, err := repositories.Get(ctx, owner, name)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("repo_url %s does not exist", repoURL)
	}
	if err != nil {
		return fmt.Errorf("can't verify repo_url %s: %w", repoURL, err)
	}
	return nil
}

// RepositoriesService is the part of the GitHub API surface Verify needs,
// extracted so that tests can substitute it
type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// ParseRepoURL extracts the owner and repository name from a repository URL
func ParseRepoURL(repoURL string) (owner string, name string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("can't parse repo_url %s: %w", repoURL, err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("repo_url %s has no owner/repository path", repoURL)
	}
	return segments[0], segments[1], nil
}

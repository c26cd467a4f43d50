// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkvalidator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gardener/siteconf/pkg/httpclient"
	"k8s.io/klog/v2"
)

// ValidatorWorker checks that absolute link destinations declared in a site's
// documents and configuration are reachable
type ValidatorWorker struct {
	client        httpclient.Client
	validated     *linkSet
	hostsToReport []string
}

// NewValidatorWorker creates a new ValidatorWorker
func NewValidatorWorker(client httpclient.Client, hostsToReport []string) (*ValidatorWorker, error) {
	if client == nil {
		return nil, errors.New("invalid argument: client is nil")
	}
	return &ValidatorWorker{
		client,
		&linkSet{
			set: make(map[string]struct{}),
		},
		hostsToReport,
	}, nil
}

// Validate validates a link destination found in contentSourcePath
func (v *ValidatorWorker) Validate(ctx context.Context, linkDestination string, contentSourcePath string) error {
	var (
		req  *http.Request
		resp *http.Response
	)
	linkURL, err := url.Parse(strings.TrimSuffix(linkDestination, "/"))
	if err != nil {
		return fmt.Errorf("error when parsing link in %s : %w", contentSourcePath, err)
	}
	// ignore sample hosts e.g. localhost
	host := linkURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return nil
	}
	if slices.Contains(v.hostsToReport, linkURL.Host) {
		return fmt.Errorf("%s has link %s with host to report", contentSourcePath, linkDestination)
	}
	// unify links destination by excluding query, fragment & user info
	u := &url.URL{
		Scheme: linkURL.Scheme,
		Host:   linkURL.Host,
		Path:   linkURL.Path,
	}
	unifiedURL := u.String()
	if v.validated.exist(unifiedURL) {
		return nil
	}

	absLinkDestination := linkURL.String()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// try HEAD
	if req, err = http.NewRequestWithContext(ctx, http.MethodHead, absLinkDestination, nil); err != nil {
		return fmt.Errorf("failed to prepare HEAD validation request: %v", err)
	}
	if resp, err = doValidation(req, v.client); err != nil {
		klog.Warningf("failed to validate absolute link for %s from source %s: %v\n", linkDestination, contentSourcePath, err)
	} else if resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusUnauthorized {
		// on error status code different from authorization errors
		// retry GET
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second) // reset the context for the GET request
		defer cancel()
		if req, err = http.NewRequestWithContext(ctx, http.MethodGet, absLinkDestination, nil); err != nil {
			return fmt.Errorf("failed to prepare GET validation request: %v", err)
		}
		if resp, err = doValidation(req, v.client); err != nil {
			klog.Warningf("failed to validate absolute link for %s from source %s: %v\n", linkDestination, contentSourcePath, err)
		} else if resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusUnauthorized {
			return fmt.Errorf("%s has unreachable link %s: HTTP Status %s", contentSourcePath, linkDestination, resp.Status)
		}
	}
	v.validated.add(unifiedURL)
	return nil
}

// doValidation performs several attempts to execute http request if http status code is 429
func doValidation(req *http.Request, client httpclient.Client) (*http.Response, error) {
	intervals := []int{1, 5, 10, 20}
	resp, err := client.Do(req)
	if err != nil {
		return resp, err
	}
	resp.Body.Close()
	attempts := 0
	for resp.StatusCode == http.StatusTooManyRequests && attempts < len(intervals)-1 {
		klog.Warningf("Retrying request!")
		sleep := intervals[attempts] + rand.Intn(attempts+1)
		// check for Retry-After Header and overwrite sleep time
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			// support only value in seconds <= 5 min
			var after int
			if after, err = strconv.Atoi(retryAfter); err == nil && after <= 5*60 {
				sleep = after
			}
		}
		time.Sleep(time.Duration(sleep) * time.Second)
		resp, err = client.Do(req)
		if err != nil {
			return resp, err
		}
		resp.Body.Close()
		attempts++
	}
	return resp, err
}

// linkSet holds link destinations that have been successfully validated
// used to avoid redundant checks & HTTP Status 429
type linkSet struct {
	set map[string]struct{}
	mux sync.RWMutex
}

func (l *linkSet) exist(dest string) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	_, ok := l.set[dest]
	return ok
}

func (l *linkSet) add(dest string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.set[dest] = struct{}{}
}

// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package httpclient

import "net/http"

// Client abstracts the HTTP client for workers so that tests can substitute it
type Client interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

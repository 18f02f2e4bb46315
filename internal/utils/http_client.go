// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an [HTTPClient] bound to baseURL.
//
// Behavior:
//   - Every request is resolved against baseURL
//   - Every request sends "Accept: application/json"
//   - A positive timeout is applied per request; zero keeps resty's default
//     of no timeout
//
// Parameters:
//
//	baseURL - server root, e.g. "http://localhost:8080"
//	timeout - per-request timeout, zero to disable
//
// Returns:
//
//	*HTTPClient - configured client ready for use by the adapters
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

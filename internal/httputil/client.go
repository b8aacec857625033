// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the HTTP client used for remote lookups.
package httputil

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/doidb/pkg/types"
)

// DefaultTimeout applies when HTTPConfig.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// NewClient returns a client with the configured timeout that stamps every
// request with the configured User-Agent. Requests are sent once; there is
// no retry on failure.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.UserAgent != "" {
		transport = &userAgentTransport{base: transport, userAgent: cfg.UserAgent}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// UserAgent composes a User-Agent value. With a contact address it follows
// the "product (mailto:addr)" convention DOI registries use to route
// identified clients.
func UserAgent(product, mailto string) string {
	if mailto == "" {
		return product
	}
	return fmt.Sprintf("%s (mailto:%s)", product, mailto)
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

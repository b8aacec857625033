// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doidb/pkg/types"
)

func newUAServer(t *testing.T, got *string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestNewClientSetsUserAgent(t *testing.T) {
	var got string
	ts := newUAServer(t, &got)

	client := NewClient(types.HTTPConfig{UserAgent: "doidb/test"})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "doidb/test", got)
	assert.Empty(t, req.Header.Get("User-Agent"), "caller's request must not be modified")
}

func TestNewClientKeepsExplicitUserAgent(t *testing.T) {
	var got string
	ts := newUAServer(t, &got)

	client := NewClient(types.HTTPConfig{UserAgent: "doidb/test"})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom/1.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom/1.0", got)
}

func TestNewClientTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(types.HTTPConfig{}).Timeout)
	assert.Equal(t, 5*time.Second, NewClient(types.HTTPConfig{Timeout: 5 * time.Second}).Timeout)
}

func TestNewClientTimeoutExpires(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 50 * time.Millisecond})
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "doidb/0.1", UserAgent("doidb/0.1", ""))
	assert.Equal(t, "doidb/0.1 (mailto:me@example.org)", UserAgent("doidb/0.1", "me@example.org"))
}

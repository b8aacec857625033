// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves citations and journal abbreviations from remote
// services.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/doidb/pkg/types"
)

// Default endpoints, used when FetchConfig leaves them empty.
const (
	DefaultBaseURL       = "https://doi.org/"
	DefaultAbbrevBaseURL = "https://images.webofknowledge.com/images/help/WOS/"
)

// bibtexMediaType asks the resolver for content negotiation to BibTeX.
const bibtexMediaType = "application/x-bibtex"

// Fetcher issues lookups against the DOI resolver and the abbreviation
// lists. Each call sends a single request with no retry.
type Fetcher struct {
	client        *http.Client
	baseURL       string
	abbrevBaseURL string
}

// New returns a Fetcher using client. A nil client means http.DefaultClient.
func New(client *http.Client, cfg types.FetchConfig) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:        client,
		baseURL:       withSlash(cfg.BaseURL, DefaultBaseURL),
		abbrevBaseURL: withSlash(cfg.AbbrevBaseURL, DefaultAbbrevBaseURL),
	}
}

// Citation asks the resolver for the BibTeX record of doi and returns the
// response body whatever the status code: the resolver reports unknown DOIs
// in the body, so callers judge the text with citation.Valid.
func (f *Fetcher) Citation(ctx context.Context, doi string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+escapeDOI(doi), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", bibtexMediaType)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", doi, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response for %s: %w", doi, err)
	}

	slog.Debug("resolver responded", "doi", doi, "status", resp.StatusCode, "bytes", len(body))
	return string(body), nil
}

// escapeDOI percent-encodes each path segment of doi. DOI suffixes may
// contain '#', '?' or '%', which would otherwise be read as URL syntax.
func escapeDOI(doi string) string {
	segments := strings.Split(doi, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func withSlash(base, fallback string) string {
	if base == "" {
		return fallback
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

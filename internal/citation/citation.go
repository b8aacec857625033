// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation decides whether resolver output is a usable citation.
//
// The resolver reports unknown DOIs in the response body rather than the
// status code, so the check is a substring heuristic: a genuine record that
// happens to contain the marker text is rejected too.
package citation

import "strings"

// notFoundMarker is the text the resolver's error page carries.
const notFoundMarker = "DOI Not Found"

// Valid reports whether text is non-blank and free of the resolver's
// not-found marker.
func Valid(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return !strings.Contains(text, notFoundMarker)
}

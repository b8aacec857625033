// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one cached citation: a normalized DOI and the BibTeX text the
// resolver returned for it.
type Entry struct {
	// DOI is the normalized identifier (e.g. "10.1145/1234567.1234568").
	DOI string `json:"doi" yaml:"doi"`

	// Citation is the BibTeX record, stored verbatim.
	Citation string `json:"citation" yaml:"citation"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes cached citations in formats other tools consume: a
// BibTeX bibliography, JSON or YAML listings, or a SQLite table.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doidb/pkg/types"
)

// Write encodes entries to w in a stream format. SQLite needs a file path
// and is handled by SQLite instead.
func Write(w io.Writer, format types.ExportFormat, entries []types.Entry) error {
	switch format {
	case types.ExportBibTeX:
		return BibTeX(w, entries)
	case types.ExportJSON:
		return JSON(w, entries)
	case types.ExportYAML:
		return YAML(w, entries)
	default:
		return fmt.Errorf("format %q cannot be written to a stream", format)
	}
}

// BibTeX writes the citations as a .bib file: one record per entry,
// separated by blank lines.
func BibTeX(w io.Writer, entries []types.Entry) error {
	for i, e := range entries {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", sep, strings.TrimSpace(e.Citation)); err != nil {
			return fmt.Errorf("writing %s: %w", e.DOI, err)
		}
	}
	return nil
}

// JSON writes entries as an indented JSON array.
func JSON(w io.Writer, entries []types.Entry) error {
	if entries == nil {
		entries = []types.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// YAML writes entries as a YAML list.
func YAML(w io.Writer, entries []types.Entry) error {
	if entries == nil {
		entries = []types.Entry{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

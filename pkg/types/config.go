// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "doidb/0.1 (mailto:someone@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for remote citation and abbreviation lookups.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the DOI resolver base; the DOI is appended to it verbatim
	// (default "https://doi.org/").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// AbbrevBaseURL is the directory holding the Web of Science journal
	// abbreviation lists ("A_abrvjt.html", "B_abrvjt.html", ...).
	AbbrevBaseURL string `json:"abbrev_base_url" yaml:"abbrev_base_url"`
}

// ExportFormat selects the output format of the export command.
type ExportFormat string

const (
	ExportBibTeX ExportFormat = "bib"
	ExportJSON   ExportFormat = "json"
	ExportYAML   ExportFormat = "yaml"
	ExportSQLite ExportFormat = "sqlite"
)

// ParseExportFormat validates s as an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportBibTeX, ExportJSON, ExportYAML, ExportSQLite:
		return f, nil
	case "bibtex":
		return ExportBibTeX, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use bib, json, yaml, or sqlite", s)
	}
}

// ExportConfig holds settings for the export command.
type ExportConfig struct {
	// Format selects the output format.
	Format ExportFormat `json:"format" yaml:"format"`

	// OutPath is the destination file. Empty means stdout, except for
	// sqlite, which always needs a file.
	OutPath string `json:"out_path" yaml:"out_path"`
}

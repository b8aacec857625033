// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doidb/internal/export"
	"github.com/pdiddy/doidb/internal/store"
	"github.com/pdiddy/doidb/pkg/types"
)

func newExportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export cached citations as BibTeX, JSON, YAML, or SQLite",
		Long: `Export writes every citation in FILE in another format:

  bib     a BibTeX bibliography (default)
  json    a JSON array of {doi, citation} objects
  yaml    a YAML list of {doi, citation} objects
  sqlite  a "citations" table in a SQLite database

Output goes to stdout unless --out is given. The sqlite format always
writes a file; without --out it is FILE with a .db extension.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := types.ParseExportFormat(format)
			if err != nil {
				return usageError(err)
			}
			cfg := types.ExportConfig{Format: f, OutPath: out}

			s, err := store.Load(args[0])
			if err != nil {
				return err
			}
			entries := s.Entries()

			if cfg.Format == types.ExportSQLite && cfg.OutPath == "" {
				cfg.OutPath = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".db"
			}
			if cfg.OutPath != "" && samePath(cfg.OutPath, args[0]) {
				return usageError(fmt.Errorf("export output %s would overwrite the store; pass --out", cfg.OutPath))
			}

			if cfg.Format == types.ExportSQLite {
				if err := export.SQLite(cmd.Context(), cfg.OutPath, entries); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d citation(s) to %s\n", len(entries), cfg.OutPath)
				return nil
			}

			if cfg.OutPath == "" {
				return export.Write(cmd.OutOrStdout(), cfg.Format, entries)
			}
			return writeExportFile(cfg, entries)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(types.ExportBibTeX), "export format: bib, json, yaml, or sqlite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	return cmd
}

func writeExportFile(cfg types.ExportConfig, entries []types.Entry) error {
	f, err := os.Create(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutPath, err)
	}
	if err := export.Write(f, cfg.Format, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.OutPath, err)
	}
	return nil
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

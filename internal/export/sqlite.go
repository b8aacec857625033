// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/doidb/pkg/types"
)

const createCitations = `CREATE TABLE IF NOT EXISTS citations (
	doi TEXT PRIMARY KEY,
	bibtex TEXT NOT NULL
)`

// SQLite writes entries into the citations table of the database at path,
// creating the file and table as needed. Existing rows for the same DOI are
// replaced; rows for other DOIs are kept.
func SQLite(ctx context.Context, path string, entries []types.Entry) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createCitations); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO citations (doi, bibtex) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.DOI, e.Citation); err != nil {
			return fmt.Errorf("inserting %s: %w", e.DOI, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

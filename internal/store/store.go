// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps the DOI to citation mapping in a single JSON file.
//
// The file holds one JSON object whose keys are normalized DOIs and whose
// values are BibTeX records. A Store is loaded in full, mutated in memory,
// and every mutation rewrites the whole file. There is no locking: two
// processes writing the same file race and the last writer wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/doidb/internal/citation"
	"github.com/pdiddy/doidb/internal/doi"
	"github.com/pdiddy/doidb/pkg/types"
)

var (
	// ErrNotFound is returned by Get and Delete for a DOI the store does not hold.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCitation is returned by Set when the citation fails
	// citation.Valid. The store is left untouched.
	ErrInvalidCitation = errors.New("invalid citation")
)

// DecodeError reports a store file that exists but does not hold a JSON
// object of strings.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Store is the in-memory form of one store file.
type Store struct {
	path    string
	entries map[string]string
}

// Load reads the store at path. A missing file is created holding an empty
// object. Anything that is not a JSON object of strings, including an empty
// file, is a *DecodeError.
func Load(path string) (*Store, error) {
	s := &Store{path: path, entries: map[string]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("creating store", "path", path)
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	// A literal null decodes into a nil map.
	if s.entries == nil {
		s.entries = map[string]string{}
	}

	slog.Debug("loaded store", "path", path, "entries", len(s.entries))
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of cached citations.
func (s *Store) Len() int {
	return len(s.entries)
}

// List returns every DOI in the store in lexical order.
func (s *Store) List() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the store contents as rows ordered by DOI.
func (s *Store) Entries() []types.Entry {
	keys := s.List()
	entries := make([]types.Entry, len(keys))
	for i, k := range keys {
		entries[i] = types.Entry{DOI: k, Citation: s.entries[k]}
	}
	return entries
}

// Has reports whether the store holds a citation for id.
func (s *Store) Has(id string) bool {
	_, ok := s.entries[doi.Normalize(id)]
	return ok
}

// Get returns the citation cached for id.
func (s *Store) Get(id string) (string, error) {
	key := doi.Normalize(id)
	c, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("%s not in %s: %w", key, s.path, ErrNotFound)
	}
	return c, nil
}

// Set stores text as the citation for id and saves the file. Invalid
// citations are refused with ErrInvalidCitation without touching the file.
func (s *Store) Set(id, text string) error {
	key := doi.Normalize(id)
	if !citation.Valid(text) {
		return fmt.Errorf("%s: %w", key, ErrInvalidCitation)
	}
	s.entries[key] = text
	return s.Save()
}

// Delete removes the citation for id and saves the file.
func (s *Store) Delete(id string) error {
	key := doi.Normalize(id)
	if _, ok := s.entries[key]; !ok {
		return fmt.Errorf("%s not in %s: %w", key, s.path, ErrNotFound)
	}
	delete(s.entries, key)
	return s.Save()
}

// Save overwrites the store file with the current mapping. The data is
// written to a temporary file beside the target and renamed over it. A
// symlinked path is followed so the link survives, and an existing file
// keeps its permissions; a new file gets 0644.
func (s *Store) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.entries); err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	target := s.path
	if resolved, err := filepath.EvalSymlinks(s.path); err == nil {
		target = resolved
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(target), ".doidb-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(buf.Bytes())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting store permissions: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	slog.Debug("saved store", "path", target, "entries", len(s.entries))
	return nil
}

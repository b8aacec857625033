// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode"
)

// ErrAbbreviationNotFound is returned when the abbreviation list has no
// entry for the requested journal.
var ErrAbbreviationNotFound = errors.New("abbreviation not found")

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Abbreviation returns the ISO abbreviation of journal. The lists are split
// by first letter; each journal is one line holding the full title,
// followed by a line whose text after the first tab is the abbreviation.
func (f *Fetcher) Abbreviation(ctx context.Context, journal string) (string, error) {
	title := strings.ToUpper(strings.Join(strings.Fields(journal), " "))
	if title == "" {
		return "", fmt.Errorf("empty journal title")
	}

	url := f.abbrevBaseURL + listName(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("abbreviation list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("abbreviation list returned HTTP %d", resp.StatusCode)
	}

	return findAbbreviation(resp.Body, title)
}

// listName picks the list file holding title: "J_abrvjt.html" for titles
// starting with J, "0-9_abrvjt.html" for titles starting with a digit.
func listName(title string) string {
	first := []rune(title)[0]
	if unicode.IsDigit(first) {
		return "0-9_abrvjt.html"
	}
	return string(first) + "_abrvjt.html"
}

func findAbbreviation(r io.Reader, title string) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	found := false
	for sc.Scan() {
		line := sc.Text()
		if found {
			_, abbrev, ok := strings.Cut(line, "\t")
			if !ok {
				break
			}
			return stripTags(abbrev), nil
		}
		if stripTags(line) == title {
			slog.Debug("matched journal", "line", line)
			found = true
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading abbreviation list: %w", err)
	}
	return "", fmt.Errorf("%s: %w", title, ErrAbbreviationNotFound)
}

func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

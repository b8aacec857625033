// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi normalizes Digital Object Identifiers into the form used as
// store keys.
package doi

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// resolverPrefixes are stripped from the front of an identifier, compared
// case-insensitively. The first match wins.
var resolverPrefixes = []string{
	"http://dx.doi.org/",
	"https://dx.doi.org/",
	"http://doi.org/",
	"https://doi.org/",
	"doi:",
}

// pattern matches DOIs: "10.1145/1234567.1234568", "10.1/xyz".
var pattern = regexp.MustCompile(`^10\.\d+(?:\.\d+)*/\S+$`)

// Normalize trims whitespace, strips a known resolver URL prefix, and puts
// the result in NFC form. Two spellings of the same DOI normalize to the
// same key.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for _, p := range resolverPrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			s = strings.TrimSpace(s[len(p):])
			break
		}
	}
	return norm.NFC.String(s)
}

// Valid reports whether s, already normalized, has the shape of a DOI.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

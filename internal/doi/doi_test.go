// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", "10.1/xyz", "10.1/xyz"},
		{"dx.doi.org http", "http://dx.doi.org/10.1/xyz", "10.1/xyz"},
		{"dx.doi.org https", "https://dx.doi.org/10.1/xyz", "10.1/xyz"},
		{"doi.org https", "https://doi.org/10.1038/s41586-024-07487-w", "10.1038/s41586-024-07487-w"},
		{"doi scheme", "doi:10.1145/1234567.1234568", "10.1145/1234567.1234568"},
		{"uppercase prefix", "HTTP://DX.DOI.ORG/10.1/xyz", "10.1/xyz"},
		{"whitespace", "  http://dx.doi.org/10.1/xyz \n", "10.1/xyz"},
		{"only first prefix stripped", "doi:doi:10.1/xyz", "doi:10.1/xyz"},
		{"suffix case kept", "10.1/ABC", "10.1/ABC"},
		{"decomposed to composed", "10.1/cafe\u0301", "10.1/caf\u00e9"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeSameKey(t *testing.T) {
	assert.Equal(t, Normalize("10.1/xyz"), Normalize("http://dx.doi.org/10.1/xyz"))
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.1/xyz", true},
		{"10.1145/1234567.1234568", true},
		{"10.1000.10/123456", true},
		{"10.1038/s41586-024-07487-w", true},
		{"11.1/xyz", false},
		{"10.1/", false},
		{"10./xyz", false},
		{"10.1/has space", false},
		{"2301.07041", false},
		{"http://dx.doi.org/10.1/xyz", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input))
		})
	}
}

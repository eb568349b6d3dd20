package wikidata

import (
	"strings"

	"github.com/gnames/gnlib"
	"golang.org/x/text/unicode/norm"
)

// Normalize repairs broken UTF-8, converts the string to NFC and trims
// surrounding whitespace.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = gnlib.FixUtf8(s)
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}

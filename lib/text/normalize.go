package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize enforces NFKC encoding and strips surrounding whitespace. Input
// arrives from web forms and chat clients where full-width variants and
// decomposed Hangul are common; recognition patterns assume composed forms.
func Normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

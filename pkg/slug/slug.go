// Package slug turns free-form titles into URL-safe identifiers and picks
// the first free candidate among base, base-2, base-3, ...
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a title contains nothing slug-worthy.
const Fallback = "project"

// MaxAttempts bounds the probing loop. Reaching it means the taken func is
// misbehaving, not that a real site has that many duplicate titles.
const MaxAttempts = 10000

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	valid    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make lowercases s, folds accented letters to ASCII, collapses every run of
// non-alphanumeric characters to a single hyphen and trims hyphens at both ends.
// The result may be empty.
func Make(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}
	out := nonAlnum.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(out, "-")
}

// Base is Make with the Fallback applied to an empty result.
func Base(title string) string {
	if b := Make(title); b != "" {
		return b
	}
	return Fallback
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return valid.MatchString(s)
}

// Candidate returns the n-th probe for base: base itself for n <= 1,
// otherwise base-n.
func Candidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// Unique probes base, base-2, base-3, ... and returns the first candidate
// for which taken reports false. Errors from taken abort the search.
func Unique(base string, taken func(candidate string) (bool, error)) (string, error) {
	for n := 1; n <= MaxAttempts; n++ {
		candidate := Candidate(base, n)
		inUse, err := taken(candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !inUse {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, MaxAttempts)
}

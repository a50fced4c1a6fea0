package fleet

import (
	"regexp"
	"strings"
)

var (
	numericSuffixRegex = regexp.MustCompile(`\(\s*\d+\s*\)`)
	nonAlphanumRegex   = regexp.MustCompile(`[^a-z0-9]`)
)

// NormalizeName turns a raw driver name into the key used to merge records across sources.
// An empty result means no driver could be identified.
func NormalizeName(raw string) string {
	name := numericSuffixRegex.ReplaceAllString(raw, "")
	name = strings.ToLower(name)

	return nonAlphanumRegex.ReplaceAllString(name, "")
}

// Package skill canonicalizes free-text skill strings so that differently
// written variants of the same skill compare equal.
package skill

import (
	"strings"
	"unicode"
)

// displayOverrides maps lowercase tokens to their conventional casing.
var displayOverrides = map[string]string{
	"sql":     "SQL",
	"mongodb": "MongoDB",
	"api":     "API",
	"dsa":     "DSA",
	"aws":     "AWS",
	"css":     "CSS",
}

// Normalize lowercases raw, replaces everything outside [a-z0-9+# ] with a
// space, and collapses whitespace. Two raw strings name the same skill iff
// their normalized forms are equal. Empty or symbol-only input yields "".
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// DisplayName renders raw as a title-cased human label, keeping known
// acronyms in their usual casing (sql -> SQL, aws -> AWS, ...).
func DisplayName(raw string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	for i, word := range words {
		if override, ok := displayOverrides[word]; ok {
			words[i] = override
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Dedupe walks raw skills in order and keeps the first occurrence of each
// normalized token, emitting display names. Empty tokens are dropped.
func Dedupe(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	output := make([]string, 0, len(raw))
	for _, item := range raw {
		normalized := Normalize(item)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		output = append(output, DisplayName(item))
	}
	return output
}

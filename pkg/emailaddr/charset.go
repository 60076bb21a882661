package emailaddr

import (
	"regexp"
	"slices"
	"strings"
)

// invalidChars reports the characters of text that no match of re covers.
//
// It collects every substring of text matched by re, concatenates them into
// the valid subset, and returns the characters present in text but absent
// from that subset. When re matches nothing at all, every distinct character
// of text is invalid. The result is sorted so diagnostics are deterministic.
func invalidChars(text string, re *regexp.Regexp) string {
	valid := strings.Join(re.FindAllString(text, -1), "")
	if valid == "" {
		return distinctSorted(text)
	}

	seen := make(map[rune]bool, len(valid))
	for _, r := range valid {
		seen[r] = true
	}

	var invalid []rune
	for _, r := range text {
		if !seen[r] {
			seen[r] = true
			invalid = append(invalid, r)
		}
	}
	slices.Sort(invalid)
	return string(invalid)
}

// distinctSorted returns the distinct characters of text in sorted order.
func distinctSorted(text string) string {
	seen := make(map[rune]bool, len(text))
	var chars []rune
	for _, r := range text {
		if !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}
	slices.Sort(chars)
	return string(chars)
}

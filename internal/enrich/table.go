package enrich

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule maps trigger phrases to an output value. Unless phrases veto the
// rule even when a trigger is present.
type Rule struct {
	Value    string   `yaml:"value"`
	Triggers []string `yaml:"triggers"`
	Unless   []string `yaml:"unless,omitempty"`
}

// Table is an ordered rule list; the first rule that fires wins.
type Table []Rule

// Lookup returns the value of the first rule with a trigger in text.
// Matching is case-insensitive and respects word boundaries, so "oman"
// does not fire inside "La Romana".
func (t Table) Lookup(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range t {
		if containsAny(lower, rule.Unless) {
			continue
		}
		if containsAny(lower, rule.Triggers) {
			return rule.Value, true
		}
	}
	return "", false
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if containsWord(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase occurs in s with no letter or digit
// directly before or after it.
func containsWord(s, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(s)-len(phrase); {
		i := strings.Index(s[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(s, i) && boundaryAfter(s, end) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

package course

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DescriptorPhrases are the trailing words stripped from a course name before
// comparison. Longer phrases come first so the alternation prefers them.
var DescriptorPhrases = []string{
	"Championship Course",
	"Championship Links",
	"Plantation Course",
	"Balgownie Links",
	"Monument Course",
	"Weiskopf Course",
	"Saguaro Course",
	"Stadium Course",
	"Straits Course",
	"Dunluce Links",
	"Country Club",
	"Irish Course",
	"Makai Course",
	"Ocean Course",
	"Black Course",
	"North Course",
	"South Course",
	"Ailsa Course",
	"Golf Course",
	"Golf Links",
	"West Course",
	"East Course",
	"Lake Course",
	"Gold Course",
	"Blue Course",
	"Red Course",
	"Old Course",
	"State Park",
	"Golf Club",
	"Resort",
	"Club",
}

var (
	descriptorPattern  = compileDescriptors(DescriptorPhrases)
	parentheticalRegex = regexp.MustCompile(`\s*\(([^)]*)\)`)
)

func compileDescriptors(phrases []string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\s+(?:` + strings.Join(quoted, "|") + `)\s*$`)
}

// SplitVariant separates a name from its parenthetical variant hint.
// "Whistling Straits (Irish Course)" yields "Whistling Straits" and
// "Irish Course". All parenthetical segments are removed from the base; the
// first one is returned as the variant.
func SplitVariant(raw string) (base, variant string) {
	if m := parentheticalRegex.FindStringSubmatch(raw); m != nil {
		variant = strings.TrimSpace(m[1])
	}
	base = strings.TrimSpace(parentheticalRegex.ReplaceAllString(raw, ""))
	return base, variant
}

// Normalize returns the comparison key for a course name: the parenthetical
// and one trailing descriptor phrase removed, diacritics folded, lowercased,
// whitespace collapsed.
func Normalize(raw string) string {
	base, _ := SplitVariant(raw)
	base = descriptorPattern.ReplaceAllString(base, "")
	return fold(base)
}

// NormalizeVariant normalizes the parenthetical part of a name, or returns
// "" when there is none.
func NormalizeVariant(raw string) string {
	_, variant := SplitVariant(raw)
	if variant == "" {
		return ""
	}
	return fold(variant)
}

// Tokens splits a normalized key into words, dropping punctuation.
func Tokens(key string) []string {
	return strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// fold strips diacritics, lowercases and collapses whitespace.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

package matcher

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// Rule names the resolution step that produced a match.
type Rule string

const (
	RuleOverride Rule = "override"
	RuleSkip     Rule = "skip"
	RuleExact    Rule = "exact"
	RuleNormal   Rule = "normalized"
	RuleVariant  Rule = "variant"
	RuleScored   Rule = "scored"
)

// Config holds the scoring knobs. Zero is a valid value for each of them,
// so defaults come from DefaultConfig rather than struct tags.
type Config struct {
	Threshold      float64 `yaml:"threshold" env:"MATCH_THRESHOLD"`
	SubstringBonus float64 `yaml:"substring_bonus"`
	CoverageBonus  float64 `yaml:"coverage_bonus"`
}

// DefaultConfig returns the standard scoring knobs.
func DefaultConfig() Config {
	return Config{Threshold: 0.3, SubstringBonus: 0.3, CoverageBonus: 0.2}
}

// Result is a resolved match.
type Result struct {
	ID    string
	Rule  Rule
	Score float64 // only set for RuleScored
}

// Skipped reports whether the name is a known non-course.
func (r Result) Skipped() bool {
	return r.Rule == RuleSkip
}

// candidate is a precomputed view of one catalog record.
type candidate struct {
	id      string
	name    string
	key     string
	variant string
	tokens  map[string]bool
}

// Matcher resolves free-text course names to catalog ids.
// It is built once per pass and never mutates the catalog.
type Matcher struct {
	cfg        Config
	overrides  map[string]string
	candidates []candidate
	byName     map[string]string
	ids        map[string]bool
	names      []string
}

// New builds a matcher over the catalog. Overrides map a raw corpus name to
// an id; an empty id marks a name to skip. An override naming an id that is
// not in the catalog is ignored and the heuristics run instead.
func New(cat *course.Catalog, overrides map[string]string, cfg Config) *Matcher {
	m := &Matcher{
		cfg:       cfg,
		overrides: overrides,
		byName:    make(map[string]string, cat.Len()),
		ids:       make(map[string]bool, cat.Len()),
	}

	for _, c := range cat.Courses {
		m.ids[c.ID()] = true
		name := c.Name()
		if name == "" {
			continue
		}
		key := course.Normalize(name)
		m.candidates = append(m.candidates, candidate{
			id:      c.ID(),
			name:    name,
			key:     key,
			variant: course.NormalizeVariant(name),
			tokens:  tokenSet(key),
		})
		// First record with a given name wins.
		if _, exists := m.byName[name]; !exists {
			m.byName[name] = c.ID()
		}
		m.names = append(m.names, name)
	}
	return m
}

// Match resolves raw to a catalog id. The second result is false when no
// rule produced a match. A skip override returns a Result with RuleSkip and
// true; callers should not apply updates for it.
func (m *Matcher) Match(raw string) (Result, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{}, false
	}

	if id, ok := m.overrides[raw]; ok {
		if id == "" {
			return Result{Rule: RuleSkip}, true
		}
		if m.ids[id] {
			return Result{ID: id, Rule: RuleOverride}, true
		}
	}

	if id, ok := m.byName[raw]; ok {
		return Result{ID: id, Rule: RuleExact}, true
	}

	key := course.Normalize(raw)
	if key == "" {
		return Result{}, false
	}
	for _, c := range m.candidates {
		if c.key == key {
			return Result{ID: c.id, Rule: RuleNormal}, true
		}
	}

	variant := course.NormalizeVariant(raw)
	for _, c := range m.candidates {
		if variant != "" && variant == c.key {
			return Result{ID: c.id, Rule: RuleVariant}, true
		}
		if c.variant != "" && c.variant == key {
			return Result{ID: c.id, Rule: RuleVariant}, true
		}
	}

	return m.score(key)
}

// score picks the candidate with the best word overlap. Ties keep the
// earliest candidate.
func (m *Matcher) score(key string) (Result, bool) {
	words := tokenSet(key)
	if len(words) == 0 {
		return Result{}, false
	}

	var best Result
	for _, c := range m.candidates {
		s := m.similarity(key, words, c)
		if s > best.Score {
			best = Result{ID: c.id, Rule: RuleScored, Score: s}
		}
	}

	if best.ID == "" || best.Score <= m.cfg.Threshold {
		return Result{}, false
	}
	return best, true
}

// similarity is Jaccard overlap of the word sets plus bonuses for
// containment and for full coverage of the shorter name.
func (m *Matcher) similarity(key string, words map[string]bool, c candidate) float64 {
	// Two single-word names carry too little signal to score.
	if len(c.tokens) == 0 || (len(words) < 2 && len(c.tokens) < 2) {
		return 0
	}

	overlap := 0
	for w := range words {
		if c.tokens[w] {
			overlap++
		}
	}
	union := len(words) + len(c.tokens) - overlap
	score := float64(overlap) / float64(union)

	if strings.Contains(c.key, key) || strings.Contains(key, c.key) {
		score += m.cfg.SubstringBonus
	}

	shorter := len(words)
	if len(c.tokens) < shorter {
		shorter = len(c.tokens)
	}
	if overlap > 0 && overlap == shorter {
		score += m.cfg.CoverageBonus
	}

	return score
}

// Suggest returns up to limit catalog names that fuzzily resemble raw, best
// first. It is meant for operator reports on unmatched names.
func (m *Matcher) Suggest(raw string, limit int) []string {
	base, _ := course.SplitVariant(raw)
	matches := fuzzy.Find(base, m.names)

	out := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, match := range matches {
		if len(out) >= limit {
			break
		}
		if seen[match.Str] {
			continue
		}
		seen[match.Str] = true
		out = append(out, match.Str)
	}
	return out
}

func tokenSet(key string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range course.Tokens(key) {
		set[t] = true
	}
	return set
}

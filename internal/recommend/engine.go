package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Slava47/barkocobarka/internal/menu"
)

// Answer tokens with a fixed meaning for the engine. Everything else in the
// answer vocabulary is an ordinary tag-matching key.
const (
	TokenAlcoholYes = "алко_да"
	TokenAlcoholNo  = "алко_нет"
	TokenAlcoholAny = "алко_любой"
)

const (
	// alcoholAnswerIndex is the position of the alcohol-preference question
	// in the canonical answer order. Shorter answer slices are treated as
	// indifferent on the alcohol axis.
	alcoholAnswerIndex = 4

	// anyTokenPrefix marks "no preference" sentinel tokens
	// (любой_температура and friends). They never participate in scoring.
	anyTokenPrefix = "любой"

	DefaultTopN = 3
)

// Scoring weights.
const (
	exactWeight   = 2
	synonymWeight = 1
	fuzzyWeight   = 1

	adjustAlcoholMatch    = 3
	adjustNonAlcoholMatch = 2
	adjustAlcoholPenalty  = -5
)

// AlcoholPolicy controls how the alcohol-preference answer is applied.
type AlcoholPolicy string

const (
	// AlcoholExclude hard-filters the pool by category before scoring.
	AlcoholExclude AlcoholPolicy = "exclude"
	// AlcoholScoreAdjust keeps the full pool and shifts scores instead.
	AlcoholScoreAdjust AlcoholPolicy = "score"
)

// MatchPolicy controls how answer tokens are matched against item tags.
type MatchPolicy string

const (
	// MatchSynonymTable uses the curated synonym table for partial credit.
	MatchSynonymTable MatchPolicy = "synonyms"
	// MatchSubstringFuzzy awards partial credit for substring containment
	// in either direction. Looser; can over-match short tokens.
	MatchSubstringFuzzy MatchPolicy = "substring"
)

// ScoredItem is a menu item annotated with its score, the tags that earned
// it, and a human-readable reason. It is a fresh value; the source catalog
// is never touched.
type ScoredItem struct {
	menu.MenuItem
	Score   int      `json:"score"`
	Matched []string `json:"matched,omitempty"`
	Reason  string   `json:"reason"`
}

// Recommender ranks catalog items against a completed answer sequence.
type Recommender interface {
	Recommend(answers []string, items []menu.MenuItem) []ScoredItem
}

type Option func(*config)

type config struct {
	topN    int
	alcohol AlcoholPolicy
	match   MatchPolicy
}

func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.topN = n
		}
	}
}
func WithAlcoholPolicy(p AlcoholPolicy) Option { return func(c *config) { c.alcohol = p } }
func WithMatchPolicy(p MatchPolicy) Option     { return func(c *config) { c.match = p } }

// New builds a Recommender. Defaults: top 3, alcohol hard filter, synonym
// table matching.
func New(opts ...Option) Recommender {
	cfg := &config{
		topN:    DefaultTopN,
		alcohol: AlcoholExclude,
		match:   MatchSynonymTable,
	}
	for _, o := range opts {
		o(cfg)
	}
	var m matcher
	switch cfg.match {
	case MatchSubstringFuzzy:
		m = substringMatcher{}
	default:
		m = synonymMatcher{}
	}
	return &engine{cfg: *cfg, matcher: m}
}

type engine struct {
	cfg     config
	matcher matcher
}

func (e *engine) Recommend(answers []string, items []menu.MenuItem) []ScoredItem {
	alco := alcoholAnswer(answers)

	pool := make([]menu.MenuItem, 0, len(items))
	for _, it := range items {
		if !it.Valid() {
			continue
		}
		if e.cfg.alcohol == AlcoholExclude {
			if alco == TokenAlcoholNo && it.Alcoholic() {
				continue
			}
			if alco == TokenAlcoholYes && !it.Alcoholic() {
				continue
			}
		}
		pool = append(pool, it)
	}

	tokens := searchTokens(answers)

	scored := make([]ScoredItem, 0, len(pool))
	for _, it := range pool {
		score, matched := e.matcher.score(tokens, it.Tags)
		if e.cfg.alcohol == AlcoholScoreAdjust {
			score += alcoholAdjust(alco, it)
		}
		scored = append(scored, ScoredItem{MenuItem: it, Score: score, Matched: matched})
	}

	// Stable: equal scores keep catalog order, so results are deterministic.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > e.cfg.topN {
		scored = scored[:e.cfg.topN]
	}
	for i := range scored {
		scored[i].Reason = reasonFor(scored[i].Matched)
	}
	return scored
}

// matcher scores the non-sentinel answer tokens against one item's tag set.
// Implementations must never credit the same tag twice for an item.
type matcher interface {
	score(tokens, tags []string) (int, []string)
}

type synonymMatcher struct{}

func (synonymMatcher) score(tokens, tags []string) (int, []string) {
	score := 0
	m := newMatchSet()
	for _, t := range tokens {
		if hasTag(tags, t) && m.add(t) {
			score += exactWeight
		}
	}
	for _, t := range tokens {
		for _, s := range synonyms[t] {
			if hasTag(tags, s) && m.add(s) {
				score += synonymWeight
			}
		}
	}
	return score, m.tags
}

type substringMatcher struct{}

func (substringMatcher) score(tokens, tags []string) (int, []string) {
	score := 0
	m := newMatchSet()
	for _, t := range tokens {
		for _, tag := range tags {
			switch {
			case tag == t:
				if m.add(tag) {
					score += exactWeight
				}
			case strings.Contains(tag, t) || strings.Contains(t, tag):
				if m.add(tag) {
					score += fuzzyWeight
				}
			}
		}
	}
	return score, m.tags
}

// matchSet tracks credited tags while preserving the order they matched in,
// which drives the order of reason phrases.
type matchSet struct {
	seen map[string]struct{}
	tags []string
}

func newMatchSet() *matchSet {
	return &matchSet{seen: map[string]struct{}{}}
}

func (m *matchSet) add(tag string) bool {
	if _, ok := m.seen[tag]; ok {
		return false
	}
	m.seen[tag] = struct{}{}
	m.tags = append(m.tags, tag)
	return true
}

func alcoholAnswer(answers []string) string {
	if len(answers) > alcoholAnswerIndex {
		return answers[alcoholAnswerIndex]
	}
	return TokenAlcoholAny
}

// searchTokens returns the scorable answer tokens: everything before the
// alcohol axis, minus empty and "no preference" sentinels.
func searchTokens(answers []string) []string {
	n := len(answers)
	if n > alcoholAnswerIndex {
		n = alcoholAnswerIndex
	}
	out := make([]string, 0, n)
	for _, a := range answers[:n] {
		if a == "" || strings.HasPrefix(a, anyTokenPrefix) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func alcoholAdjust(answer string, it menu.MenuItem) int {
	switch answer {
	case TokenAlcoholYes:
		if it.Alcoholic() {
			return adjustAlcoholMatch
		}
	case TokenAlcoholNo:
		if it.Alcoholic() {
			return adjustAlcoholPenalty
		}
		return adjustNonAlcoholMatch
	}
	return 0
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func reasonFor(matched []string) string {
	if len(matched) == 0 {
		return reasonFallback
	}
	if len(matched) > reasonMaxTags {
		matched = matched[:reasonMaxTags]
	}
	phrases := make([]string, 0, len(matched))
	for _, t := range matched {
		if p, ok := reasonPhrases[t]; ok {
			phrases = append(phrases, p)
		} else {
			phrases = append(phrases, t)
		}
	}
	return fmt.Sprintf(reasonTemplate, strings.Join(phrases, ", "))
}

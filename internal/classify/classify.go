// Package classify scores bookmarks against weighted keyword/domain rules
// and picks the best matching category.
package classify

import (
	"sort"
	"strings"
)

// Scoring weights per matched feature.
const (
	titleKeywordScore = 3
	urlPatternScore   = 2
	urlDomainScore    = 4
)

// maxRuleScore is the per-rule score assumed by the confidence
// normalization (one hit of each feature kind: 3+2+4).
const maxRuleScore = 9

// FallbackCategory is returned when no rule matches.
const FallbackCategory = "Other"

// Rule is a named scoring rule. All matching is case-insensitive
// substring matching.
type Rule struct {
	ID            string   `json:"id" mapstructure:"id"`
	Category      string   `json:"category" mapstructure:"category"`
	TitleKeywords []string `json:"title_keywords,omitempty" mapstructure:"title_keywords"`
	URLPatterns   []string `json:"url_patterns,omitempty" mapstructure:"url_patterns"`
	URLDomains    []string `json:"url_domains,omitempty" mapstructure:"url_domains"`
	Priority      int      `json:"priority,omitempty" mapstructure:"priority"`
}

// Result is produced fresh per call and never persisted by the engine.
type Result struct {
	Category     string   `json:"category"`
	Confidence   float64  `json:"confidence"`
	MatchedRules []string `json:"matched_rules"`
}

type match struct {
	rule  Rule
	score int
}

// Classify scores title and url against the given rules. A nil rule slice
// means the default rule set. Rules with zero score are dropped; survivors
// are ordered by priority descending, then score descending. When nothing
// matches the fallback category is returned with confidence 0.5.
func Classify(title, url string, rules []Rule) Result {
	if rules == nil {
		rules = DefaultRules()
	}
	titleLower := strings.ToLower(title)
	urlLower := strings.ToLower(url)

	var matches []match
	for _, rule := range rules {
		score := 0
		for _, kw := range rule.TitleKeywords {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				score += titleKeywordScore
			}
		}
		for _, pattern := range rule.URLPatterns {
			if strings.Contains(urlLower, strings.ToLower(pattern)) {
				score += urlPatternScore
			}
		}
		for _, domain := range rule.URLDomains {
			if strings.Contains(urlLower, strings.ToLower(domain)) {
				score += urlDomainScore
			}
		}
		if score > 0 {
			matches = append(matches, match{rule: rule, score: score})
		}
	}

	if len(matches) == 0 {
		return Result{
			Category:     FallbackCategory,
			Confidence:   0.5,
			MatchedRules: []string{},
		}
	}

	// Priority is the primary tie-break, score secondary.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rule.Priority != matches[j].rule.Priority {
			return matches[i].rule.Priority > matches[j].rule.Priority
		}
		return matches[i].score > matches[j].score
	})

	best := matches[0]
	maxPossible := float64(len(matches) * maxRuleScore)
	confidence := float64(best.score)/maxPossible + 0.6
	if confidence > 0.95 {
		confidence = 0.95
	}

	matchedIDs := make([]string, len(matches))
	for i, m := range matches {
		matchedIDs[i] = m.rule.ID
	}

	return Result{
		Category:     best.rule.Category,
		Confidence:   confidence,
		MatchedRules: matchedIDs,
	}
}

// Input is the minimal bookmark shape the batch classifier needs.
type Input struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ClassifyBatch classifies each bookmark independently and keys results by
// URL. If two inputs share a URL the later one wins the map entry.
func ClassifyBatch(bookmarks []Input, rules []Rule) map[string]Result {
	results := make(map[string]Result, len(bookmarks))
	for _, b := range bookmarks {
		results[b.URL] = Classify(b.Title, b.URL, rules)
	}
	return results
}

// Categories returns the distinct categories of the given rule set plus the
// fallback category. A nil slice means the default rule set.
func Categories(rules []Rule) []string {
	if rules == nil {
		rules = DefaultRules()
	}
	seen := make(map[string]bool, len(rules)+1)
	var out []string
	for _, r := range rules {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	if !seen[FallbackCategory] {
		out = append(out, FallbackCategory)
	}
	return out
}

// AddRule appends a rule to the set and re-sorts by priority descending.
// A rule whose id already exists replaces the old rule in place before the
// re-sort, so duplicate ids resolve deterministically to the newest rule.
func AddRule(rules []Rule, rule Rule) []Rule {
	replaced := false
	for i := range rules {
		if rules[i].ID == rule.ID {
			rules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		rules = append(rules, rule)
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules
}

// RuleByID looks a rule up by its id.
func RuleByID(rules []Rule, id string) (Rule, bool) {
	if rules == nil {
		rules = DefaultRules()
	}
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

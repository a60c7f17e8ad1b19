// Package keywords derives tag candidates from bookmark titles using
// frequency and length weighted term scoring.
package keywords

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Stop words are high-frequency functional words dropped before scoring.
var stopWords = map[string]bool{
	"的": true, "了": true, "在": true, "是": true, "我": true,
	"有": true, "和": true, "就": true, "不": true, "人": true,
	"都": true, "一": true, "一个": true, "上": true, "也": true,
	"很": true, "到": true, "说": true, "要": true, "去": true,
	"你": true, "会": true, "着": true, "没有": true, "看": true,
	"好": true, "自己": true, "这": true, "那": true, "对": true,
	"把": true, "被": true, "从": true,
}

// Config controls extraction. Zero values are replaced with the defaults
// from DefaultConfig, except the weighting toggles which must be set
// explicitly when constructing a Config by hand.
type Config struct {
	MaxTags               int
	MinWordLength         int
	UseFrequencyWeighting bool
	UseLengthWeighting    bool
}

// DefaultConfig returns the standard extraction settings.
func DefaultConfig() Config {
	return Config{
		MaxTags:               3,
		MinWordLength:         2,
		UseFrequencyWeighting: true,
		UseLengthWeighting:    true,
	}
}

// Result reports extracted keywords and the scoring detail. Scores stays
// empty when the filtered token list already fits within MaxTags.
type Result struct {
	Keywords          []string           `json:"keywords"`
	Scores            map[string]float64 `json:"scores"`
	OriginalWordCount int                `json:"original_word_count"`
	FilteredWordCount int                `json:"filtered_word_count"`
}

// Extract pulls up to cfg.MaxTags keywords from text. Tokens shorter than
// MinWordLength or present in the stop-word list are dropped. When more
// tokens survive than MaxTags, each distinct token is scored as
// frequency × (1 + ln(runeLength)) (length weighting enabled) or plain
// frequency, and the top tokens win. Ties are broken by first-occurrence
// order in the text, which keeps the output deterministic.
func Extract(text string, cfg Config) Result {
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = 3
	}
	if cfg.MinWordLength <= 0 {
		cfg.MinWordLength = 2
	}

	raw := strings.Fields(cleanText(text))

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if utf8.RuneCountInString(w) < cfg.MinWordLength || stopWords[w] {
			continue
		}
		words = append(words, w)
	}

	if len(words) <= cfg.MaxTags {
		return Result{
			Keywords:          dedup(words),
			Scores:            map[string]float64{},
			OriginalWordCount: len(raw),
			FilteredWordCount: len(words),
		}
	}

	// Track first-occurrence order alongside frequency for stable ties.
	freq := make(map[string]int, len(words))
	var order []string
	for _, w := range words {
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	scores := make(map[string]float64, len(freq))
	for _, w := range order {
		score := float64(freq[w])
		if !cfg.UseFrequencyWeighting {
			score = 1
		}
		if cfg.UseLengthWeighting {
			score *= 1 + math.Log(float64(utf8.RuneCountInString(w)))
		}
		scores[w] = score
	}

	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scores[sorted[i]] > scores[sorted[j]]
	})

	// Repeated words can leave fewer distinct tokens than MaxTags even
	// though the token count exceeded it.
	if len(sorted) > cfg.MaxTags {
		sorted = sorted[:cfg.MaxTags]
	}

	return Result{
		Keywords:          sorted,
		Scores:            scores,
		OriginalWordCount: len(raw),
		FilteredWordCount: len(words),
	}
}

// ExtractBatch extracts keywords for each title, keyed by title.
func ExtractBatch(titles []string, cfg Config) map[string][]string {
	results := make(map[string][]string, len(titles))
	for _, title := range titles {
		results[title] = Extract(title, cfg).Keywords
	}
	return results
}

// OptimalTagCount adapts the tag budget to the title length: titles longer
// than 20 runes get the full baseMax, short titles get min(2, ceil(len/5)).
func OptimalTagCount(title string, baseMax int) int {
	n := utf8.RuneCountInString(title)
	if n > 20 {
		return baseMax
	}
	suggested := (n + 4) / 5 // ceil(n/5)
	if suggested > 2 {
		return 2
	}
	return suggested
}

// cleanText replaces every rune that is not a CJK ideograph, ASCII letter,
// digit or whitespace with a space.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FA5:
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func dedup(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

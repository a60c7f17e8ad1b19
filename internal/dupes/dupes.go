// Package dupes groups near-duplicate bookmarks by multi-feature
// similarity scoring over titles, URLs and tags.
package dupes

import (
	"net/url"
	"strings"

	"linkmind/internal/models"
)

// DefaultThreshold is the minimum combined similarity for two bookmarks to
// be grouped as duplicates.
const DefaultThreshold = 0.8

// differentHostScore is the fixed similarity assigned to two parseable
// URLs whose hostnames differ.
const differentHostScore = 0.3

// FindGroups scans the collection once, in order, seeding a group at each
// not-yet-grouped bookmark and pulling in every later ungrouped bookmark
// whose similarity to the seed meets the threshold. Members are only ever
// compared against seeds, never against each other, so grouping is not
// transitive. That keeps the groups flat, which downstream keep-first
// semantics rely on; do not replace this with union-find clustering.
// Only groups with more than one member are returned; the seed is element
// 0 of each group's Bookmarks.
func FindGroups(bookmarks []models.Bookmark, threshold float64) []models.DuplicateGroup {
	var groups []models.DuplicateGroup
	grouped := make(map[int]bool, len(bookmarks))

	for i := 0; i < len(bookmarks); i++ {
		if grouped[i] {
			continue
		}

		seed := bookmarks[i]
		group := models.DuplicateGroup{
			Representative: seed,
			Bookmarks:      []models.Bookmark{seed},
		}

		for j := i + 1; j < len(bookmarks); j++ {
			if grouped[j] {
				continue
			}
			score := Similarity(seed, bookmarks[j])
			if score >= threshold {
				group.Bookmarks = append(group.Bookmarks, bookmarks[j])
				group.SimilarityScores = append(group.SimilarityScores, models.SimilarityScore{
					Bookmark: bookmarks[j],
					Score:    score,
				})
				grouped[j] = true
			}
		}

		if len(group.Bookmarks) > 1 {
			groups = append(groups, group)
		}
		grouped[i] = true
	}

	return groups
}

// Similarity combines up to three sub-scores (title, URL, tags) into a
// [0,1] average. A sub-score only participates when both bookmarks carry
// the relevant field; if none is computable the result is 0.
func Similarity(a, b models.Bookmark) float64 {
	total := 0.0
	count := 0

	if a.Title != "" && b.Title != "" {
		total += stringSimilarity(a.Title, b.Title)
		count++
	}
	if a.URL != "" && b.URL != "" {
		total += urlSimilarity(a.URL, b.URL)
		count++
	}
	if len(a.Tags) > 0 && len(b.Tags) > 0 {
		total += tagSimilarity(a.Tags, b.Tags)
		count++
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// stringSimilarity scores two strings in [0,1]: 1 for an exact
// case-insensitive match, 0 when the lengths differ by more than a factor
// of two, min/max length for a substring containment, else the share of
// distinct runes of the shorter-scan string present in the other. This is
// character-set overlap, not edit distance, and must stay that way for
// output parity with the grouping thresholds.
func stringSimilarity(s1, s2 string) float64 {
	lower1 := strings.ToLower(s1)
	lower2 := strings.ToLower(s2)

	if lower1 == lower2 {
		return 1
	}

	r1 := []rune(lower1)
	r2 := []rune(lower2)
	maxLen := len(r1)
	minLen := len(r2)
	if minLen > maxLen {
		maxLen, minLen = minLen, maxLen
	}
	if maxLen > minLen*2 {
		return 0
	}

	if strings.Contains(lower1, lower2) || strings.Contains(lower2, lower1) {
		return float64(minLen) / float64(maxLen)
	}

	set2 := make(map[rune]bool, len(r2))
	for _, r := range r2 {
		set2[r] = true
	}
	common := make(map[rune]bool)
	for _, r := range r1 {
		if set2[r] {
			common[r] = true
		}
	}
	return float64(len(common)) / float64(maxLen)
}

// urlSimilarity compares two URLs by hostname and path. Unparseable URLs
// fall back to string similarity over the raw strings rather than failing
// the comparison.
func urlSimilarity(rawURL1, rawURL2 string) float64 {
	u1, err1 := url.Parse(rawURL1)
	u2, err2 := url.Parse(rawURL2)
	if err1 != nil || err2 != nil || u1.Hostname() == "" || u2.Hostname() == "" {
		return stringSimilarity(rawURL1, rawURL2)
	}

	if u1.Hostname() != u2.Hostname() {
		return differentHostScore
	}

	if u1.Path == u2.Path {
		return 1
	}
	return stringSimilarity(u1.Path, u2.Path)
}

// tagSimilarity is the count of tags of the first list present in the
// second, over the larger list size. Empty lists score 0.
func tagSimilarity(tags1, tags2 []string) float64 {
	if len(tags1) == 0 || len(tags2) == 0 {
		return 0
	}

	set2 := make(map[string]bool, len(tags2))
	for _, t := range tags2 {
		set2[t] = true
	}
	common := 0
	for _, t := range tags1 {
		if set2[t] {
			common++
		}
	}

	maxTags := len(tags1)
	if len(tags2) > maxTags {
		maxTags = len(tags2)
	}
	return float64(common) / float64(maxTags)
}

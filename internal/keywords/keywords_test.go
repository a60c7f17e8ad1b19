package keywords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FewTokensReturnedAsIs(t *testing.T) {
	result := Extract("hello world", DefaultConfig())

	assert.Equal(t, []string{"hello", "world"}, result.Keywords)
	assert.Empty(t, result.Scores)
	assert.Equal(t, 2, result.OriginalWordCount)
	assert.Equal(t, 2, result.FilteredWordCount)
}

func TestExtract_FewTokensDeduplicated(t *testing.T) {
	result := Extract("go go gadget", DefaultConfig())

	assert.Equal(t, []string{"go", "gadget"}, result.Keywords)
	assert.Empty(t, result.Scores)
}

func TestExtract_DropsShortTokensAndStopWords(t *testing.T) {
	// "一个" is a stop word, "a" is below the minimum word length.
	result := Extract("一个 a Go 教程", DefaultConfig())

	assert.Equal(t, []string{"Go", "教程"}, result.Keywords)
	assert.Equal(t, 4, result.OriginalWordCount)
	assert.Equal(t, 2, result.FilteredWordCount)
}

func TestExtract_StripsPunctuation(t *testing.T) {
	result := Extract("go, web & http!", DefaultConfig())

	assert.Equal(t, []string{"go", "web", "http"}, result.Keywords)
}

func TestExtract_ScoresAndRanks(t *testing.T) {
	result := Extract("golang tutorial golang concurrency patterns", DefaultConfig())

	// golang: freq 2, score 2*(1+ln 6); concurrency: 1+ln 11;
	// tutorial/patterns tie at 1+ln 8, broken by first occurrence.
	require.Equal(t, []string{"golang", "concurrency", "tutorial"}, result.Keywords)

	assert.InDelta(t, 2*(1+math.Log(6)), result.Scores["golang"], 1e-9)
	assert.InDelta(t, 1+math.Log(11), result.Scores["concurrency"], 1e-9)
	assert.Equal(t, 5, result.OriginalWordCount)
	assert.Equal(t, 5, result.FilteredWordCount)
}

func TestExtract_FrequencyOnlyWhenLengthWeightingDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseLengthWeighting = false

	result := Extract("aa aa bbbbbbbb cccc dddd", cfg)

	// Without length weighting, the repeated short token wins outright.
	require.NotEmpty(t, result.Keywords)
	assert.Equal(t, "aa", result.Keywords[0])
	assert.Equal(t, 2.0, result.Scores["aa"])
	assert.Equal(t, 1.0, result.Scores["bbbbbbbb"])
}

func TestExtract_LengthOnlyWhenFrequencyWeightingDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseFrequencyWeighting = false

	result := Extract("aa aa bbbbbbbb cccc dddd", cfg)

	// Every distinct token scores 1 before length weighting, so the
	// longest token outranks the repeated short one.
	require.NotEmpty(t, result.Keywords)
	assert.Equal(t, "bbbbbbbb", result.Keywords[0])
	assert.InDelta(t, 1+math.Log(2), result.Scores["aa"], 1e-9)
	assert.InDelta(t, 1+math.Log(8), result.Scores["bbbbbbbb"], 1e-9)
}

func TestExtract_RepeatedTokensBelowTagBudget(t *testing.T) {
	// Four tokens but only one distinct word: the scoring path runs
	// (token count exceeds MaxTags) and must not over-slice.
	result := Extract("go go go go", DefaultConfig())

	assert.Equal(t, []string{"go"}, result.Keywords)
	assert.Equal(t, 4, result.OriginalWordCount)
	assert.Equal(t, 4, result.FilteredWordCount)
	assert.InDelta(t, 4*(1+math.Log(2)), result.Scores["go"], 1e-9)
}

func TestExtract_Deterministic(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta"
	first := Extract(text, DefaultConfig())
	second := Extract(text, DefaultConfig())

	assert.Equal(t, first.Keywords, second.Keywords)
}

func TestOptimalTagCount(t *testing.T) {
	testCases := []struct {
		name    string
		title   string
		baseMax int
		want    int
	}{
		{name: "long title gets full budget", title: "React官方文档从入门到精通完整的实战指南教程", baseMax: 3, want: 3},
		{name: "two rune title", title: "Hi", baseMax: 3, want: 1},
		{name: "ten rune title capped at two", title: "abcdefghij", baseMax: 3, want: 2},
		{name: "exactly twenty runes stays short", title: "abcdefghijklmnopqrst", baseMax: 3, want: 2},
		{name: "empty title", title: "", baseMax: 3, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OptimalTagCount(tc.title, tc.baseMax))
		})
	}
}

func TestExtractBatch(t *testing.T) {
	results := ExtractBatch([]string{"hello world", "go tutorial"}, DefaultConfig())

	require.Len(t, results, 2)
	assert.Equal(t, []string{"hello", "world"}, results["hello world"])
	assert.Equal(t, []string{"go", "tutorial"}, results["go tutorial"])
}

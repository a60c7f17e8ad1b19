package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"linkmind/internal/keywords"
)

var (
	keywordsMaxTags int
	keywordsOptimal bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text...]",
	Short: "Extract tag candidates from a bookmark title",
	Long: `Derives up to --max-tags keywords from the given text using frequency
and word-length weighted scoring. With --optimal the tag budget shrinks
for short titles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		cfg := keywords.DefaultConfig()
		if keywordsMaxTags > 0 {
			cfg.MaxTags = keywordsMaxTags
		}
		if keywordsOptimal {
			cfg.MaxTags = keywords.OptimalTagCount(text, cfg.MaxTags)
		}

		log.Printf("Extracting keywords (max %d) from: %q", cfg.MaxTags, text)

		result := keywords.Extract(text, cfg)
		if len(result.Keywords) == 0 {
			fmt.Println("No keywords found.")
			return nil
		}

		fmt.Printf("Keywords: %s\n", strings.Join(result.Keywords, ", "))
		fmt.Printf("Tokens:   %d total, %d after filtering\n", result.OriginalWordCount, result.FilteredWordCount)
		for _, kw := range result.Keywords {
			if score, ok := result.Scores[kw]; ok {
				fmt.Printf("  %-20s %.3f\n", kw, score)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().IntVarP(&keywordsMaxTags, "max-tags", "m", 0, "Maximum number of keywords to extract (default 3)")
	keywordsCmd.Flags().BoolVar(&keywordsOptimal, "optimal", false, "Shrink the tag budget for short titles")
}

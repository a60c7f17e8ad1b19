package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkmind/internal/classify"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [title] [url]",
	Short: "Classify a bookmark by its title and URL",
	Long: `Scores the bookmark against the classification rule set and prints the
winning category, the confidence and every rule that matched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, url := args[0], args[1]

		result := classify.Classify(title, url, nil)

		fmt.Printf("Category:   %s\n", result.Category)
		fmt.Printf("Confidence: %.2f\n", result.Confidence)
		if len(result.MatchedRules) == 0 {
			fmt.Println("Matched:    (no rules)")
			return nil
		}
		fmt.Printf("Matched:    %v\n", result.MatchedRules)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"linkmind/internal/clix"
	"linkmind/internal/dupes"

	"github.com/olekukonko/tablewriter"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Detect near-duplicate bookmarks in the backend collection",
	Long: `Fetches the bookmark collection from the backend and groups bookmarks
whose combined title/URL/tag similarity meets the threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, err := clix.ParseThreshold(cmd.Flags(), dupes.DefaultThreshold)
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		log.Printf("Running duplicate detection (threshold %.2f)", threshold)

		bookmarks, err := appInstance.Backend.ListBookmarks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch bookmarks: %w", err)
		}

		groups := dupes.FindGroups(bookmarks, threshold)
		if len(groups) == 0 {
			fmt.Println("No duplicates found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Group", "URL", "Title", "Score"})
		duplicateCount := 0
		for i, group := range groups {
			duplicateCount += len(group.Bookmarks)
			table.Append([]string{fmt.Sprintf("%d", i+1), group.Representative.URL, group.Representative.Title, "(seed)"})
			for _, ss := range group.SimilarityScores {
				table.Append([]string{"", ss.Bookmark.URL, ss.Bookmark.Title, fmt.Sprintf("%.2f", ss.Score)})
			}
		}
		table.Render()

		fmt.Printf("%d group(s) covering %d bookmark(s) out of %d\n",
			len(groups), duplicateCount, len(bookmarks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)
	duplicatesCmd.Flags().Float64P("threshold", "t", dupes.DefaultThreshold, "Similarity threshold in [0,1]")
}

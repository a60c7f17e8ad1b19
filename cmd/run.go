package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"linkmind/internal/orchestrator"
	"linkmind/internal/registry"
)

var (
	runTools []string
	runAsync bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [feature]",
	Short: "Execute a feature's tool bundle",
	Long: `Runs the tools bound to a feature in priority order, against the backend
bookmark collection. Known features: ` + strings.Join(orchestrator.Features(), ", ") + `.
With --async the run is enqueued onto the background worker instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		featureID := args[0]

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		toolIDs := runTools
		if len(toolIDs) == 0 {
			toolIDs = orchestrator.FeatureTools(featureID)
		}
		if len(toolIDs) == 0 {
			log.Printf("WARN: feature %q resolves to no tools", featureID)
		}

		bookmarks, err := appInstance.Backend.ListBookmarks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch bookmarks: %w", err)
		}

		if runAsync {
			if appInstance.JobClient == nil {
				return fmt.Errorf("background runs are unavailable: no redis address configured")
			}
			run, err := appInstance.JobClient.EnqueueFeatureRun(cmd.Context(), featureID, toolIDs, bookmarks)
			if err != nil {
				return fmt.Errorf("failed to enqueue feature run: %w", err)
			}
			fmt.Printf("Enqueued feature run %s (%s)\n", run.RunID, featureID)
			return nil
		}

		outcomes, err := appInstance.Executor.ExecuteFeature(cmd.Context(), featureID, toolIDs, registry.Input{
			Bookmarks: bookmarks,
		})
		if err != nil {
			return fmt.Errorf("feature %s failed: %w", featureID, err)
		}

		if len(outcomes) == 0 {
			fmt.Println("No tools ran (all requested tools disabled or unsatisfied).")
			return nil
		}
		for id, outcome := range outcomes {
			if outcome.Err != nil {
				fmt.Printf("%-20s ERROR: %v\n", id, outcome.Err)
				continue
			}
			fmt.Printf("%-20s OK\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringSliceVar(&runTools, "tools", nil, "Override the feature's tool list (comma-separated tool ids)")
	runCmd.Flags().BoolVar(&runAsync, "async", false, "Enqueue the run onto the background worker")
}

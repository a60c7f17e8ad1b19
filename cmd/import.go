package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"linkmind/internal/config"
	"linkmind/internal/registry"
	"linkmind/internal/tools"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a browser bookmark export",
	Long: `Parses a bookmark export file (Netscape HTML or JSON) and uploads the
parsed bookmarks to the backend via the importer tool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		log.Printf("Importing bookmarks from %s", filePath)

		result, err := appInstance.Executor.ExecuteTool(cmd.Context(), config.ToolBookmarkImporter, registry.Input{
			FilePath: filePath,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		imported, ok := result.(*tools.ImportResult)
		if !ok {
			return fmt.Errorf("unexpected importer result type %T", result)
		}

		fmt.Printf("Imported %s: %d parsed, %d processed by backend\n",
			imported.Filename, imported.ParsedCount, imported.ProcessedCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

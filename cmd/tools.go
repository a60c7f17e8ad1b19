package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List configured tools and their gating state",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		snap, err := appInstance.ConfigLoader.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		statuses := appInstance.Registry.Statuses(snap)
		if len(statuses) == 0 {
			fmt.Println("No tools configured.")
			return nil
		}

		enabled := color.New(color.FgGreen).SprintFunc()
		disabled := color.New(color.FgRed).SprintFunc()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Tool", "Name", "Priority", "Enabled", "Deps Met", "Registered"})
		for _, s := range statuses {
			enabledStr := disabled("no")
			if s.Enabled {
				enabledStr = enabled("yes")
			}
			depsStr := disabled("no")
			if s.DependenciesMet {
				depsStr = enabled("yes")
			}
			registeredStr := "no"
			if s.Registered {
				registeredStr = "yes"
			}
			table.Append([]string{
				s.ToolID, s.Name, fmt.Sprintf("%d", s.Priority),
				enabledStr, depsStr, registeredStr,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

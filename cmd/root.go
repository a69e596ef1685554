package cmd

import (
	"github.com/daylab/labmate/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labmate",
	Short: "Lab assistant for school science rooms",
	Long:  "LabMate keeps a reagent catalog, converts concentrations, runs safety quizzes, and drafts AI safety briefings from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LABMATE_DB env var)")

	for _, sub := range []*cobra.Command{
		quizCmd, convertCmd, inventoryCmd, explainCmd,
		statsCmd, updateCmd, versionCmd,
	} {
		rootCmd.AddCommand(sub)
	}
}

// resolveDBPath picks the database location: the --db flag wins, then
// LABMATE_DB, then the XDG data directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

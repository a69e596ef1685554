package cmd

import "github.com/spf13/cobra"

// quizCmd jumps straight into a safety quiz, skipping the home menu.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a safety quiz right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppAt(cmd, true)
	},
}

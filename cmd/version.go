package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags; source builds stay at
// the sentinel the updater refuses to touch.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show which build is running",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("labmate %s\n", version)
	},
}

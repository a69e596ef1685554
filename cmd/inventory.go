package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/store"
	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the reagent catalog",
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a reagent catalog from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}

		items, warnings, err := catalog.ParseCatalog(raw)
		if err != nil {
			return fmt.Errorf("parse catalog: %w", err)
		}
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ItemRepo().ReplaceAll(context.Background(), items); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}

		fmt.Printf("Imported %d items", len(items))
		if len(warnings) > 0 {
			fmt.Printf(" (%d skipped)", len(warnings))
		}
		fmt.Println()
		return nil
	},
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the imported reagents",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.ItemRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No reagents imported yet. Run: labmate inventory import <file>")
			return nil
		}

		fmt.Printf("%-24s  %-12s  %-14s  %s\n", "Name", "Formula", "Class", "Location")
		fmt.Println(strings.Repeat("─", 76))
		for _, it := range items {
			formula := ""
			if it.Formula != nil {
				formula = *it.Formula
			}
			location := ""
			if loc, ok := it.Location(); ok {
				location = loc
			}
			fmt.Printf("%-24s  %-12s  %-14s  %s\n",
				it.DisplayName(), formula, it.Hazard.Label(), location)
		}
		fmt.Printf("\n%d items\n", len(items))
		return nil
	},
}

func init() {
	inventoryCmd.AddCommand(inventoryImportCmd)
	inventoryCmd.AddCommand(inventoryListCmd)
}

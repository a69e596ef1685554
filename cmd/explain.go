package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/llm"
	"github.com/daylab/labmate/internal/store"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <reagent>",
	Short: "Print an AI safety briefing for a reagent",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
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

		items, err := st.ItemRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		item, found := findItem(items, query)
		if !found {
			return fmt.Errorf("no reagent matching %q in the catalog", query)
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := explain.NewService(provider, explain.DefaultConfig())
		exp, err := svc.Explain(ctx, explain.Input{Item: item})
		if err != nil {
			return fmt.Errorf("generate briefing: %w", err)
		}

		fmt.Println(exp.ItemName)
		fmt.Println(strings.Repeat("─", 40))
		fmt.Println(exp.Summary)
		if len(exp.Hazards) > 0 {
			fmt.Println("\n위험 요소:")
			for _, h := range exp.Hazards {
				fmt.Println("  •", h)
			}
		}
		if len(exp.Handling) > 0 {
			fmt.Println("\n취급 요령:")
			for _, h := range exp.Handling {
				fmt.Println("  •", h)
			}
		}
		if exp.FirstAid != "" {
			fmt.Println("\n응급처치:", exp.FirstAid)
		}
		return nil
	},
}

// findItem matches by Korean name, English name, or formula,
// case-insensitively for the latin fields.
func findItem(items []catalog.Item, query string) (catalog.Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, it := range items {
		if it.NameKo != nil && strings.TrimSpace(*it.NameKo) == strings.TrimSpace(query) {
			return it, true
		}
		if it.NameEn != nil && strings.ToLower(strings.TrimSpace(*it.NameEn)) == q {
			return it, true
		}
		if it.Formula != nil && strings.ToLower(*it.Formula) == q {
			return it, true
		}
	}
	return catalog.Item{}, false
}

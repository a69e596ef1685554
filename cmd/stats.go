package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/daylab/labmate/internal/llm"
	"github.com/daylab/labmate/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz results and LLM usage",
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

		ctx := context.Background()

		quizStats, err := st.ResultRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("query quiz stats: %w", err)
		}

		fmt.Println("Quiz Results")
		fmt.Println(strings.Repeat("─", 48))
		if quizStats.Sessions == 0 {
			fmt.Println("No quizzes taken yet.")
		} else {
			fmt.Printf("Sessions:   %d\n", quizStats.Sessions)
			fmt.Printf("Passed:     %d\n", quizStats.Passed)
			fmt.Printf("Average:    %.1f\n", quizStats.AvgScore)
			fmt.Printf("Best:       %d\n", quizStats.BestScore)
		}

		usage, err := st.LLMEventRepo().UsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("LLM Usage (estimated cost, USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %9s  %9s  %9s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, mu := range usage {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unknownModels = append(unknownModels, mu.Model)
				fmt.Printf("%-32s  %6d  %9d  %9d  %9s\n",
					truncate(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %9d  %9d  %9s\n",
				truncate(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %9s  %9s  %9s\n", label, "", "", "", formatCost(totalCost))
		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

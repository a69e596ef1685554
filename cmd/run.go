package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/daylab/labmate/internal/app"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/llm"
	"github.com/daylab/labmate/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppAt(cmd, false)
}

func runAppAt(cmd *cobra.Command, startQuiz bool) error {
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

	deps := app.Deps{
		Items:     items,
		Results:   st.ResultRepo(),
		StartQuiz: startQuiz,
	}
	if stats, err := st.ResultRepo().Stats(ctx); err == nil {
		deps.BestScore = stats.BestScore
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI safety briefings will be unavailable.")
	} else {
		deps.ExplainSvc = explain.NewService(provider, explain.DefaultConfig())
	}

	return app.Run(deps)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karthikv/numbersense/internal/app"
	"github.com/karthikv/numbersense/internal/feedback"
	"github.com/karthikv/numbersense/internal/llm"
	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/questiongen"
	"github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Settings:  settings.NewStore(st.KV()),
		Ledger:    progress.NewLedger(st.KV()),
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI-generated topics will be unavailable.")
	} else if provider != nil {
		opts.Generator = questiongen.New(provider, questiongen.DefaultConfig())
		opts.FeedbackSvc = feedback.NewService(provider, feedback.DefaultConfig())
	}

	return app.Run(opts)
}

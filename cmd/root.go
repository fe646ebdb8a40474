package cmd

import (
	"github.com/spf13/cobra"

	"github.com/karthikv/numbersense/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "numbersense",
	Short: "Numerical estimation trainer",
	Long:  "Numbersense is a terminal app for practicing numerical estimation, with AI-generated questions when an LLM provider is configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUMBERSENSE_DB env var)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NUMBERSENSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

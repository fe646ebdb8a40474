package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthikv/numbersense/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the available practice topics",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range topics.List() {
			kind := fmt.Sprintf("%d curated questions", len(t.Questions))
			if t.Generative() {
				kind = "AI-generated"
			}
			fmt.Printf("%-20s  %-22s  %s\n", t.ID, kind, t.Description)
		}
	},
}

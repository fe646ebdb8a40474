package cmd

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/topics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics per topic",
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
		ledger := progress.NewLedger(st.KV())
		records := ledger.Topics(ctx)

		fmt.Printf("%-22s  %9s  %8s  %9s  %9s\n",
			"Topic", "Attempted", "Correct", "Accuracy", "Sets Done")
		fmt.Println(strings.Repeat("─", 68))

		var any bool
		for _, topic := range topics.List() {
			rec, ok := records[topic.ID]
			if !ok || rec.Overall.Attempted == 0 {
				continue
			}
			any = true
			pct := int(math.Round(float64(rec.Overall.Correct) / float64(rec.Overall.Attempted) * 100))
			fmt.Printf("%-22s  %9d  %8d  %8d%%  %9d\n",
				topic.Name, rec.Overall.Attempted, rec.Overall.Correct, pct, rec.CompletedSets)
		}

		if !any {
			fmt.Println("No practice recorded yet.")
		}
		return nil
	},
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kleo12345/lead-scoring-system/internal/store"
)

var (
	leadsTier     string
	leadsMinScore int
	leadsLimit    int
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List stored scored leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cmd.Context(), cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}

		leads, err := st.ListLeads(cmd.Context(), store.LeadFilter{
			Tier:     leadsTier,
			MinScore: leadsMinScore,
			Limit:    leadsLimit,
		})
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			fmt.Println("no stored leads match")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tTIER\tBUSINESS\tCITY\tEMAIL\tSCORED AT")
		for _, lead := range leads {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				lead.TotalScore, lead.Tier, lead.BusinessName, lead.City,
				lead.Email, lead.ScoredAt.Format("2006-01-02 15:04"))
		}
		w.Flush() //nolint:errcheck

		counts, err := st.CountLeadsByTier(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println()
		for tier, n := range counts {
			fmt.Printf("%s: %d\n", tier, n)
		}
		return nil
	},
}

func init() {
	leadsCmd.Flags().StringVar(&leadsTier, "tier", "", "filter by tier name (e.g. \"HOT LEAD\")")
	leadsCmd.Flags().IntVar(&leadsMinScore, "min-score", 0, "only leads at or above this score")
	leadsCmd.Flags().IntVar(&leadsLimit, "limit", 50, "max leads to list")
	rootCmd.AddCommand(leadsCmd)
}

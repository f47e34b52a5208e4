package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/ingest"
	"github.com/Kleo12345/lead-scoring-system/internal/model"
	"github.com/Kleo12345/lead-scoring-system/internal/pipeline"
	"github.com/Kleo12345/lead-scoring-system/internal/scoring"
	"github.com/Kleo12345/lead-scoring-system/internal/scrape"
	"github.com/Kleo12345/lead-scoring-system/internal/store"
)

var (
	scoreFormat      string
	scoreOutput      string
	scoreSave        bool
	scoreConcurrency int
	scoreNoScrape    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [files...]",
	Short: "Score leads from spreadsheet files",
	Long:  "Reads XLSX/CSV lead lists, enriches each lead from its website and maps listing, and prints a ranked scorecard.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		scoringCfg, err := loadScoringConfig()
		if err != nil {
			return err
		}
		engine, err := scoring.NewEngine(scoringCfg)
		if err != nil {
			return err
		}

		var enricher pipeline.Enricher
		if !scoreNoScrape {
			enricher = scrape.NewScraper(cfg.Scrape)
		}
		p, err := pipeline.New(engine, enricher, pipeline.Options{
			Concurrency:    scoreConcurrency,
			SkipEnrichment: scoreNoScrape,
		})
		if err != nil {
			return err
		}

		leads := ingest.LoadFiles(args)
		if len(leads) == 0 {
			return eris.New("score: no leads loaded from input files")
		}

		result, err := p.Run(ctx, leads)
		if err != nil {
			return err
		}
		zap.L().Info("scoring pass complete",
			zap.Int("scored", len(result.Items)),
			zap.Int("invalid_emails", result.InvalidEmails),
		)

		if scoreSave {
			if err := saveLeads(cmd, result); err != nil {
				return err
			}
		}

		return writeOutput(result)
	},
}

// loadScoringConfig reads the weights file, falling back to defaults when it
// does not exist (run `leadscore initconfig` to materialize one).
func loadScoringConfig() (scoring.Config, error) {
	path := cfg.Scoring.ConfigPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zap.L().Debug("scoring config not found, using defaults", zap.String("path", path))
		return scoring.DefaultConfig(), nil
	}
	return scoring.LoadConfig(path)
}

func saveLeads(cmd *cobra.Command, result *pipeline.Result) error {
	st, err := store.Open(cmd.Context(), cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	if err := st.Migrate(cmd.Context()); err != nil {
		return err
	}

	scored := make([]model.ScoredLead, 0, len(result.Items))
	for _, item := range result.Items {
		scored = append(scored, item.Lead)
	}
	if err := st.SaveLeads(cmd.Context(), scored); err != nil {
		return err
	}
	zap.L().Info("saved scored leads", zap.Int("count", len(scored)))
	return nil
}

func writeOutput(result *pipeline.Result) error {
	out := os.Stdout
	if scoreOutput != "" {
		f, err := os.Create(scoreOutput)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", scoreOutput)
		}
		defer f.Close()
		out = f
	}

	switch scoreFormat {
	case "csv":
		return pipeline.WriteCSV(out, result.Items)
	case "table":
		printTable(out, result.Items)
		return nil
	default:
		return eris.Errorf("score: unknown format %q (want table or csv)", scoreFormat)
	}
}

func printTable(out *os.File, items []pipeline.Item) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tBUSINESS\tSCORE\tTIER\tEST. VALUE\tCITY\tEMAIL")
	for i, item := range items {
		lead := item.Lead
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			i+1, lead.BusinessName, lead.TotalScore, lead.Tier,
			lead.EstimatedValue, lead.City, lead.Email)
	}
	w.Flush() //nolint:errcheck
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "table", "output format: table or csv")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", "write output to file instead of stdout")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "persist scored leads to the configured store")
	scoreCmd.Flags().IntVar(&scoreConcurrency, "concurrency", 0, "max concurrent enrichment fetches (default 5)")
	scoreCmd.Flags().BoolVar(&scoreNoScrape, "no-scrape", false, "skip web enrichment and score input fields only")
	rootCmd.AddCommand(scoreCmd)
}

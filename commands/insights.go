package commands

import (
	"os"

	"fightstats/services"
	"fightstats/storage"

	"github.com/spf13/cobra"
)

var (
	insightsMinFights *int
	insightsTop       *int
)

func init() {
	insightsMinFights = insightsCmd.Flags().Int("min-fights", 5, "Minimum bouts for the win rate leaderboard.")
	insightsTop = insightsCmd.Flags().Int("top", 10, "Leaderboard size.")
	rootCmd.AddCommand(insightsCmd)
}

var insightsCmd = &cobra.Command{
	Use:   "insights [--min-fights 5] [--top 10]",
	Short: "Prints roster analytics from the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := storage.OpenFighterStore(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		fighters, err := store.LoadFighters(ctx)
		if err != nil {
			return err
		}

		report := services.NewInsightService(logger).Generate(fighters, *insightsMinFights, *insightsTop)
		services.PrintInsightReport(os.Stdout, report)
		return nil
	},
}

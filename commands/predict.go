package commands

import (
	"os"

	"fightstats/services"
	"fightstats/storage"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict <fighter A> <fighter B>",
	Short: "Predicts the winner of a matchup between two fighters in the database.",
	Args:  cobra.ExactArgs(2),
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
		a, err := services.FindFighter(fighters, args[0])
		if err != nil {
			return err
		}
		b, err := services.FindFighter(fighters, args[1])
		if err != nil {
			return err
		}

		services.PrintMatchup(os.Stdout, services.Predict(a, b))
		return nil
	},
}

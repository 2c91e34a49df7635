package commands

import (
	"fightstats/services"
	"fightstats/storage"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(etlCmd)
}

var etlCmd = &cobra.Command{
	Use:   "etl",
	Short: "Cleans the master file and replaces the database contents with it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := storage.OpenFighterStore(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := services.NewETL(store, logger).Run(ctx, cfg.MasterFile)
		if errors.Is(err, storage.ErrMasterMissing) {
			logger.Error("%s not found. Run the scraper and consolidate first.", cfg.MasterFile)
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("ETL complete: %d fighters loaded, %d skipped", res.Inserted, res.Skipped)
		return nil
	},
}

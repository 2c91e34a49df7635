package commands

import (
	"fightstats/services"
	"fightstats/storage"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(consolidateCmd)
}

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Merges partial checkpoint files into the deduplicated master file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := services.NewConsolidator(logger).Consolidate(cfg.PartialGlob, cfg.MasterFile)
		if errors.Is(err, storage.ErrNoInputFiles) {
			logger.Warn("No files matched %s, nothing to consolidate", cfg.PartialGlob)
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("Merged %d files (%d rows) into %d unique fighters", len(res.Files), res.Rows, res.Unique)
		return nil
	},
}

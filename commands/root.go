package commands

import (
	"context"
	"fmt"
	"os"

	"fightstats/config"
	"fightstats/utils"

	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *utils.Logger
)

var rootCmd = &cobra.Command{
	Use:           "fightstats",
	Short:         "fightstats scrapes UFC fighter statistics, loads them into a database and predicts matchups.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = utils.NewLogger(cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

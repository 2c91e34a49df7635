package commands

import (
	"fmt"
	"os"

	"fightstats/scraper/ufcstats"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fighterCmd)
}

var fighterCmd = &cobra.Command{
	Use:   "fighter <url>",
	Short: "Scrapes a single fighter page and prints every extracted field.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, closeFetcher := ufcstats.NewFetcher(cfg, logger)
		defer closeFetcher()

		f, err := ufcstats.NewCollector(cfg, fetcher, nil, logger).ScrapeFighter(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := os.Stdout
		fmt.Fprintf(w, "Name:      %s\n", f.Name)
		fmt.Fprintf(w, "Nickname:  %s\n", f.Nickname)
		fmt.Fprintf(w, "Record:    %s-%s-%s\n", f.Wins, f.Losses, f.Draws)
		fmt.Fprintf(w, "Height:    %s cm\n", f.HeightCm)
		fmt.Fprintf(w, "Reach:     %s cm\n", f.ReachCm)
		fmt.Fprintf(w, "Weight:    %s lbs\n", f.WeightLbs)
		fmt.Fprintf(w, "Stance:    %s\n", f.Stance)
		fmt.Fprintf(w, "DOB:       %s\n", f.DOB)
		fmt.Fprintf(w, "SLpM:      %s\n", f.SLpM)
		fmt.Fprintf(w, "SApM:      %s\n", f.SApM)
		fmt.Fprintf(w, "Str. Acc:  %s\n", f.StrAcc)
		fmt.Fprintf(w, "Str. Def:  %s\n", f.StrDef)
		fmt.Fprintf(w, "TD Avg:    %s\n", f.TDAvg)
		fmt.Fprintf(w, "TD Acc:    %s\n", f.TDAcc)
		fmt.Fprintf(w, "TD Def:    %s\n", f.TDDef)
		fmt.Fprintf(w, "Sub. Avg:  %s\n", f.SubAvg)
		return nil
	},
}

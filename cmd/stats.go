package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ycchou/corrnet/internal/config"
	"github.com/ycchou/corrnet/internal/dataset"
	"github.com/ycchou/corrnet/internal/ui"
)

func statsCmd() *cobra.Command {
	cfg := config.Load()
	var input string
	var threshold float64

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the filtered correlation table per tissue",
		Run: func(cmd *cobra.Command, args []string) {
			cols := dataset.Columns{
				Gene:   cfg.Data.GeneColumn,
				Tissue: cfg.Data.TissueColumn,
				Score:  cfg.Data.ScoreColumn,
			}

			res, err := dataset.Load(input, cols)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			filtered := dataset.Filter(res.Records, threshold)
			if len(filtered) == 0 {
				fmt.Printf("  No rows with %s >= %g in %s\n", cfg.Data.ScoreColumn, threshold, input)
				return
			}

			ui.Banner("dataset stats")

			var rows [][]string
			for _, ts := range dataset.Stats(filtered) {
				rows = append(rows, []string{
					ts.Tissue,
					fmt.Sprintf("%d", ts.Count),
					fmt.Sprintf("%.3f", ts.Mean),
					fmt.Sprintf("%.3f", ts.StdDev),
					fmt.Sprintf("%.3f", ts.Min),
					fmt.Sprintf("%.3f", ts.Max),
				})
			}
			ui.Table([]string{"Tissue", "Genes", "Mean PCC", "StdDev", "Min", "Max"}, rows)

			fmt.Printf("\n  %d rows kept (threshold %g), %d dropped, %d malformed\n",
				len(filtered), threshold, len(res.Records)-len(filtered), res.Skipped)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", cfg.Data.Input, "Input CSV path")
	cmd.Flags().Float64Var(&threshold, "threshold", cfg.Data.Threshold, "Minimum PCC to keep a row")
	return cmd
}

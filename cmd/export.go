package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ycchou/corrnet/internal/config"
	"github.com/ycchou/corrnet/internal/dataset"
	"github.com/ycchou/corrnet/internal/ui"
)

func exportCmd() *cobra.Command {
	cfg := config.Load()
	var format string
	opt := renderOptions{
		columns: dataset.Columns{
			Gene:   cfg.Data.GeneColumn,
			Tissue: cfg.Data.TissueColumn,
			Score:  cfg.Data.ScoreColumn,
		},
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Emit the positioned graph as JSON or DOT on stdout",
		Run: func(cmd *cobra.Command, args []string) {
			report := &renderReport{}
			g, err := buildNetwork(opt, false, report)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			switch format {
			case "json":
				data, err := g.ExportJSON()
				if err != nil {
					ui.Bad.Printf("  Export failed: %v\n", err)
					os.Exit(1)
				}
				fmt.Println(string(data))
			case "dot":
				fmt.Print(g.ExportDOT())
			default:
				ui.Bad.Printf("  Unknown format: %s (use json or dot)\n", format)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format: json or dot")
	cmd.Flags().StringVarP(&opt.input, "input", "i", cfg.Data.Input, "Input CSV path")
	cmd.Flags().StringVarP(&opt.central, "central", "c", cfg.Graph.Central, "Central gene symbol")
	cmd.Flags().Float64Var(&opt.threshold, "threshold", cfg.Data.Threshold, "Minimum PCC to keep a row")
	cmd.Flags().IntVar(&opt.maxGenes, "max-genes", cfg.Graph.MaxGenesPerTissue, "Gene node cap per tissue")
	cmd.Flags().Float64Var(&opt.radius, "radius", cfg.Layout.Radius, "Tissue ring radius")
	cmd.Flags().Int64Var(&opt.seed, "seed", cfg.Layout.Seed, "Layout random seed (0 = time-based)")
	return cmd
}

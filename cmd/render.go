package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ycchou/corrnet/internal/config"
	"github.com/ycchou/corrnet/internal/dataset"
	"github.com/ycchou/corrnet/internal/graph"
	"github.com/ycchou/corrnet/internal/layout"
	"github.com/ycchou/corrnet/internal/render"
	"github.com/ycchou/corrnet/internal/ui"
)

// renderOptions collects everything the pipeline needs; flag values
// default from the config file.
type renderOptions struct {
	input     string
	columns   dataset.Columns
	threshold float64
	central   string
	maxGenes  int
	radius    float64
	seed      int64
	output    string
	title     string
	open      bool
}

// renderReport summarizes a completed pipeline run.
type renderReport struct {
	FilteredRows int
	SkippedRows  int
	Tissues      int
	GenesAdded   int
	GenesMerged  int
	Output       string
}

func renderCmd() *cobra.Command {
	cfg := config.Load()
	opt := renderOptions{
		columns: dataset.Columns{
			Gene:   cfg.Data.GeneColumn,
			Tissue: cfg.Data.TissueColumn,
			Score:  cfg.Data.ScoreColumn,
		},
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network to a self-contained HTML file",
		Run: func(cmd *cobra.Command, args []string) {
			report, err := runRender(opt, true)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			ui.Good.Printf("  %s Network visualization saved to %s\n", ui.StatusIcon(true), report.Output)

			if opt.open {
				if err := render.OpenBrowser(report.Output); err != nil {
					fmt.Printf("  %s Could not open viewer: %v\n", ui.WarnIcon(), err)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&opt.input, "input", "i", cfg.Data.Input, "Input CSV path")
	cmd.Flags().StringVarP(&opt.output, "output", "o", cfg.Render.Output, "Output HTML path")
	cmd.Flags().StringVarP(&opt.central, "central", "c", cfg.Graph.Central, "Central gene symbol")
	cmd.Flags().Float64Var(&opt.threshold, "threshold", cfg.Data.Threshold, "Minimum PCC to keep a row")
	cmd.Flags().IntVar(&opt.maxGenes, "max-genes", cfg.Graph.MaxGenesPerTissue, "Gene node cap per tissue")
	cmd.Flags().Float64Var(&opt.radius, "radius", cfg.Layout.Radius, "Tissue ring radius")
	cmd.Flags().Int64Var(&opt.seed, "seed", cfg.Layout.Seed, "Layout random seed (0 = time-based)")
	cmd.Flags().StringVar(&opt.title, "title", cfg.Render.Title, "Document title (default derived from central gene)")
	cmd.Flags().BoolVar(&opt.open, "open", cfg.Render.Open, "Open the result in the default browser")
	return cmd
}

// buildNetwork runs load → filter → build → layout and returns the
// positioned graph.
func buildNetwork(opt renderOptions, verbose bool, report *renderReport) (*graph.Graph, error) {
	res, err := dataset.Load(opt.input, opt.columns)
	if err != nil {
		return nil, err
	}

	filtered := dataset.Filter(res.Records, opt.threshold)
	tissues := dataset.Tissues(filtered)
	counts := dataset.CountByTissue(filtered)
	report.FilteredRows = len(filtered)
	report.SkippedRows = res.Skipped

	if verbose {
		fmt.Printf("  Found %d tissue types with %d genes\n", len(tissues), len(filtered))
		if res.Skipped > 0 {
			fmt.Printf("  %s Skipped %d malformed rows\n", ui.WarnIcon(), res.Skipped)
		}
	}

	g := graph.New()
	if err := g.AddCentral(opt.central); err != nil {
		return nil, err
	}
	for _, label := range tissues {
		if err := g.AddTissue(label, counts[label]); err != nil {
			return nil, err
		}
	}
	report.Tissues = len(tissues)

	for _, label := range tissues {
		recs := dataset.ByTissue(filtered, label)
		if verbose && len(recs) > opt.maxGenes {
			fmt.Printf("  Limiting %s genes from %d to %d\n", label, len(recs), opt.maxGenes)
		}
		added, merged, err := g.AddGenes(label, recs, opt.maxGenes)
		if err != nil {
			return nil, err
		}
		report.GenesAdded += added
		report.GenesMerged += merged
	}

	if verbose {
		fmt.Printf("  Added %d gene nodes to graph\n", report.GenesAdded)
		if report.GenesMerged > 0 {
			fmt.Printf("  %s %d gene symbols already claimed by another tissue (kept first)\n",
				ui.WarnIcon(), report.GenesMerged)
		}
	}

	engine := layout.New(layout.Config{Radius: opt.radius, Seed: opt.seed})
	engine.Apply(g)
	return g, nil
}

// runRender executes the full pipeline and writes the HTML artifact.
// Nothing touches the output path until the whole document has rendered
// in memory, so a failure never leaves a partial file behind.
func runRender(opt renderOptions, verbose bool) (*renderReport, error) {
	if verbose {
		fmt.Printf("  Loading data from %s...\n", opt.input)
	}

	report := &renderReport{Output: opt.output}
	g, err := buildNetwork(opt, verbose, report)
	if err != nil {
		return nil, err
	}

	title := opt.title
	if title == "" {
		title = render.DefaultTitle(opt.central, opt.threshold)
	}

	nodes, links := g.Payload()
	doc, err := render.Document(title, nodes, links)
	if err != nil {
		return nil, err
	}
	if err := render.Write(opt.output, doc); err != nil {
		return nil, err
	}
	return report, nil
}

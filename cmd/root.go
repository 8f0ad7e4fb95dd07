package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ycchou/corrnet/internal/ui"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "corrnet",
	Short: "corrnet — gene co-expression network visualizer",
	Long: ui.Brand.Sprint(ui.Helix+" corrnet") + " — render gene co-expression networks\n" +
		ui.Subtle.Sprint("Filter a PCC table and generate a self-contained interactive HTML view"),
	Version: version + " " + ui.Helix,
}

func init() {
	rootCmd.SetVersionTemplate("corrnet {{ .Version }}\n")

	rootCmd.AddCommand(
		renderCmd(),
		statsCmd(),
		exportCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

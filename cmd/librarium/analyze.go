package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamshu/librarium/analysis"
	"github.com/jamshu/librarium/files"
	"github.com/jamshu/librarium/visualize"
)

var flagAnalyzeCharts bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.json>",
	Short: "Analyze a previously saved library file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := files.NewManager(cfg.OutputDir, logger)
		if err != nil {
			return err
		}

		lib, err := manager.LoadLibraryJSON(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}

		analyzer := analysis.New()
		fmt.Print(analyzer.Report(lib))

		if flagAnalyzeCharts {
			viz, err := visualize.NewVisualizer(visualize.NewChartRenderer(analyzer), cfg.OutputDir, logger)
			if err != nil {
				return err
			}
			paths, err := viz.SaveAll(lib)
			if err != nil {
				return err
			}
			fmt.Println("\nCharts:")
			for _, p := range paths {
				fmt.Printf("  %s\n", p)
			}
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagAnalyzeCharts, "charts", false, "render charts")
	rootCmd.AddCommand(analyzeCmd)
}

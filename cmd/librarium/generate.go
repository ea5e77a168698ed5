package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamshu/librarium/analysis"
	"github.com/jamshu/librarium/files"
	"github.com/jamshu/librarium/gemini"
	"github.com/jamshu/librarium/generate"
	"github.com/jamshu/librarium/visualize"
)

var (
	flagBooks  int
	flagFile   string
	flagCharts bool
	flagCSV    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a library, validate it, and save it with statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gemini.New(cfg)
		if err != nil {
			return err
		}
		pipeline := generate.New(client, logger)

		lib, err := pipeline.Library(cmd.Context(), flagBooks)
		if err != nil {
			return err
		}

		fmt.Printf("Created library: %s\n\n", lib)
		for i, b := range lib.Books {
			fmt.Printf("  %d. %s\n", i+1, b)
		}

		manager, err := files.NewManager(cfg.OutputDir, logger)
		if err != nil {
			return err
		}
		path, err := manager.SaveLibraryJSON(lib, flagFile)
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved to %s\n", path)

		analyzer := analysis.New()
		fmt.Println()
		fmt.Print(analyzer.Report(lib))

		if flagCSV {
			stats := analyzer.Basic(lib)
			if _, err := manager.SaveCSV(stats.CSVRows(), "library_stats.csv"); err != nil {
				return err
			}
		}

		if flagCharts {
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
	generateCmd.Flags().IntVarP(&flagBooks, "books", "n", 5, "number of books to generate")
	generateCmd.Flags().StringVar(&flagFile, "file", "library_data.json", "output JSON filename")
	generateCmd.Flags().BoolVar(&flagCharts, "charts", false, "render charts")
	generateCmd.Flags().BoolVar(&flagCSV, "csv", false, "export statistics as CSV")
	rootCmd.AddCommand(generateCmd)
}

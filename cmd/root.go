package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "Screening-test MCQ generator",
	Long: "quizgen generates math word-problem MCQs for school screening tests, " +
		"collects them into question papers and exports worksheets, papers and answer keys as PDF.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (overrides generation.seed; 0 seeds from the clock)")
	rootCmd.PersistentFlags().String("out", "", "Directory for exported PDFs (overrides pdf.output_dir)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Export generated MCQs as a worksheet PDF with an answer key",
	Example: `  quizgen worksheet --school SOF --concept "simple interest" --difficulty "easy only" --count 20 --out ./pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, false, explainOff)
		if err != nil {
			return err
		}
		defer d.Close()

		draw, err := drawFromFlags(cmd, d.session)
		if err != nil {
			return err
		}
		if len(draw.MCQs) == 0 {
			return fmt.Errorf("no questions could be generated")
		}

		path, err := d.session.ExportWorksheet(draw)
		if err != nil {
			return fmt.Errorf("export worksheet: %w", err)
		}
		fmt.Fprintf(out(cmd), "Wrote %d questions to %s\n", len(draw.MCQs), path)
		return nil
	},
}

func init() {
	addSelectionFlags(worksheetCmd, 20)
	worksheetCmd.Flags().Bool("classic", false, "Use the classic percentage worksheet family (ignores --school and --concept)")
}

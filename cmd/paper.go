package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paperCmd = &cobra.Command{
	Use:   "paper <concept:difficulty:count>...",
	Short: "Build a question paper and export it with its answer key",
	Long: `Build a question paper for one school and set from one or more sections,
then export the paper and its answer key as PDFs.

Each section is concept:difficulty:count. Sections print in the school's
concept order regardless of argument order.`,
	Example: `  quizgen paper --school SOB --set A "profit and loss:medium 1:5" "simple interest:easy only:5"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schoolFlag, _ := cmd.Flags().GetString("school")
		setName, _ := cmd.Flags().GetString("set")

		school, err := parseSchool(schoolFlag)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd, false, explainOff)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		p, err := d.session.Papers().Create(ctx, school.ID, setName)
		if err != nil {
			return err
		}

		w := out(cmd)
		for _, spec := range args {
			req, err := parseSectionSpec(school, spec)
			if err != nil {
				return err
			}
			draw, err := d.session.Generate(req)
			if err != nil {
				return err
			}
			if len(draw.MCQs) < req.Count {
				fmt.Fprintf(w, "%s: could only generate %d unique questions (asked for %d)\n", req.Concept, len(draw.MCQs), req.Count)
			}
			if len(draw.MCQs) == 0 {
				continue
			}
			if _, err := d.session.AddToActive(ctx, draw.AllEntries()); err != nil {
				return fmt.Errorf("add %s: %w", req.Concept, err)
			}
		}

		paperPath, keyPath, err := d.session.ExportPaper(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("export %s: %w", p.ID, err)
		}
		fmt.Fprintf(w, "Wrote %s\nWrote %s\n", paperPath, keyPath)
		return nil
	},
}

func init() {
	paperCmd.Flags().String("school", "", "School track: SOP, SOB, SOF or BCA")
	paperCmd.Flags().String("set", "", "Set name, e.g. A")
	_ = paperCmd.MarkFlagRequired("school")
	_ = paperCmd.MarkFlagRequired("set")
}

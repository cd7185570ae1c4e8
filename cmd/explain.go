package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/llm"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Generate one question and ask the LLM for a worked solution",
	Example: `  QUIZGEN_PROVIDER=openai OPENAI_API_KEY=... quizgen explain --school SOB --concept "simple interest" --difficulty "medium 2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, false, explainRequired)
		if err != nil {
			return err
		}
		defer d.Close()

		req, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}
		req.Count = 1
		draw, err := d.session.Generate(req)
		if err != nil {
			return err
		}
		if len(draw.MCQs) == 0 {
			return fmt.Errorf("no question could be generated")
		}
		printDraw(out(cmd), draw)

		m := draw.MCQs[0]
		sol, err := d.session.Explain(cmd.Context(), explain.FromQuestion(draw.Concept, m.Question, m.Set))
		if err != nil {
			return fmt.Errorf("explain: %w", err)
		}

		w := out(cmd)
		fmt.Fprintln(w, "\nWorked solution")
		for i, step := range sol.Steps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
		fmt.Fprintf(w, "Answer: %s\n", sol.Answer)
		if sol.Tip != "" {
			fmt.Fprintf(w, "Tip: %s\n", sol.Tip)
		}
		if !sol.Agrees {
			fmt.Fprintln(w, "Warning: the explanation does not match the generated answer.")
		}

		usage := fmt.Sprintf("%s · %d in / %d out tokens", sol.Model, sol.Usage.InputTokens, sol.Usage.OutputTokens)
		if cost, ok := llm.EstimateCost(sol.Model, sol.Usage); ok {
			usage += fmt.Sprintf(" · ~$%.5f", cost)
		}
		fmt.Fprintln(w, usage)
		return nil
	},
}

func init() {
	addSelectionFlags(explainCmd, 1)
	_ = explainCmd.Flags().MarkHidden("count")
}

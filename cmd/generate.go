package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate MCQs and print them with an answer key",
	Example: `  quizgen generate --school SOB --concept "profit and loss" --difficulty "medium 2" --count 5
  quizgen generate --classic --difficulty "hard only" --count 10`,
	RunE: runGenerate,
}

func init() {
	addSelectionFlags(generateCmd, 10)
	generateCmd.Flags().Bool("classic", false, "Use the classic percentage worksheet family (ignores --school and --concept)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd, false, explainOff)
	if err != nil {
		return err
	}
	defer d.Close()

	draw, err := drawFromFlags(cmd, d.session)
	if err != nil {
		return err
	}
	printDraw(out(cmd), draw)
	return nil
}

// drawFromFlags runs the generation the selection flags ask for.
func drawFromFlags(cmd *cobra.Command, sess *session.Session) (*session.Draw, error) {
	if classic, _ := cmd.Flags().GetBool("classic"); classic {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		v, err := problemgen.ParseVariant(strings.ToLower(strings.TrimSpace(difficulty)))
		if err != nil {
			return nil, err
		}
		return sess.GenerateClassic(v, count)
	}

	req, err := selectionFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return sess.Generate(req)
}

func printDraw(w io.Writer, d *session.Draw) {
	school := d.School.Label
	if school == "" {
		school = "Classic worksheet"
	}
	fmt.Fprintf(w, "%s · %s · %s\n", school, catalog.Title(d.Concept), d.Difficulty.Label)
	if d.Outcome != problemgen.OutcomeFull {
		fmt.Fprintf(w, "Could only generate %d unique questions (asked for %d).\n", len(d.MCQs), d.Count)
	}
	fmt.Fprintln(w)

	for i, m := range d.MCQs {
		fmt.Fprintf(w, "Q%d. %s\n", i+1, m.Question.Text)
		for _, o := range m.Set.Options {
			fmt.Fprintf(w, "    %s) %s\n", o.Letter, o.Text)
		}
		fmt.Fprintln(w)
	}

	if len(d.MCQs) == 0 {
		return
	}
	fmt.Fprintln(w, "Answer key")
	for i, m := range d.MCQs {
		fmt.Fprintf(w, "  Q%d. %s  (%s)\n", i+1, m.Set.CorrectLetter, problemgen.AnswerText(m.Question))
	}
}

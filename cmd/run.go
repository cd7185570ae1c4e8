package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/app"
)

// runApp builds the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd, true, explainOptional)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(d.session)
}

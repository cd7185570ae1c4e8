package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List schools, concepts and difficulties",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := out(cmd)
		for _, s := range catalog.Schools() {
			fmt.Fprintf(w, "%s  %s\n", s.ID, s.FullName)
			for _, c := range s.Concepts {
				labels := make([]string, len(c.Difficulties))
				for i, d := range c.Difficulties {
					labels[i] = string(d.Variant)
				}
				fmt.Fprintf(w, "    %-36s %s\n", c.ID, strings.Join(labels, ", "))
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

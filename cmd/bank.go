package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/objective"
	"github.com/abhisek/stdexam/internal/ui/theme"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank <file>",
	Short: "List the problems in a problem bank with their objectives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCourse(cmd)
		if err != nil {
			return err
		}

		b, err := bank.ParseFile(args[0], c.Marker)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%4s  %-12s  %5s  %s", "#", "Objectives", "Lines", "Statement")))
		fmt.Fprintln(out, theme.Rule(100))

		for i, p := range b.Problems() {
			first, _, _ := strings.Cut(p.Statement, "\n")
			first = theme.Truncate(strings.TrimSpace(first), 70)
			lines := strings.Count(strings.TrimRight(p.Statement, "\r\n"), "\n") + 1
			fmt.Fprintf(out, "%4d  %-12s  %5d  %s\n", i+1, objective.Format(p.Tags), lines, first)
		}

		fmt.Fprintf(out, "\n%d problems\n", b.Len())
		return nil
	},
}

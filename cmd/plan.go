package cmd

import (
	"fmt"

	"github.com/abhisek/stdexam/internal/document"
	"github.com/abhisek/stdexam/internal/ui/theme"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <roster> <bank>",
	Short: "Show how many problems each student will receive, without writing a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCourse(cmd)
		if err != nil {
			return err
		}

		plan, err := document.PlanFiles(args[0], args[1], document.WithCourse(c))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(plan.Sections) == 0 {
			fmt.Fprintln(out, "No students found.")
			return nil
		}

		// Header.
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%-40s  %8s  %8s  %8s  %s", "Student", "Mastered", "Included", "Skipped", "Form")))
		fmt.Fprintln(out, theme.Rule(100))

		var total int
		for _, s := range plan.Sections {
			name := theme.Truncate(s.Identity, 40)
			included := fmt.Sprintf("%8d", len(s.Problems))
			if len(s.Problems) == 0 {
				included = theme.Pending.Render(included)
			}
			fmt.Fprintf(out, "%-40s  %8d  %s  %8d  %s\n",
				name, s.Mastered.Len(), included, s.Excluded, theme.Hint.Render(s.FormID.String()))
			total += len(s.Problems)
		}

		fmt.Fprintf(out, "\n%d students, %d problems in bank, %d problems printed\n",
			len(plan.Sections), plan.BankSize, total)
		return nil
	},
}

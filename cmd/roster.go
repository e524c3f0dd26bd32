package cmd

import (
	"fmt"

	"github.com/abhisek/stdexam/internal/mastery"
	"github.com/abhisek/stdexam/internal/roster"
	"github.com/abhisek/stdexam/internal/ui/theme"
	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster <file>",
	Short: "List students and the objectives they have mastered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCourse(cmd)
		if err != nil {
			return err
		}

		r, err := roster.ParseFile(args[0], c.Layout())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if r.Len() == 0 {
			fmt.Fprintln(out, "No students found.")
			return nil
		}

		// Header.
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%-40s  %13s  %13s  %13s  %s",
			"Student", mastery.StateMastered.Label(), mastery.StateInProgress.Label(),
			mastery.StateNotAttempted.Label(), "Mastered objectives")))
		fmt.Fprintln(out, theme.Rule(100))

		for _, rec := range r.Records() {
			name := theme.Truncate(rec.Identity, 40)
			s := mastery.Summarize(rec)
			fmt.Fprintf(out, "%-40s  %13d  %13d  %13d  %s\n",
				name, s.Mastered, s.InProgress, s.NotAttempted,
				theme.Mastered.Render(mastery.Mastered(rec).String()))
		}

		fmt.Fprintf(out, "\n%d students, %d objectives\n", r.Len(), r.NumObjectives())
		return nil
	},
}

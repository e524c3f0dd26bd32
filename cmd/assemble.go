package cmd

import (
	"fmt"

	"github.com/abhisek/stdexam/internal/document"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <roster> <bank> <output>",
	Short: "Write the personalized tests for every student",
	Long: `Read a gradebook export (CSV or XLSX) and a LaTeX problem bank, and write one
LaTeX document with a test for each student. Problems whose objectives the
student has already mastered are left off. Use "-" as output to write to stdout.`,
	Args: cobra.ExactArgs(3),
	RunE: runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) error {
	rosterPath, bankPath, outPath := args[0], args[1], args[2]

	c, err := resolveCourse(cmd)
	if err != nil {
		return err
	}

	if outPath == "-" {
		plan, err := document.PlanFiles(rosterPath, bankPath, document.WithCourse(c))
		if err != nil {
			return err
		}
		return document.Write(cmd.OutOrStdout(), plan, c)
	}

	if err := document.Assemble(rosterPath, bankPath, outPath, document.WithCourse(c)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
	return nil
}

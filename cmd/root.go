package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/abhisek/stdexam/internal/course"
	"github.com/abhisek/stdexam/internal/ui/theme"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stdexam",
	Short: "Personalized standards-based assessments",
	Long: "stdexam builds one LaTeX document holding a custom test for every student on a roster,\n" +
		"leaving off the problems whose objectives the student has already mastered.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		noColor, _ := cmd.Flags().GetBool("no-color")
		theme.SetEnabled(!noColor && os.Getenv("NO_COLOR") == "")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to course YAML file (overrides STDEXAM_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveCourse returns the course configuration using the --config flag
// (highest priority), then the STDEXAM_CONFIG env var, then the defaults.
// STDEXAM_* field overrides are applied last.
func resolveCourse(cmd *cobra.Command) (course.Course, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("STDEXAM_CONFIG")
	}

	c := course.DefaultCourse()
	if path != "" {
		loaded, err := course.Load(path)
		if err != nil {
			return course.Course{}, fmt.Errorf("load course config: %w", err)
		}
		c = loaded
		slog.Debug("course config loaded", "path", path)
	}

	if err := c.ApplyEnv(); err != nil {
		return course.Course{}, err
	}
	if err := c.Validate(); err != nil {
		return course.Course{}, fmt.Errorf("course config: %w", err)
	}
	return c, nil
}

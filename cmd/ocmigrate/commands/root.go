// Package commands implements the CLI surface of ocmigrate.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ocmigrate/internal/config"
	"github.com/thoreinstein/ocmigrate/internal/convert"
	ocerrors "github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/logging"
	"github.com/thoreinstein/ocmigrate/internal/paths"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ocmigrate version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "ocmigrate",
	Short: "Convert a project's Claude Code configuration to OpenCode",
	Long: `ocmigrate converts the Claude Code configuration of a project
(.claude/agents, .claude/commands, .claude/skills, .claude/rules and the
.mcp.json server registry) into the OpenCode layout under .opencode/.

The output directory is owned by ocmigrate: it is destroyed and rebuilt
from scratch on every run, so the conversion is always reproducible.
The project root is detected by walking up from the working directory
until a CLAUDE.md marker file is found.`,
	Example: `  # Convert the current project
  ocmigrate

  # Show what each converter did
  ocmigrate -v`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: run,
}

func run(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "resolving working directory")
	}

	root, err := paths.FindProjectRoot(cwd)
	if err != nil {
		if errors.Is(err, ocerrors.ErrNoProjectRoot) {
			return ocerrors.NewNoProjectError(err,
				fmt.Sprintf("Run ocmigrate inside a project containing a %s file", paths.MarkerFile))
		}
		return err
	}

	config.Init(root)
	cfg, err := config.Load()
	if err != nil {
		return ocerrors.NewUserError(err, "Check the ocmigrate.yaml config file")
	}

	project := paths.NewProject(root)
	slog.Debug("starting migration", "root", root, "output", project.OutputRoot())

	rep, err := convert.Run(project, cfg)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(),
			"%s agents=%d commands=%d skills=%d rules=%d mcp=%d → %s\n",
			color.GreenString("migrated"),
			rep.Agents, rep.Commands, rep.Skills, rep.Rules, rep.Servers,
			paths.OutputDirName)
	}

	return nil
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return ocerrors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"use at most one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("OCMIGRATE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return ocerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// Execute runs the root command, printing errors and suggestions to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr *ocerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
	}
	return err
}

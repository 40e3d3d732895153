package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpyw/retval/internal/config"
	"github.com/mpyw/retval/internal/funcspec"
	"github.com/mpyw/retval/internal/log"
	"github.com/mpyw/retval/internal/output"
	"github.com/mpyw/retval/internal/runner"
)

// errDiagnostics signals that the run succeeded and found problems.
var errDiagnostics = errors.New("diagnostics found")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retvalreport [flags] [packages]",
		Short: "Report ignored results of functions marked with //retval:mustuse",
		Long: `retvalreport loads the given packages (default ./...) and reports every call
whose result is discarded although the called function is marked with a
//retval:mustuse directive or named with --funcs.`,
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("format", config.FormatText, "output format (text|json|yaml)")
	flags.String("color", config.ColorAuto, "colorize text output (auto|on|off)")
	flags.StringSlice("funcs", nil, "additional functions whose result must be used (e.g., pkg.Func or pkg.Type.Method)")
	flags.Int("jobs", 0, "max parallel package passes (0=GOMAXPROCS)")
	flags.Bool("tests", false, "include test files")
	flags.String("config", "", "path to a "+config.FileName+" file (default: discovered from the working directory)")
	flags.StringP("dir", "C", "", "run as if started in this directory")
	flags.BoolP("verbose", "v", false, "log progress to stderr")

	return cmd
}

// runReport loads configuration, runs the analysis and prints the result.
// It returns errDiagnostics when any diagnostic was printed.
func runReport(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}

	logger := &log.Logger{Enabled: verbose, W: cmd.ErrOrStderr()}

	cfg, err := loadConfig(cmd, dir, logger)
	if err != nil {
		return err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	useColor, err := output.UseColor(cfg.Color, stdoutFile(cmd))
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Format, useColor)
	if err != nil {
		return err
	}

	diags, err := runner.Run(cmd.Context(), runner.Options{
		Dir:      dir,
		Patterns: args,
		Tests:    cfg.Tests,
		Funcs:    funcspec.ParseList(cfg.FuncList()),
		Jobs:     cfg.Jobs,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(cmd.OutOrStdout(), diags); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(diags) > 0 {
		return errDiagnostics
	}

	return nil
}

// loadConfig reads the --config file, or the discovered one, or defaults.
func loadConfig(cmd *cobra.Command, dir string, logger *log.Logger) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	if path == "" {
		start := dir
		if start == "" {
			start = "."
		}

		path, err = config.Discover(start)
		if err != nil {
			return nil, err
		}
	}

	if path == "" {
		return config.Defaults(), nil
	}

	logger.Printf("using config %s", path)

	return config.Load(path)
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error

	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}

	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}

	if flags.Changed("funcs") {
		if cfg.Funcs, err = flags.GetStringSlice("funcs"); err != nil {
			return fmt.Errorf("failed to get funcs flag: %w", err)
		}
	}

	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	if flags.Changed("tests") {
		if cfg.Tests, err = flags.GetBool("tests"); err != nil {
			return fmt.Errorf("failed to get tests flag: %w", err)
		}
	}

	return nil
}

// stdoutFile returns the command's output as a file when it is one.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

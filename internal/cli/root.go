package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/tcalc/internal/calc"
	"github.com/yildizm/tcalc/internal/config"
	"github.com/yildizm/tcalc/internal/logging"
	"github.com/yildizm/tcalc/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	themeName string
	logFile   string
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tcalc",
		Short: "Terminal keypad calculator",
		Long: `tcalc is a keypad calculator for the terminal.

Buttons are pressed with the mouse, or by moving the highlight with the
arrow keys and pressing Enter. Expressions are evaluated with standard
operator precedence when "=" is pressed, and the result can be chained
into the next calculation.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runKeypad,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme (default, high-contrast, minimal)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(newPressCommand())
	rootCmd.AddCommand(newKeypadCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// runKeypad starts the interactive keypad
func runKeypad(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if themeName != "" {
		cfg.UI.Theme = themeName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logPath := cfg.Logging.File
	if logFile != "" {
		logPath = logFile
	}
	logger, closeLog, err := logging.NewFile(logPath, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	opts := ui.OptionsFromConfig(cfg, noColor)
	opts.Logger = logging.WithComponent(logger, "ui")
	model := ui.NewModel(calc.New(calc.WithLogger(logging.WithComponent(logger, "calc"))), opts)

	var watcher *config.Watcher
	if cfg.Watch.Enabled {
		if path, found := config.ResolveConfigFile(cfgFile); found {
			watcher, err = config.NewWatcher(path, cfgFile, config.NewLoader())
			if err != nil {
				logger.Warn("config hot reload disabled", "error", err)
			} else {
				defer func() { _ = watcher.Close() }()
				logger.Debug("watching config file", "path", watcher.Path())
			}
		}
	}

	return ui.Run(cmd.Context(), model, ui.RunOptions{
		Mouse:   cfg.UI.Mouse,
		Watcher: watcher,
	})
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tcalc %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manasm11/gamebrief/internal/config"
	"github.com/manasm11/gamebrief/internal/export"
	"github.com/manasm11/gamebrief/internal/generator"
	"github.com/manasm11/gamebrief/internal/logging"
	"github.com/manasm11/gamebrief/internal/preflight"
	"github.com/manasm11/gamebrief/internal/state"
	"github.com/manasm11/gamebrief/internal/tui"
	"github.com/manasm11/gamebrief/internal/wizard"
)

var (
	configPath    string
	logLevel      string
	resumeFrom    string
	skipPreflight bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gamebrief",
	Short: "Answer a few questions, get a blueprint prompt for your game or app",
	Long: `gamebrief walks you through a questionnaire about the game or app you
want to build and assembles a Markdown blueprint to paste into an LLM.

  gamebrief            Run the interactive wizard (default)
  gamebrief generate   Build a blueprint from an answer file
  gamebrief flow       Show the steps an answer file walks through`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runWizard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default $"+config.EnvPath+" or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "",
		"Log level: debug, info, warn, error (overrides the config)")
	rootCmd.Flags().StringVar(&resumeFrom, "answers", "",
		"Start the wizard from a YAML or JSON answer file")
	rootCmd.Flags().BoolVar(&skipPreflight, "no-preflight", false,
		"Skip the clipboard and browser checks")
}

// setup loads the config and opens the log file before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	l, err := logging.New(cfg.Logging.File, level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !skipPreflight {
		for _, r := range preflight.RunAll() {
			if !r.Found {
				fmt.Fprintf(cmd.ErrOrStderr(), "  ! %s: %s\n", r.Purpose, r.Error)
				logger.Warn("preflight check failed", zap.String("purpose", r.Purpose), zap.String("error", r.Error))
			}
		}
	}

	opts := []wizard.Option{
		wizard.WithLogger(logger),
		wizard.WithGeneratorOptions(generator.Options{TargetModel: cfg.TargetModel}),
	}
	if resumeFrom != "" {
		a, err := state.LoadAnswers(resumeFrom)
		if err != nil {
			return err
		}
		opts = append(opts, wizard.WithAnswers(a))
	}

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	_, err := tui.Run(cmd.Context(), tui.Deps{
		Session:    wizard.New(opts...),
		Config:     cfg,
		ConfigPath: path,
		Theme:      tui.DetectTheme(cfg.Theme),
		Clipboard:  export.SystemClipboard{},
		Open:       export.OpenURL,
		Logger:     logger,
	})
	return err
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

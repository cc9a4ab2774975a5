package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ropenv/internal/config"
	"github.com/ib-77/ropenv/internal/logging"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	configPath string
	logLevel   string
	logFormat  string
	workers    int
	failFast   bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ropenv",
		Short: "Run environment-reading calculation pipelines",
		Long: `ropenv runs the banking and number pipelines built on reader computations:
every stage reads an immutable environment, may fail, and hands its output to
the next stage. The first failure stops the run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML file with presets and demo cases")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	flags.IntVarP(&a.workers, "workers", "w", 0, "parallel runs for demo (0 = config or CPU count)")
	flags.BoolVar(&a.failFast, "fail-fast", false, "stop pending demo runs after the first failure")

	rootCmd.AddCommand(
		newBankCmd(a),
		newNumberCmd(a),
		newDemoCmd(a),
		newPresetsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = a.failFast
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ropenv %s\n", Version)
		},
	}
}

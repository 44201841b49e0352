package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vegasq/seqcat/config"
	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/output"
	"github.com/vegasq/seqcat/reader"
	"github.com/vegasq/seqcat/store"
)

// rootOptions holds the global flags and the configuration they resolve to.
type rootOptions struct {
	configPath string
	data       string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg   config.Config
	runID string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "seqcat",
		Short:         "Lazy sequence queries over a course catalogue and parquet files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.data, "data", "", "catalogue YAML file or parquet directory (default: embedded catalogue)")
	flags.StringVar(&opts.logLevel, "log-level", opts.cfg.Log.Level, "log level (debug|info|warn|error)")
	flags.StringVar(&opts.logFormat, "log-format", opts.cfg.Log.Format, "log format (console|json)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newTourCommand(opts),
		newListCommand(opts),
		newRunCommand(opts),
		newRowsCommand(opts),
		newSchemaCommand(opts),
		newFixtureCommand(opts),
	)
	return cmd
}

// setup merges the config file with the flags given on the command line and
// installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = o.data
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if o.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	o.runID = uuid.NewString()
	logging.SetGlobalLogger(logger.With().Str("run_id", o.runID).Logger())
	logging.Debug().Str("command", cmd.Name()).Str("data", cfg.Data).Msg("starting")

	o.cfg = cfg
	return nil
}

func (o *rootOptions) openStore() (*store.Context, error) {
	cat, err := reader.LoadCatalog(o.cfg.Data)
	if err != nil {
		return nil, err
	}
	ctx, err := store.Open(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return ctx, nil
}

// formatter resolves the -f flag of cmd, falling back to the configured
// format when the flag was not given.
func (o *rootOptions) formatter(cmd *cobra.Command, flagValue string) (output.Formatter, error) {
	name := flagValue
	if !cmd.Flags().Changed("format") && o.cfg.Format != "" {
		name = o.cfg.Format
	}
	return output.New(name, cmd.OutOrStdout())
}

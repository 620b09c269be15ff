package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"exkit/internal/config"
	"exkit/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

type options struct {
	verbose bool
	output  string
	cfg     *config.AppConfig
}

// NewRootCmd builds the exkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "exkit",
		Short: "exkit runs small exercise programs: median/mode, pig latin and word frequency",
		Long: `exkit bundles three independent exercise programs.

Each program prints its result to standard output. Inputs come from the
command line, from EXKIT_* environment variables or .env files, or fall
back to the built-in examples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(opts.verbose); err != nil {
				log.Warn().Err(err).Msg("File logging disabled")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts.cfg = cfg

			if !cmd.Flags().Changed("output") {
				opts.output = cfg.Output
			}
			if opts.output != config.OutputText && opts.output != config.OutputJSON {
				return fmt.Errorf("unsupported output format %q", opts.output)
			}

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Str("command", cmd.Name()).
				Str("dataPath", cfg.DataPath).
				Str("logDir", cfg.LogDir).
				Msg("exkit starting")
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", config.OutputText, "output format: text or json")

	rootCmd.AddCommand(
		newMedianModeCmd(opts),
		newPigLatinCmd(opts),
		newWordFreqCmd(opts),
		newAllCmd(opts),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "exkit %s (commit %s, built %s)\n", Version, Commit, BuildDate)
			return err
		},
	}
}

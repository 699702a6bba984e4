package main

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/ripplebutton/pkg/errors"
	"github.com/go-drift/ripplebutton/pkg/log"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	jsonLogs bool

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ripplebutton",
		Short:         "Render ripple buttons and replay interactions against them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := flags.logLevel
			if flags.verbose {
				level = "debug"
			}
			logger, err := log.New(log.Options{
				Level:         level,
				HumanReadable: !flags.jsonLogs,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.logger = logger
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: flags.verbose})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

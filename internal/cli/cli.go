// Package cli wires the pomotree command tree: the directory browser and the
// pomodoro timer commands.
package cli

import (
	"io"
	"os"

	"github.com/atomicstack/pomotree/internal/app"
	"github.com/atomicstack/pomotree/internal/config"
	"github.com/atomicstack/pomotree/internal/logging"
	"github.com/atomicstack/pomotree/internal/logging/events"
	"github.com/atomicstack/pomotree/internal/pomo"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Swapped out in tests so commands run without a terminal.
var (
	runBrowser   = app.Run
	runCountdown = pomo.Run
)

// session carries the configuration resolved before any subcommand runs.
type session struct {
	cfg    config.Config
	quiet  bool
	stdin  io.Reader
	stdout io.Writer
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:           "pomotree",
		Short:         "A pomodoro counter and directory browser",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&s.quiet, "no-banner", false, "do not print the startup banner")
	root.AddCommand(newBrowseCommand(s), newPomoCommand(s))
	return root
}

func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), os.Args[1:])
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.stdin = cmd.InOrStdin()
	s.stdout = cmd.OutOrStdout()

	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))

	if !s.quiet {
		printBanner(s.stdout)
	}
	return nil
}

func newBrowseCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "browse [path]",
		Aliases: []string{"fd"},
		Short:   "Browse a directory tree, expanding folders in place",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.cfg.App
			cfg.Root = "."
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			err := runBrowser(cfg)
			events.App.Exit(err)
			return err
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atomicstack/pomotree/internal/format/table"
	"github.com/atomicstack/pomotree/internal/logging/events"
	"github.com/atomicstack/pomotree/internal/storage"
	"github.com/atomicstack/pomotree/internal/timer"
	"github.com/spf13/cobra"
)

// ErrTimerNotFound is returned by `pomo run` for an unknown name.
var ErrTimerNotFound = errors.New("no timer with that name")

func newPomoCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomo",
		Short: "Manage and run pomodoro timers",
	}
	cmd.AddCommand(
		newAddCommand(s),
		newCreateCommand(s),
		newRunCommand(s),
		newRemoveCommand(s),
		newNukeCommand(s),
		newListCommand(s),
	)
	return cmd
}

func (s *session) openStore() (*storage.Store, error) {
	store, err := storage.Open(s.cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open timer store: %w", err)
	}
	return store, nil
}

func newAddCommand(s *session) *cobra.Command {
	var name string
	var minutes int
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a timer to storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timer.New(name, minutes)
			if err != nil {
				return err
			}
			store, err := s.openStore()
			if err != nil {
				return err
			}
			if err := store.Add(t); err != nil {
				return fmt.Errorf("add timer: %w", err)
			}
			events.Timer.Add(t.ID, t.Name, t.Duration)
			fmt.Fprintf(s.stdout, "name: %s\nduration: %d\n", t.Name, t.Duration)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "timer name")
	cmd.Flags().IntVarP(&minutes, "duration", "d", timer.DefaultMinutes, "duration in minutes")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCreateCommand(s *session) *cobra.Command {
	var name string
	var minutes int
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run a one-off timer without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timer.New(name, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.stdout, "name: %s\n", t.Name)
			return s.countdown(t)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "timer name")
	cmd.Flags().IntVarP(&minutes, "duration", "d", 0, "duration in minutes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newRunCommand(s *session) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a stored timer by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.openStore()
			if err != nil {
				return err
			}
			t, ok := store.Find(name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrTimerNotFound, name)
			}
			fmt.Fprintf(s.stdout, "name: %s\nmins: %d\n", t.Name, t.Duration)
			return s.countdown(t)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "timer name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (s *session) countdown(t timer.Timer) error {
	events.Timer.Start(t.Name, t.Duration)
	completed, err := runCountdown(t.Name, t.Length(), s.stdin, s.stdout)
	events.Timer.Finish(t.Name, completed)
	if err != nil {
		return err
	}
	if completed {
		fmt.Fprintln(s.stdout, "Timer is complete")
	} else {
		fmt.Fprintln(s.stdout, "Timer stopped")
	}
	return nil
}

func newRemoveCommand(s *session) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a stored timer by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.openStore()
			if err != nil {
				return err
			}
			removed, err := store.RemoveByName(name)
			if err != nil {
				return fmt.Errorf("remove timer: %w", err)
			}
			events.Timer.Remove(name, removed)
			if removed {
				fmt.Fprintf(s.stdout, "removed timer %q\n", name)
			} else {
				fmt.Fprintf(s.stdout, "no timer named %q\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "timer name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newNukeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "nuke",
		Short: "Remove all stored timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.openStore()
			if err != nil {
				return err
			}
			n, err := store.RemoveAll()
			if err != nil {
				return fmt.Errorf("remove timers: %w", err)
			}
			events.Timer.Nuke(n)
			fmt.Fprintln(s.stdout, "removed all the timers")
			return nil
		},
	}
}

func newListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all the available timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.openStore()
			if err != nil {
				return err
			}
			timers := store.Timers()
			if len(timers) == 0 {
				fmt.Fprintln(s.stdout, "there are 0 timers")
				return nil
			}
			rows := make([][]string, 0, len(timers))
			for _, t := range timers {
				rows = append(rows, []string{t.ID, t.Name, strconv.Itoa(t.Duration)})
			}
			fmt.Fprintln(s.stdout, table.Render(
				[]string{"ID", "NAME", "MINUTES"},
				rows,
				[]table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight},
			))
			return nil
		},
	}
}

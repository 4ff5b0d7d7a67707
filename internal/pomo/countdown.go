// Package pomo runs a single timer as an inline countdown with a progress bar.
package pomo

import (
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/pomotree/internal/theme"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	barWidth     = 40
	tickInterval = time.Second
	// clockWidth leaves room for the elapsed clock in front of the bar.
	clockWidth = len("[00:00:00] ")
)

var styles = theme.Default()

type tickMsg time.Time

// Countdown is the Bubble Tea model behind `pomo create` and `pomo run`.
type Countdown struct {
	name    string
	total   time.Duration
	elapsed time.Duration
	bar     progress.Model
	done    bool
	aborted bool
}

// NewCountdown prepares a countdown for total. A zero or negative duration
// finishes on the first tick.
func NewCountdown(name string, total time.Duration) *Countdown {
	bar := progress.New(
		progress.WithGradient("#00D7D7", "#5FD700"),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.Full = '#'
	bar.Empty = '-'
	return &Countdown{name: name, total: total, bar: bar}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init is part of the tea.Model interface.
func (c *Countdown) Init() tea.Cmd {
	return tick()
}

// Update advances the countdown by one interval per tick.
func (c *Countdown) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			c.aborted = true
			return c, tea.Quit
		}
	case tea.WindowSizeMsg:
		c.bar.Width = min(barWidth, max(msg.Width-clockWidth, 10))
	case tickMsg:
		if c.done {
			return c, nil
		}
		c.elapsed += tickInterval
		if c.elapsed >= c.total {
			c.elapsed = c.total
			c.done = true
			return c, tea.Quit
		}
		return c, tick()
	}
	return c, nil
}

// View renders `[HH:MM:SS] <bar>`.
func (c *Countdown) View() string {
	line := styles.CountdownLabel.Render(fmt.Sprintf("[%s]", FormatElapsed(c.elapsed))) + " " + c.bar.ViewAs(c.Percent())
	if c.done || c.aborted {
		return line + "\n"
	}
	return line
}

// Percent reports how much of the countdown has elapsed, in [0, 1].
func (c *Countdown) Percent() float64 {
	if c.total <= 0 {
		return 1
	}
	return min(float64(c.elapsed)/float64(c.total), 1)
}

// Done reports whether the full duration elapsed.
func (c *Countdown) Done() bool {
	return c.done
}

// Aborted reports whether the user stopped the countdown early.
func (c *Countdown) Aborted() bool {
	return c.aborted
}

// FormatElapsed renders d as HH:MM:SS, truncated to whole seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Run shows the countdown inline on out until it completes or the user
// aborts. It reports whether the countdown ran to completion.
func Run(name string, total time.Duration, in io.Reader, out io.Writer) (bool, error) {
	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	countdown := NewCountdown(name, total)
	final, err := tea.NewProgram(countdown, opts...).Run()
	if err != nil {
		return false, fmt.Errorf("run countdown %q: %w", name, err)
	}
	if c, ok := final.(*Countdown); ok {
		return c.Done(), nil
	}
	return false, nil
}

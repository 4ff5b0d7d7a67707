// Package timer defines the named countdowns the pomo commands store and run.
package timer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMinutes is the duration used by `pomo add` when none is given.
const DefaultMinutes = 10

var (
	ErrEmptyName       = errors.New("timer name must not be empty")
	ErrInvalidDuration = errors.New("timer duration must be at least one minute")
)

// Timer is a named countdown. Duration is stored in whole minutes.
type Timer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// New validates its input and returns a timer with a fresh random ID.
func New(name string, minutes int) (Timer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Timer{}, ErrEmptyName
	}
	if minutes < 1 {
		return Timer{}, fmt.Errorf("%w (got %d)", ErrInvalidDuration, minutes)
	}
	return Timer{ID: uuid.NewString(), Name: name, Duration: minutes}, nil
}

// Length returns the timer duration as a time.Duration.
func (t Timer) Length() time.Duration {
	return time.Duration(t.Duration) * time.Minute
}

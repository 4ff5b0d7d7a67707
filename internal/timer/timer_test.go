package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a, err := New("focus", 25)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b, err := New("  focus  ", 25)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %s twice", a.ID)
	}
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", a.ID, err)
	}
	if b.Name != "focus" {
		t.Fatalf("expected trimmed name, got %q", b.Name)
	}
	if a.Length() != 25*time.Minute {
		t.Fatalf("expected 25m, got %s", a.Length())
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(" ", 5); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	for _, minutes := range []int{0, -3} {
		if _, err := New("x", minutes); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration for %d, got %v", minutes, err)
		}
	}
}

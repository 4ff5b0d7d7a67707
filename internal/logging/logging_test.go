package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceOnlyWritesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("skipped", map[string]interface{}{"a": 1})
	SetTraceEnabled(true)
	Trace("tree.expand", map[string]interface{}{"path": "/tmp/x", "added": 3})
	Close()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %#v", len(entries), entries)
	}
	if entries[0]["event"] != "tree.expand" {
		t.Fatalf("expected tree.expand event, got %#v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["path"] != "/tmp/x" {
		t.Fatalf("expected payload path, got %#v", entries[0]["payload"])
	}
	if _, ok := entries[0]["time"]; !ok {
		t.Fatalf("expected time field, got %#v", entries[0])
	}
}

func TestErrorWritesWithoutTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })
	SetTraceEnabled(false)

	Error(nil)
	Error(errors.New("disk on fire"))
	Close()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["error"] != "disk on fire" || entries[0]["level"] != "error" {
		t.Fatalf("unexpected entry %#v", entries[0])
	}
}

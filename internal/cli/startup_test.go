package cli

import (
	"testing"

	"github.com/atomicstack/pomotree/internal/app"
	"github.com/atomicstack/pomotree/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Watch:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Storage: config.Storage{Path: "/tmp/db.json"},
		Flags: map[string]string{
			"width":  "80",
			"height": "24",
			"footer": "true",
			"watch":  "true",
			"db":     "/tmp/db.json",
		},
		Args: []string{"--width", "80", "browse"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["watch"] != "true" {
		t.Fatalf("expected watch flag true, got %v", flagsValue["watch"])
	}
	if flagsValue["db"] != "/tmp/db.json" {
		t.Fatalf("expected db path, got %v", flagsValue["db"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["version"] != Version {
		t.Fatalf("expected version %q, got %v", Version, payload["version"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 3 {
		t.Fatalf("expected argv in payload, got %v", payload["argv"])
	}
}

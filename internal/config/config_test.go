package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

const fileYAML = `
catalog: "from-file.json"
log:
  file: "stderr"
  level: "verbose"
speech:
  voice: "en-GB-RyanNeural"
  beep: false
seed: 7
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hiit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog != "" {
		t.Errorf("catalog = %q, want built-in", cfg.Catalog)
	}
	if cfg.Log.File != ".hiit-logs/hiit.log" {
		t.Errorf("log file = %q", cfg.Log.File)
	}
	if cfg.Log.Parsed != logger.LevelNormal {
		t.Errorf("log level = %s, want normal", cfg.Log.Parsed)
	}
	if !cfg.Speech.Enabled || !cfg.Speech.DiskCache || !cfg.Speech.Beep {
		t.Errorf("speech defaults = %+v", cfg.Speech)
	}
	if cfg.SpeechAvailable() {
		t.Error("speech available without credentials")
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0", cfg.Seed)
	}
}

func TestParseFile(t *testing.T) {
	cfg, err := Parse([]string{"-config", writeTemp(t, fileYAML)}, env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog != "from-file.json" {
		t.Errorf("catalog = %q", cfg.Catalog)
	}
	if cfg.Log.File != "stderr" || cfg.Log.Parsed != logger.LevelVerbose {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Speech.Voice != "en-GB-RyanNeural" || cfg.Speech.Beep {
		t.Errorf("speech = %+v", cfg.Speech)
	}
	// Fields missing from the file keep their defaults.
	if !cfg.Speech.Enabled || cfg.Speech.CacheDir != ".hiit-cache" {
		t.Errorf("speech defaults lost: %+v", cfg.Speech)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
}

func TestParsePrecedence(t *testing.T) {
	vars := map[string]string{
		EnvCatalog:           "from-env.json",
		EnvLogLevel:          "off",
		EnvSeed:              "99",
		EnvAzureSpeechKey:    "key",
		EnvAzureSpeechRegion: "westeurope",
	}

	// Env beats the file.
	cfg, err := Parse([]string{"-config", writeTemp(t, fileYAML)}, env(vars))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog != "from-env.json" || cfg.Log.Parsed != logger.LevelOff || cfg.Seed != 99 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if !cfg.SpeechAvailable() {
		t.Error("expected speech with credentials")
	}

	// Explicit flags beat env.
	cfg, err = Parse([]string{
		"-config", writeTemp(t, fileYAML),
		"-catalog", "from-flag.yaml",
		"-verbose",
		"-seed", "3",
		"-no-speech",
		"-beep=true",
	}, env(vars))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog != "from-flag.yaml" {
		t.Errorf("catalog = %q", cfg.Catalog)
	}
	if cfg.Log.Parsed != logger.LevelVerbose {
		t.Errorf("log level = %s, want verbose", cfg.Log.Parsed)
	}
	if cfg.Seed != 3 {
		t.Errorf("seed = %d, want 3", cfg.Seed)
	}
	if cfg.SpeechAvailable() {
		t.Error("-no-speech ignored")
	}
	if !cfg.Speech.Beep {
		t.Error("-beep=true ignored")
	}
}

func TestParseQuietWinsOverVerbose(t *testing.T) {
	cfg, err := Parse([]string{"-verbose", "-quiet"}, env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Parsed != logger.LevelOff {
		t.Fatalf("log level = %s, want off", cfg.Log.Parsed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		vars map[string]string
	}{
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, nil},
		{"bad yaml", []string{"-config", writeTemp(t, "catalog: [unterminated")}, nil},
		{"bad log level", nil, map[string]string{EnvLogLevel: "loud"}},
		{"bad seed", nil, map[string]string{EnvSeed: "-1"}},
		{"unknown flag", []string{"-colour"}, nil},
		{"stray argument", []string{"extra"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args, env(tt.vars)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"-h"}, env(nil))
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
}

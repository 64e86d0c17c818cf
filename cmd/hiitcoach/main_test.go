package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hiit.log")
	var warn bytes.Buffer

	out, closeLog := openLog(path, &warn)
	defer closeLog()

	if out == os.Stderr {
		t.Fatal("expected a log file, got stderr")
	}
	if warn.Len() != 0 {
		t.Fatalf("unexpected warning: %s", warn.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestOpenLogFallsBackWithReason(t *testing.T) {
	// A regular file where the log directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var warn bytes.Buffer

	out, closeLog := openLog(filepath.Join(blocker, "hiit.log"), &warn)
	defer closeLog()

	if out != os.Stderr {
		t.Fatal("expected stderr fallback")
	}
	if !strings.Contains(warn.String(), "could not create log directory") {
		t.Fatalf("missing directory warning: %q", warn.String())
	}
	if !strings.Contains(warn.String(), "falling back to stderr") {
		t.Fatalf("missing fallback warning: %q", warn.String())
	}
}

func TestOpenLogStderr(t *testing.T) {
	var warn bytes.Buffer
	for _, path := range []string{"", "stderr"} {
		out, closeLog := openLog(path, &warn)
		closeLog()
		if out != os.Stderr {
			t.Fatalf("openLog(%q) did not return stderr", path)
		}
	}
}

type stubConfirmer struct {
	guard      *readGuard
	sawReading bool
	err        error
}

func (s *stubConfirmer) Confirm(ctx context.Context, prompt string) error {
	s.sawReading = s.guard.Reading()
	return s.err
}

func TestGuardedConfirmerMarksRead(t *testing.T) {
	guard := &readGuard{}
	wantErr := errors.New("closed")
	stub := &stubConfirmer{guard: guard, err: wantErr}

	err := guardedConfirmer{inner: stub, guard: guard}.Confirm(context.Background(), "ready?")
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
	if !stub.sawReading {
		t.Fatal("guard not set during the read")
	}
	if guard.Reading() {
		t.Fatal("guard still set after the read")
	}
}

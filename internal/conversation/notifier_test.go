package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

func TestCLINotifierRoutesMessages(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var normal, urgent []string

	n := NewCLINotifier(log,
		func(text string) { normal = append(normal, text) },
		func(text string) { urgent = append(urgent, text) },
	)
	ctx := context.Background()

	if err := n.Notify(ctx, "Set number 1!"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(ctx, "BURPEES"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}

	if len(normal) != 1 || normal[0] != "Set number 1!" {
		t.Fatalf("unexpected normal output %v", normal)
	}
	if len(urgent) != 1 || urgent[0] != "BURPEES" {
		t.Fatalf("unexpected urgent output %v", urgent)
	}
}

func TestCLINotifierUrgentFallback(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var got []string

	n := NewCLINotifier(log, func(text string) { got = append(got, text) }, nil)
	n.NotifyUrgent(context.Background(), "PLANK")

	if len(got) != 1 || got[0] != "PLANK" {
		t.Fatalf("expected urgent to fall back to printFn, got %v", got)
	}
}

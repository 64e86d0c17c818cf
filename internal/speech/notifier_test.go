package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

type recordingNotifier struct {
	normal []string
	urgent []string
	err    error
}

func (r *recordingNotifier) Notify(ctx context.Context, message string) error {
	r.normal = append(r.normal, message)
	return r.err
}

func (r *recordingNotifier) NotifyUrgent(ctx context.Context, message string) error {
	r.urgent = append(r.urgent, message)
	return r.err
}

type recordingVoice struct {
	said []string
	err  error
}

func (r *recordingVoice) Speak(ctx context.Context, text string) error {
	r.said = append(r.said, text)
	return r.err
}

func (r *recordingVoice) Beep() {}

func TestSpeakingNotifier(t *testing.T) {
	text := &recordingNotifier{}
	voice := &recordingVoice{}
	n := NewSpeakingNotifier(text, voice, logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	if err := n.Notify(ctx, "Set number 1!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.NotifyUrgent(ctx, "JUMPING JACKS"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(text.normal) != 1 || len(text.urgent) != 1 {
		t.Fatalf("printed normal=%v urgent=%v", text.normal, text.urgent)
	}
	if text.urgent[0] != "JUMPING JACKS" {
		t.Fatalf("printed %q, want it unchanged", text.urgent[0])
	}
	want := []string{"Set number 1!", "jumping jacks"}
	if len(voice.said) != len(want) {
		t.Fatalf("said %v, want %v", voice.said, want)
	}
	for i := range want {
		if voice.said[i] != want[i] {
			t.Fatalf("said[%d] = %q, want %q", i, voice.said[i], want[i])
		}
	}
}

func TestSpeakingNotifierSpeechFailureIgnored(t *testing.T) {
	voice := &recordingVoice{err: errors.New("no device")}
	n := NewSpeakingNotifier(&recordingNotifier{}, voice, logger.New(logger.LevelOff, nil))

	if err := n.Notify(context.Background(), "Starting in..."); err != nil {
		t.Fatalf("speech failure leaked: %v", err)
	}
}

func TestSpeakingNotifierPrintFailure(t *testing.T) {
	printErr := errors.New("closed")
	voice := &recordingVoice{}
	n := NewSpeakingNotifier(&recordingNotifier{err: printErr}, voice, logger.New(logger.LevelOff, nil))

	if err := n.NotifyUrgent(context.Background(), "PLANK"); !errors.Is(err, printErr) {
		t.Fatalf("got %v, want %v", err, printErr)
	}
	if len(voice.said) != 0 {
		t.Fatalf("spoke after print failure: %v", voice.said)
	}
}

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Take a 30 second break!", "Take a 30 second break!"},
		{"V-UPS", "v-ups"},
		{"\x1b[1mPLANK\x1b[0m", "plank"},
		{"  Starting in...  ", "Starting in..."},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanForSpeech(tt.in); got != tt.want {
			t.Errorf("CleanForSpeech(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

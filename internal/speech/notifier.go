package speech

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*SpeakingNotifier)(nil)

// SpeakingNotifier prints through the wrapped notifier and also speaks the
// message. Speech failures are logged; they never fail the cue.
type SpeakingNotifier struct {
	text  domain.Notifier
	voice domain.SpeechProvider
	log   *logger.Logger
}

// NewSpeakingNotifier creates a notifier that both prints and speaks.
func NewSpeakingNotifier(text domain.Notifier, voice domain.SpeechProvider, log *logger.Logger) *SpeakingNotifier {
	return &SpeakingNotifier{text: text, voice: voice, log: log}
}

// Notify prints the message and speaks it.
func (n *SpeakingNotifier) Notify(ctx context.Context, message string) error {
	if err := n.text.Notify(ctx, message); err != nil {
		return err
	}
	n.speak(ctx, message)
	return nil
}

// NotifyUrgent prints the message and speaks it.
func (n *SpeakingNotifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}
	n.speak(ctx, message)
	return nil
}

func (n *SpeakingNotifier) speak(ctx context.Context, message string) {
	if err := n.voice.Speak(ctx, CleanForSpeech(message)); err != nil {
		n.log.Warn("speaking cue: %v", err)
	}
}

var ansiCodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// CleanForSpeech strips terminal styling and lowers shouted exercise
// names so the voice does not spell them out letter by letter.
func CleanForSpeech(msg string) string {
	cleaned := strings.TrimSpace(ansiCodes.ReplaceAllString(msg, ""))
	if cleaned != "" && cleaned == strings.ToUpper(cleaned) {
		cleaned = strings.ToLower(cleaned)
	}
	return cleaned
}

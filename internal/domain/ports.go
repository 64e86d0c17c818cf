package domain

import (
	"context"
	"time"
)

// CatalogSource provides the exercise catalog. Implementations can read a
// file or return the built-in defaults.
type CatalogSource interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// Confirmer blocks until the user signals they are ready. Any answer counts.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) error
}

// Notifier delivers cues to the user. Implementations can write to stdout
// or also speak the message.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Countdown blocks for the given number of whole seconds while rendering
// the remaining time.
type Countdown interface {
	Run(ctx context.Context, seconds int) error
}

// Clock abstracts waiting so countdowns can be tested without real delays.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SpeechProvider voices cues. Speak starts playback and returns without
// waiting for it to finish. The no-op implementation is used when audio is
// disabled.
type SpeechProvider interface {
	Speak(ctx context.Context, text string) error
	Beep()
}

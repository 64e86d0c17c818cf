package speech

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.SpeechProvider = (*Coach)(nil)

// Synthesizer turns text into WAV audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Voice() string
}

// Sink plays audio without blocking. *Player satisfies it.
type Sink interface {
	PlayWAV(wav []byte) error
	PlayPCM(pcm []byte)
}

// CoachOption configures the Coach.
type CoachOption func(*Coach)

// WithCacheDir sets the directory for the persistent audio cache. Empty
// keeps the cache in memory only.
func WithCacheDir(dir string) CoachOption {
	return func(c *Coach) {
		c.cacheDir = dir
	}
}

// WithDiskWrite controls whether new cache entries are written to disk.
func WithDiskWrite(enabled bool) CoachOption {
	return func(c *Coach) {
		c.diskWrite = enabled
	}
}

// Coach voices workout cues. Cues are synthesized up front with Prefetch
// so that speaking during a countdown only starts cached playback.
type Coach struct {
	tts   Synthesizer // nil = beeps only
	sink  Sink
	log   *logger.Logger
	cache *AudioCache
	beep  []byte

	cacheDir  string
	diskWrite bool
}

// NewCoach creates a coach. tts may be nil when only beeps are wanted.
func NewCoach(tts Synthesizer, sink Sink, log *logger.Logger, opts ...CoachOption) *Coach {
	c := &Coach{
		tts:       tts,
		sink:      sink,
		log:       log,
		beep:      Tone(DefaultBeepFrequency, DefaultBeepDuration, DefaultBeepVolume),
		diskWrite: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	voice := ""
	if tts != nil {
		voice = tts.Voice()
	}
	c.cache = NewAudioCache(voice, c.cacheDir, c.diskWrite, log)
	return c
}

// Prefetch synthesizes every line not yet cached. Lines are cleaned the
// same way Speak cleans them so both hit the same cache entry. Failures
// are logged and skipped; it returns how many lines are ready to play.
func (c *Coach) Prefetch(ctx context.Context, lines ...string) int {
	if c.tts == nil {
		return 0
	}

	ready := 0
	for _, line := range lines {
		text := CleanForSpeech(line)
		if _, ok := c.cache.Get(text); ok {
			ready++
			continue
		}
		audio, err := c.tts.Synthesize(ctx, text)
		if err != nil {
			c.log.Warn("prefetch %q: %v", text, err)
			continue
		}
		c.cache.Put(text, audio)
		ready++
	}

	hits, misses := c.cache.Stats()
	c.log.Info("speech prefetch: %d/%d cues ready (cache hits=%d misses=%d)", ready, len(lines), hits, misses)
	return ready
}

// Speak starts playing text, synthesizing it first if it was not
// prefetched.
func (c *Coach) Speak(ctx context.Context, text string) error {
	if c.tts == nil {
		return nil
	}

	text = CleanForSpeech(text)
	audio, ok := c.cache.Get(text)
	if !ok {
		var err error
		audio, err = c.tts.Synthesize(ctx, text)
		if err != nil {
			return fmt.Errorf("synthesizing %q: %w", text, err)
		}
		c.cache.Put(text, audio)
	}
	return c.sink.PlayWAV(audio)
}

// Beep plays the countdown tone.
func (c *Coach) Beep() {
	if len(c.beep) > 0 {
		c.sink.PlayPCM(c.beep)
	}
}

// HIIT Coach: a console interval-training coach.
//
// Usage:
//
//	hiitcoach [-catalog exercises.json] [-config hiit.yaml] [-verbose] [-quiet]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/hiitcoach/internal/catalog"
	"github.com/hammamikhairi/hiitcoach/internal/config"
	"github.com/hammamikhairi/hiitcoach/internal/conversation"
	"github.com/hammamikhairi/hiitcoach/internal/display"
	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/engine"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
	"github.com/hammamikhairi/hiitcoach/internal/speech"
	"github.com/hammamikhairi/hiitcoach/internal/timer"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	errOut := display.NewConsole(os.Stderr)

	cfg, err := config.Parse(args, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		errOut.PrintError(err)
		return exitFailure
	}

	logOut, closeLog := openLog(cfg.Log.File, os.Stderr)
	defer closeLog()
	log := logger.New(cfg.Log.Parsed, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg, log)
	defer app.close()

	// Reads from stdin never observe ctx, so a signal during a prompt ends
	// the process here. Countdowns return context.Canceled instead.
	stopExit := context.AfterFunc(ctx, func() {
		if !app.input.Reading() {
			return
		}
		app.close()
		closeLog()
		fmt.Fprintln(os.Stderr)
		os.Exit(exitInterrupted)
	})
	defer stopExit()

	if err := app.run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}
		log.Error("session failed: %v", err)
		errOut.PrintError(err)
		return exitFailure
	}
	return exitOK
}

// openLog directs logs to a file by default so the countdown line stays
// clean. Falls back to stderr when the file cannot be opened; the reason
// goes to warn.
func openLog(path string, warn io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(warn, "warning: could not create log directory %s: %v\n", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(warn, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// readGuard records whether the process is blocked reading stdin.
type readGuard struct {
	active atomic.Bool
}

// Reading reports whether a read is in progress.
func (g *readGuard) Reading() bool { return g.active.Load() }

func (g *readGuard) do(fn func() error) error {
	g.active.Store(true)
	defer g.active.Store(false)
	return fn()
}

// guardedConfirmer marks the start prompt as a blocking read.
type guardedConfirmer struct {
	inner domain.Confirmer
	guard *readGuard
}

func (c guardedConfirmer) Confirm(ctx context.Context, prompt string) error {
	return c.guard.do(func() error { return c.inner.Confirm(ctx, prompt) })
}

type app struct {
	cfg      *config.Config
	log      *logger.Logger
	console  *display.Console
	prompter *conversation.Prompter
	engine   *engine.Engine
	input    *readGuard
	player   *speech.Player // nil when audio is unavailable
}

func newApp(cfg *config.Config, log *logger.Logger) *app {
	var source domain.CatalogSource
	if cfg.Catalog != "" {
		source = catalog.NewFileSource(cfg.Catalog, log)
	} else {
		source = catalog.NewMemorySource(log)
	}

	console := display.NewConsole(os.Stdout)
	return &app{
		cfg:      cfg,
		log:      log,
		console:  console,
		prompter: conversation.NewPrompter(os.Stdin, console.Writer(), log),
		engine:   engine.New(source, log, engine.WithSeed(cfg.Seed)),
		input:    &readGuard{},
	}
}

func (a *app) run(ctx context.Context) error {
	// Load before asking anything so a bad catalog fails fast.
	if _, err := a.engine.LoadCatalog(ctx); err != nil {
		return err
	}

	// Piped output only gets the conversation.
	if display.IsTerminal() {
		a.console.ShowBanner()
	}

	var prefs domain.Preferences
	err := a.input.do(func() (err error) {
		prefs, err = a.prompter.CollectPreferences(ctx)
		return err
	})
	if err != nil {
		return err
	}
	a.console.PrintChat(engine.LineChoice(prefs))

	session, err := a.engine.NewSession(ctx, prefs)
	if err != nil {
		return err
	}
	a.console.ShowWorkout(session.Workout)

	notifier, voice := a.setupAudio(ctx, session)

	var cdOpts []timer.Option
	if a.cfg.Speech.Beep {
		cdOpts = append(cdOpts, timer.WithFinalSeconds(3, func(int) { voice.Beep() }))
	}
	countdown := timer.New(a.console.Writer(), a.log, cdOpts...)

	var runOpts []engine.RunnerOption
	if a.log.GetLevel() == logger.LevelVerbose {
		runOpts = append(runOpts, engine.WithObserver(a.logProgress))
	}
	runner := engine.NewRunner(guardedConfirmer{inner: a.prompter, guard: a.input}, notifier, countdown, a.log, runOpts...)
	if err := runner.Run(ctx, session); err != nil {
		return err
	}

	a.console.PrintHint(fmt.Sprintf("%d sets done, %s on the clock.", session.Plan.Sets, timer.FormatClock(session.CountedSeconds)))
	return nil
}

// setupAudio opens the audio device when spoken cues or beeps are wanted.
// Without a device the session runs silently.
func (a *app) setupAudio(ctx context.Context, session *domain.Session) (domain.Notifier, domain.SpeechProvider) {
	var notifier domain.Notifier = conversation.NewCLINotifier(a.log, a.console.PrintCue, a.console.PrintExercise)
	var voice domain.SpeechProvider = speech.NewNoOp(a.log)

	spoken := a.cfg.SpeechAvailable()
	if !spoken && a.cfg.Speech.Enabled {
		a.log.Info("TTS disabled: set %s and %s env vars to enable", config.EnvAzureSpeechKey, config.EnvAzureSpeechRegion)
	}
	if !spoken && !a.cfg.Speech.Beep {
		return notifier, voice
	}

	player, err := speech.NewPlayer(a.log)
	if err != nil {
		a.log.Error("audio player init failed, running silently: %v", err)
		return notifier, voice
	}
	a.player = player

	var tts speech.Synthesizer
	if spoken {
		tts = speech.NewAzureClient(a.cfg.Speech.AzureKey, a.cfg.Speech.AzureRegion, a.log,
			speech.WithVoice(a.cfg.Speech.Voice),
		)
	}
	coach := speech.NewCoach(tts, player, a.log,
		speech.WithCacheDir(a.cfg.Speech.CacheDir),
		speech.WithDiskWrite(a.cfg.Speech.DiskCache),
	)

	if tts != nil {
		a.console.PrintHint("Warming up the coach's voice...")
		coach.Prefetch(ctx, engine.CueLines(session)...)
		notifier = speech.NewSpeakingNotifier(notifier, coach, a.log)
		a.log.Info("TTS enabled (voice=%s, region=%s)", tts.Voice(), a.cfg.Speech.AzureRegion)
	}
	return notifier, coach
}

// logProgress reports how far into the session each phase starts.
func (a *app) logProgress(s *domain.Session) {
	total := s.Plan.TotalSeconds(len(s.Workout))
	a.log.Debug("progress: %s at %s of %s", s.Phase, timer.FormatClock(s.CountedSeconds), timer.FormatClock(total))
}

func (a *app) close() {
	if a.player != nil {
		a.player.Stop()
	}
}

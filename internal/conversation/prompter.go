// Package conversation collects the user's answers from the console and
// delivers cues back to it.
package conversation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.Confirmer = (*Prompter)(nil)

// Question is one closed-set prompt. Answers must match an accepted value
// exactly, including case and surrounding spaces.
type Question struct {
	Prompt   string
	Retry    string
	Accepted []string
}

// Validate returns ErrInvalidInput unless answer is accepted.
func (q Question) Validate(answer string) error {
	for _, a := range q.Accepted {
		if a == answer {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", answer, domain.ErrInvalidInput)
}

// The three preference questions, worded as the user sees them.
var (
	LevelQuestion = Question{
		Prompt:   "\nSelect beginner, intermediate or advanced: ",
		Retry:    "\nOops! I didn't understand that! Try again.\n",
		Accepted: levelStrings(),
	}
	LengthQuestion = Question{
		Prompt:   "\nSelect the length of your workout in minutes: 15 or 30? ",
		Retry:    "Oops! I didn't understand that! Try again.\n",
		Accepted: lengthStrings(),
	}
	FocusQuestion = Question{
		Prompt:   "\nWhat would you like to focus on your core, upper body, lower body or cardio? ",
		Retry:    "\nOops! I didn't understand that! Try again.\n",
		Accepted: focusStrings(),
	}
)

// Prompter reads answers line by line. It never gives up on invalid input;
// it only stops when the input stream closes or ctx is cancelled.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log *logger.Logger
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer, log *logger.Logger) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, log: log}
}

// Ask writes the prompt and re-asks until an accepted answer arrives.
func (p *Prompter) Ask(ctx context.Context, q Question) (string, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprint(p.out, q.Prompt)

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		if err := q.Validate(line); err != nil {
			p.log.Debug("rejected answer (attempt %d): %v", attempt, err)
			fmt.Fprint(p.out, q.Retry)
			continue
		}
		p.log.Debug("accepted answer %q after %d attempt(s)", line, attempt)
		return line, nil
	}
}

// CollectPreferences asks for level, length and focus, in that order.
func (p *Prompter) CollectPreferences(ctx context.Context) (domain.Preferences, error) {
	var prefs domain.Preferences

	level, err := p.Ask(ctx, LevelQuestion)
	if err != nil {
		return prefs, fmt.Errorf("asking level: %w", err)
	}
	length, err := p.Ask(ctx, LengthQuestion)
	if err != nil {
		return prefs, fmt.Errorf("asking length: %w", err)
	}
	focus, err := p.Ask(ctx, FocusQuestion)
	if err != nil {
		return prefs, fmt.Errorf("asking focus: %w", err)
	}

	prefs.Level = domain.Level(level)
	prefs.Length = domain.Length(length)
	prefs.Focus = domain.Category(focus)
	p.log.Info("preferences: level=%s length=%s focus=%s", prefs.Level, prefs.Length, prefs.Focus)
	return prefs, nil
}

// Confirm writes prompt and waits for any line.
func (p *Prompter) Confirm(ctx context.Context, prompt string) error {
	fmt.Fprint(p.out, prompt)
	_, err := p.readLine(ctx)
	return err
}

// readLine returns one line without its terminator. A final line without a
// newline still counts; EOF with nothing pending is ErrInputClosed.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", domain.ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func levelStrings() []string {
	var out []string
	for _, l := range domain.Levels() {
		out = append(out, string(l))
	}
	return out
}

func lengthStrings() []string {
	var out []string
	for _, l := range domain.Lengths() {
		out = append(out, string(l))
	}
	return out
}

func focusStrings() []string {
	var out []string
	for _, c := range domain.FocusAreas() {
		out = append(out, string(c))
	}
	return out
}

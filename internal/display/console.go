// Package display renders the workout on the console. Everything is
// printed in line order by the single session goroutine; the countdown
// owns the current line between cues.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
)

// Console prints styled output. Colours are dropped automatically when the
// writer is not a colour terminal.
type Console struct {
	out   io.Writer
	width func() int

	banner    lipgloss.Style
	chat      lipgloss.Style
	header    lipgloss.Style
	exercise  lipgloss.Style
	cue       lipgloss.Style
	secondary lipgloss.Style
	urgent    lipgloss.Style
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:   out,
		width: termWidth,

		// Muted slate for the startup banner.
		banner: r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		// Soft sky blue for the coach talking.
		chat: r.NewStyle().Foreground(lipgloss.Color("#bae6fd")),
		// Soft mint for the workout header and set numbers.
		header: r.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		// Warm yellow, bold, for the exercise being performed.
		exercise: r.NewStyle().Foreground(lipgloss.Color("#fde68a")).Bold(true),
		// Light zinc for rest prompts and intro.
		cue: r.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		// Dimmed zinc for hints.
		secondary: r.NewStyle().Foreground(lipgloss.Color("#71717a")),
		// Soft coral for errors.
		urgent: r.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
	}
}

// Writer returns the underlying writer, for the countdown line.
func (c *Console) Writer() io.Writer { return c.out }

// ShowBanner prints the centred banner and a hint line.
func (c *Console) ShowBanner() {
	fmt.Fprint(c.out, RenderBanner(c.width(), func(l string) string { return c.banner.Render(l) }))
	c.PrintHint("Answer each question and press enter. Ctrl+C quits.")
}

// PrintChat prints a conversational line from the coach.
func (c *Console) PrintChat(text string) {
	fmt.Fprintf(c.out, "\n%s\n", c.chat.Render(text))
}

// PrintHint prints a dimmed line.
func (c *Console) PrintHint(text string) {
	fmt.Fprintln(c.out, c.secondary.Render(text))
}

// PrintCue prints a session cue (intro, set number, rest prompt) on its
// own line after a blank one.
func (c *Console) PrintCue(text string) {
	fmt.Fprintf(c.out, "\n%s\n", c.cue.Render(text))
}

// PrintExercise prints the exercise headline that precedes an active
// countdown.
func (c *Console) PrintExercise(text string) {
	fmt.Fprintf(c.out, "\n%s\n", c.exercise.Render(text))
}

// PrintError prints a failure line prefixed with "error: ".
func (c *Console) PrintError(err error) {
	fmt.Fprintln(c.out, c.urgent.Render("error: "+err.Error()))
}

// ShowWorkout prints the rendered workout framed by blank lines.
func (c *Console) ShowWorkout(set domain.WorkoutSet) {
	lines := RenderWorkout(set)

	fmt.Fprintf(c.out, "\n%s\n\n", c.header.Render(lines[0]))
	for _, l := range lines[1:] {
		fmt.Fprintln(c.out, c.exercise.Render(l))
	}
	fmt.Fprintln(c.out)
}

package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// PrintFunc prints one cue line. Matches display.Console.PrintCue and
// display.Console.PrintExercise.
type PrintFunc func(text string)

// CLINotifier writes cues to the console.
type CLINotifier struct {
	log      *logger.Logger
	printFn  PrintFunc
	urgentFn PrintFunc
}

// NewCLINotifier creates a console notifier. Nil print functions fall back
// to plain fmt.Println; a nil urgentFn reuses printFn.
func NewCLINotifier(log *logger.Logger, printFn, urgentFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = func(text string) { fmt.Println(text) }
	}
	if urgentFn == nil {
		urgentFn = printFn
	}
	return &CLINotifier{log: log, printFn: printFn, urgentFn: urgentFn}
}

// Notify prints a normal cue, such as a set header or rest prompt.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn(message)
	return nil
}

// NotifyUrgent prints an exercise headline.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.urgentFn(message)
	return nil
}

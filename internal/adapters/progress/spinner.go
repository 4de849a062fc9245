package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// SpinnerSink shows a terminal spinner while a spinner stage is running
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	started time.Time
	message string
}

// NewSpinnerSink creates a spinner that writes to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// ProvideProgressSink picks a spinner for interactive text output and a
// no-op sink otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.NonInteractive || color.NoColor {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch {
	case event.Stage == usecase.StageCompleted:
		if s.spinner.Active() {
			s.spinner.Stop()
		}
		if !s.started.IsZero() {
			fmt.Fprintf(s.out, "%s %s (%s)\n",
				color.New(color.FgGreen).Sprint("✓"), s.message, time.Since(s.started).Round(time.Millisecond))
			s.started = time.Time{}
		}
	case event.Spinner:
		s.spinner.Suffix = " " + event.Message
		if s.started.IsZero() {
			s.started = time.Now()
			s.message = event.Message
		}
		if !s.spinner.Active() {
			s.spinner.Start()
		}
	}
}

// Info prints an informational line, pausing the spinner around it
func (s *SpinnerSink) Info(message string) {
	s.print(color.New(color.FgCyan).Sprint(message))
}

// Error prints an error line, pausing the spinner around it
func (s *SpinnerSink) Error(message string) {
	s.print(color.New(color.FgRed).Sprint(message))
}

func (s *SpinnerSink) print(line string) {
	active := s.spinner.Active()
	if active {
		s.spinner.Stop()
	}
	fmt.Fprintln(s.out, line)
	if active {
		s.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)

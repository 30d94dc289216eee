package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// LineSink writes progress as plain lines, for logs and piped output
type LineSink struct {
	out       io.Writer
	lastStage usecase.ExecutionStage
}

// NewLineSink creates a line sink on stderr
func NewLineSink() *LineSink {
	return &LineSink{out: os.Stderr}
}

// OnProgress prints each spinner message once, prefixed with its stage
func (s *LineSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != "" {
		s.lastStage = event.Stage
	}
	if !event.Spinner || event.Message == "" {
		return
	}
	if s.lastStage != "" {
		fmt.Fprintf(s.out, "[%s] %s\n", s.lastStage, event.Message)
		return
	}
	fmt.Fprintln(s.out, event.Message)
}

// Info prints message as is
func (s *LineSink) Info(message string) {
	fmt.Fprintln(s.out, message)
}

// Error prints message with an error prefix
func (s *LineSink) Error(message string) {
	fmt.Fprintf(s.out, "error: %s\n", message)
}

// Ensure LineSink implements ProgressSink
var _ usecase.ProgressSink = (*LineSink)(nil)

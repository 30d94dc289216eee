package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	out            io.Writer
	spinner        *spinner.Spinner
	stages         []stageInfo
	currentStage   usecase.ExecutionStage
	stageStartTime time.Time
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerProgressReporter creates a spinner-based progress reporter on stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr, spinner.WithWriterFile(os.Stderr))
}

func newSpinnerProgressReporter(out io.Writer, opts ...spinner.Option) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opts...)
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
		stages:  []stageInfo{},
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != "" && event.Stage != r.currentStage {
		r.enterStage(event.Stage)
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.stageLabel(event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}

	if event.Message != "" && len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
		if r.spinner.Active() {
			r.spinner.Stop()
		}
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

// Stages returns the stages entered so far, in order
func (r *SpinnerProgressReporter) Stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, len(r.stages))
	for i, s := range r.stages {
		stages[i] = s.Stage
	}
	return stages
}

// printPaused stops the spinner while message is written so the two don't interleave
func (r *SpinnerProgressReporter) printPaused(c *color.Color, message string) {
	wasActive := false
	if r.spinner != nil && r.spinner.Active() {
		wasActive = true
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) enterStage(stage usecase.ExecutionStage) {
	if r.currentStage != "" {
		r.completeCurrentStage()
	}
	r.currentStage = stage
	r.stageStartTime = time.Now()
	r.stages = append(r.stages, stageInfo{
		Stage:     stage,
		StartTime: r.stageStartTime,
		Status:    "running",
	})
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
			r.stages[idx].Status = "completed"
		}
	}
}

// stageLabel prefixes message with the running stage and its elapsed time
func (r *SpinnerProgressReporter) stageLabel(message string) string {
	if r.currentStage == "" {
		return message
	}

	icon := color.New(color.FgYellow).Sprint("●")
	elapsed := time.Since(r.stageStartTime).Round(time.Second)
	label := fmt.Sprintf("%s %s (%s)", icon, stageName(r.currentStage), elapsed)
	if message == "" {
		return label
	}
	return label + " " + color.New(color.FgWhite, color.Faint).Sprint(message)
}

func stageName(stage usecase.ExecutionStage) string {
	switch stage {
	case usecase.StageConnecting:
		return "Connecting"
	case usecase.StageRewardVerify:
		return "Verifying reward token"
	case usecase.StagePairResolution:
		return "Resolving pair"
	case usecase.StageDeploying:
		return "Deploying"
	case usecase.StageInspecting:
		return "Inspecting"
	default:
		return string(stage)
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)

package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

var errPromptClosed = errors.New("prompt is closed")

// PromptuiPrompter asks questions through promptui on a terminal
type PromptuiPrompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser

	mu     sync.Mutex
	closed bool
}

// NewPromptuiPrompter creates a terminal prompter. Nil streams fall back to
// the process stdin and stdout.
func NewPromptuiPrompter(stdin io.ReadCloser, stdout io.WriteCloser) *PromptuiPrompter {
	return &PromptuiPrompter{stdin: stdin, stdout: stdout}
}

// Ask shows question and returns the raw answer
func (p *PromptuiPrompter) Ask(ctx context.Context, question string) (string, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return "", errPromptClosed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := promptui.Prompt{
		Label: question,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} ",
			Valid:   "{{ . }} ",
			Invalid: "{{ . }} ",
			Success: "{{ . | faint }} ",
		},
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}

	answer, err := prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrEOF):
		return "", io.EOF
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrAbort):
		return "", fmt.Errorf("prompt cancelled: %w", err)
	case err != nil:
		return "", err
	}
	return answer, nil
}

// Close releases the prompt. Further questions fail.
func (p *PromptuiPrompter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// LinePrompter reads answers line by line, for piped stdin
type LinePrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	mu     sync.Mutex
	closed bool
}

// NewLinePrompter creates a line prompter reading from in and writing questions to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

type lineResult struct {
	line string
	err  error
}

// Ask writes question and reads one line. The line terminator is removed and
// nothing else is trimmed. EOF before any input returns io.EOF.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return "", errPromptClosed
	}
	p.mu.Unlock()

	if _, err := fmt.Fprintf(p.out, "%s ", question); err != nil {
		return "", err
	}

	done := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// Close closes the input when it is closable. Further questions fail.
func (p *LinePrompter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Ensure the prompters implement the interface
var (
	_ usecase.Prompter = (*PromptuiPrompter)(nil)
	_ usecase.Prompter = (*LinePrompter)(nil)
)

package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// ExecProvider runs each line in a foreground /bin/sh attached to the caller's stdio.
// Every invocation gets a fresh terminal; the name is exported as CTXRUN_TERMINAL.
type ExecProvider struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecProvider builds a provider, shell defaults to /bin/sh.
func NewExecProvider(shell string, stdin io.Reader, stdout, stderr io.Writer) *ExecProvider {
	if shell == "" {
		shell = "/bin/sh"
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecProvider{shell: shell, stdin: stdin, stdout: stdout, stderr: stderr}
}

// FindOrCreate implements ports.TerminalProvider.
func (p *ExecProvider) FindOrCreate(_ context.Context, name string) (ports.Terminal, error) {
	return &execTerminal{name: name, provider: p}, nil
}

type execTerminal struct {
	name     string
	provider *ExecProvider
}

func (t *execTerminal) Name() string {
	return t.name
}

// Send runs the line to completion. A non-zero exit is reported in the result,
// not as an error: the line was delivered.
func (t *execTerminal) Send(ctx context.Context, line string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, t.provider.shell, "-c", line)
	c.Stdin = t.provider.stdin
	c.Stdout = t.provider.stdout
	c.Stderr = t.provider.stderr
	c.Env = append(os.Environ(), domain.EnvTerminal+"="+t.name)

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Sent:       true,
		DurationMS: time.Since(start).Milliseconds(),
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		result.Sent = false
		return result, err
	}
	return result, nil
}

var _ ports.TerminalProvider = (*ExecProvider)(nil)

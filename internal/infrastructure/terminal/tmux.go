package terminal

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Runner executes an external program.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs with os/exec, folding stderr into the error.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, args[0], err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, args[0], err)
	}
	return nil
}

// TmuxProvider maps terminals onto detached tmux sessions, reusing a session
// with the same name when one exists.
type TmuxProvider struct {
	runner Runner
	binary string
}

// NewTmuxProvider builds a provider; a nil runner uses ExecRunner.
func NewTmuxProvider(runner Runner) *TmuxProvider {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &TmuxProvider{runner: runner, binary: "tmux"}
}

// SessionName turns a terminal name into a valid tmux session name.
func SessionName(name string) string {
	return strings.NewReplacer(".", "_", ":", "_").Replace(name)
}

// FindOrCreate implements ports.TerminalProvider.
func (p *TmuxProvider) FindOrCreate(ctx context.Context, name string) (ports.Terminal, error) {
	session := SessionName(name)
	if err := p.runner.Run(ctx, p.binary, "has-session", "-t", "="+session); err != nil {
		if err := p.runner.Run(ctx, p.binary, "new-session", "-d", "-s", session); err != nil {
			return nil, fmt.Errorf("create tmux session %q: %w", session, err)
		}
	}
	return &tmuxTerminal{name: name, session: session, provider: p}, nil
}

type tmuxTerminal struct {
	name     string
	session  string
	provider *TmuxProvider
}

func (t *tmuxTerminal) Name() string {
	return t.name
}

// Send types the line literally into the session and presses Enter.
func (t *tmuxTerminal) Send(ctx context.Context, line string) (domain.ExecutionResult, error) {
	p := t.provider
	if err := p.runner.Run(ctx, p.binary, "send-keys", "-t", t.session, "-l", line); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("send to tmux session %q: %w", t.session, err)
	}
	if err := p.runner.Run(ctx, p.binary, "send-keys", "-t", t.session, "Enter"); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("send to tmux session %q: %w", t.session, err)
	}
	return domain.ExecutionResult{Sent: true}, nil
}

var _ ports.TerminalProvider = (*TmuxProvider)(nil)

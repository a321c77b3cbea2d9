package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/doeshing/ctxrun/internal/app"
	"github.com/doeshing/ctxrun/internal/application/run"
	"github.com/doeshing/ctxrun/internal/domain"
	configinfra "github.com/doeshing/ctxrun/internal/infrastructure/config"
	"github.com/doeshing/ctxrun/internal/version"
)

type stubClipboard struct {
	copied string
	err    error
}

func (s *stubClipboard) Enabled() bool { return true }

func (s *stubClipboard) Copy(text string) error {
	s.copied = text
	return s.err
}

type stubNotifier struct{ infos []string }

func (s *stubNotifier) Info(msg string) { s.infos = append(s.infos, msg) }
func (s *stubNotifier) Warn(string) {}

func TestRenderEligible(t *testing.T) {
	var buf bytes.Buffer
	entries := []domain.CommandEntry{
		{Key: "build", Config: domain.CommandConfig{Description: "Build it", Command: "make"}},
		{Key: "sh", Config: domain.CommandConfig{Command: "ls", Shell: "zsh", LoginShell: true}},
	}
	if err := renderEligible(&buf, entries); err != nil {
		t.Fatalf("renderEligible error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], "Build it") || !strings.Contains(lines[1], "bash -c") {
		t.Errorf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], "zsh -lc") {
		t.Errorf("unexpected row %q", lines[2])
	}

	buf.Reset()
	if err := renderEligible(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != MsgNoEligibleCommands {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestRenderSources(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/home/u/.ctxrun/config.yaml", []byte("commands: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := configinfra.NewFileLoaderFs(fsys, "/home/u/.ctxrun/config.yaml")

	var buf bytes.Buffer
	if err := renderSources(&buf, loader.SourceStatuses("")); err != nil {
		t.Fatal(err)
	}
	want := "found   /home/u/.ctxrun/config.yaml\n"
	if buf.String() != want {
		t.Fatalf("renderSources = %q, want %q", buf.String(), want)
	}
}

func TestConfigCommandsWithoutWorkspaceResolver(t *testing.T) {
	loader := configinfra.NewFileLoaderFs(afero.NewMemMapFs(), "/cfg.yaml")
	container := &app.Container{ConfigProvider: loader, ConfigLoader: loader}

	for _, sub := range []string{"show", "path", "validate"} {
		t.Run(sub, func(t *testing.T) {
			cmd := NewConfigCommand(container)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{sub})
			err := cmd.Execute()
			if err == nil || err.Error() != ErrWorkspaceResolverUnavailable {
				t.Fatalf("expected %q, got %v", ErrWorkspaceResolverUnavailable, err)
			}
		})
	}
}

func TestCopyRunResponse(t *testing.T) {
	clip := &stubClipboard{}
	notifier := &stubNotifier{}
	container := &app.Container{RunService: &run.Service{Notifier: notifier}, Clipboard: clip}
	resp := domain.RunResponse{
		Outcome:    domain.OutcomePreview,
		Invocation: &domain.Invocation{Line: `cd "/tmp" && bash -c "ls"`},
	}
	if err := copyRunResponse(container, resp); err != nil {
		t.Fatalf("copyRunResponse error: %v", err)
	}
	if clip.copied != resp.Invocation.Line {
		t.Fatalf("copied %q", clip.copied)
	}
	if len(notifier.infos) != 1 || notifier.infos[0] != MsgCopiedToClipboard {
		t.Fatalf("unexpected notifications %v", notifier.infos)
	}

	clip.err = errors.New("no display")
	if err := copyRunResponse(container, resp); err == nil {
		t.Fatal("expected clipboard error")
	}

	cancelled := domain.RunResponse{Outcome: domain.OutcomeCancelled}
	clip.copied = ""
	if err := copyRunResponse(container, cancelled); err != nil || clip.copied != "" {
		t.Fatalf("cancelled run must not copy: err=%v copied=%q", err, clip.copied)
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := error(&ExitError{Code: 3})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 3 {
		t.Fatalf("errors.As failed for %v", err)
	}
	if err.Error() != "command exited with status 3" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRenderVersion(t *testing.T) {
	info := version.Info{Version: "v1.0.0", Commit: "abc123", BuildDate: "2026-10-01", Modified: true}

	var buf bytes.Buffer
	if err := renderVersion(&buf, info, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "v1.0.0\n" {
		t.Fatalf("short output = %q", buf.String())
	}

	buf.Reset()
	if err := renderVersion(&buf, info, false); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ctxrun v1.0.0\n", "commit:   abc123 (modified)\n", "built:    2026-10-01\n", "platform: "} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/ctxrun/internal/domain"
)

func TestNotifierWritesMessages(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)
	n.Info("Running: Build")
	n.Warn("No commands apply to this folder.")

	out := buf.String()
	if !strings.Contains(out, "info Running: Build") {
		t.Fatalf("missing info line in %q", out)
	}
	if !strings.Contains(out, "warning No commands apply to this folder.") {
		t.Fatalf("missing warning line in %q", out)
	}
}

func TestOptionText(t *testing.T) {
	withDescription := domain.NewPickItem(domain.CommandEntry{
		Key:    "build",
		Config: domain.CommandConfig{Description: "Build it", Command: "make"},
	})
	if got := OptionText(withDescription); got != "Build it (build)  make" {
		t.Fatalf("OptionText() = %q", got)
	}
	bare := domain.NewPickItem(domain.CommandEntry{Key: "ls", Config: domain.CommandConfig{Command: "ls -la"}})
	if got := OptionText(bare); got != "ls  ls -la" {
		t.Fatalf("OptionText() = %q", got)
	}
}

func TestPickerRequiresTerminal(t *testing.T) {
	p := NewPicker(strings.NewReader(""), &bytes.Buffer{})
	items := []domain.PickItem{domain.NewPickItem(domain.CommandEntry{Key: "a", Config: domain.CommandConfig{Command: "ls"}})}
	_, ok, err := p.Select(context.Background(), items)
	if ok || !errors.Is(err, domain.ErrNotInteractive) {
		t.Fatalf("expected ErrNotInteractive, got ok=%v err=%v", ok, err)
	}
}

func TestPickerEmptyList(t *testing.T) {
	_, ok, err := NewPicker(strings.NewReader(""), &bytes.Buffer{}).Select(context.Background(), nil)
	if ok || err != nil {
		t.Fatalf("expected silent no-op, got ok=%v err=%v", ok, err)
	}
}

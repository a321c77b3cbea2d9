// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The run use case depends only on these abstractions; the CLI, filesystem,
// terminal and configuration adapters under internal/infrastructure implement
// them.
package ports

import (
	"context"

	"github.com/doeshing/ctxrun/internal/domain"
)

// ConfigProvider loads the effective settings for a workspace root.
// Implementations typically read ~/.ctxrun/config.yaml plus workspace overlays.
type ConfigProvider interface {
	Load(ctx context.Context, workspace string) (domain.Settings, error)
}

// ResourceClassifier resolves a path into a file or folder resource.
type ResourceClassifier interface {
	Classify(ctx context.Context, path string) (domain.Resource, error)
}

// WorkspaceResolver finds the current workspace root; empty when there is none.
type WorkspaceResolver interface {
	Root(ctx context.Context, override string) string
}

// CommandSelector presents eligible commands and returns the user's choice.
// ok is false when the user dismissed the prompt.
type CommandSelector interface {
	Select(ctx context.Context, items []domain.PickItem) (item domain.PickItem, ok bool, err error)
}

// TerminalProvider finds a terminal by name or creates it.
type TerminalProvider interface {
	FindOrCreate(ctx context.Context, name string) (Terminal, error)
}

// Terminal receives composed shell lines.
type Terminal interface {
	Name() string
	Send(ctx context.Context, line string) (domain.ExecutionResult, error)
}

// Notifier shows transient status messages to the user.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// Clipboard copies composed lines for pasting elsewhere.
type Clipboard interface {
	Enabled() bool
	Copy(text string) error
}

package domain

import "context"

// RunRequest captures one context-menu invocation.
type RunRequest struct {
	Context context.Context
	// Path is the selected resource. Empty means no invocation context.
	Path string
	// CommandKey preselects a command and skips the picker.
	CommandKey string
	// Workspace overrides workspace root detection.
	Workspace     string
	DryRun        bool
	StrictQuoting bool
	Terminal      TerminalSettings
}

// Plan is everything known about an invocation before a command is chosen.
type Plan struct {
	Resource  Resource
	Workspace string
	Settings  Settings
	Eligible  []CommandEntry
}

// PickItem is one row of the command picker.
type PickItem struct {
	Label       string
	Description string
	Detail      string
	Entry       CommandEntry
}

// NewPickItem builds a picker row: label is the description or key,
// description is the key, detail is the raw template.
func NewPickItem(entry CommandEntry) PickItem {
	return PickItem{
		Label:       entry.Config.Label(entry.Key),
		Description: entry.Key,
		Detail:      entry.Config.Command,
		Entry:       entry,
	}
}

// Outcome says how an invocation ended.
type Outcome string

const (
	OutcomeExecuted   Outcome = "executed"
	OutcomePreview    Outcome = "preview"
	OutcomeCancelled  Outcome = "cancelled"
	OutcomeNoCommands Outcome = "no_commands"
	OutcomeNoEligible Outcome = "no_eligible"
)

// RunResponse is returned to the CLI after an invocation.
type RunResponse struct {
	ID         string
	Outcome    Outcome
	Plan       Plan
	Selected   *CommandEntry
	Variables  Variables
	Invocation *Invocation
	Terminal   string
	Result     *ExecutionResult
}

// ExecutionResult wraps details from the terminal backend.
type ExecutionResult struct {
	Sent       bool
	ExitCode   int
	DurationMS int64
}

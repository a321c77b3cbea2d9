package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings mirrors ~/.ctxrun/config.yaml (and the workspace overlays).
type Settings struct {
	StrictQuoting bool             `yaml:"strictQuoting,omitempty"`
	Terminal      TerminalSettings `yaml:"terminal,omitempty"`
	Commands      CommandsConfig   `yaml:"commands"`
}

// TerminalSettings selects the terminal backend and the session name.
type TerminalSettings struct {
	Kind TerminalKind `yaml:"kind,omitempty"`
	Name string       `yaml:"name,omitempty"`
}

// TerminalKind enumerates terminal backends.
type TerminalKind string

const (
	TerminalExec TerminalKind = "exec"
	TerminalTmux TerminalKind = "tmux"
)

// CommandConfig is one user-defined command template and its applicability rules.
type CommandConfig struct {
	Description  string        `yaml:"description,omitempty"`
	Command      string        `yaml:"command"`
	When         ResourceScope `yaml:"when,omitempty"`
	Shell        string        `yaml:"shell,omitempty"`
	LoginShell   bool          `yaml:"loginShell,omitempty"`
	PathContains StringList    `yaml:"pathContains,omitempty"`
	PathPattern  StringList    `yaml:"pathPattern,omitempty"`
}

// ResourceScope is the `when` value of a command.
type ResourceScope string

const (
	ScopeAny    ResourceScope = "any"
	ScopeFile   ResourceScope = "file"
	ScopeFolder ResourceScope = "folder"
)

// StringList accepts either a single string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CommandEntry pairs a command key with its configuration.
type CommandEntry struct {
	Key    string
	Config CommandConfig
}

// CommandsConfig is the key -> CommandConfig mapping. It keeps the order in
// which keys appear in the configuration source.
type CommandsConfig struct {
	entries []CommandEntry
}

// NewCommandsConfig builds a mapping from entries; later duplicates replace earlier ones.
func NewCommandsConfig(entries ...CommandEntry) CommandsConfig {
	var c CommandsConfig
	for _, entry := range entries {
		c.Set(entry.Key, entry.Config)
	}
	return c
}

// Len returns the number of configured commands.
func (c CommandsConfig) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in configuration order.
func (c CommandsConfig) Entries() []CommandEntry {
	out := make([]CommandEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks up a command by key.
func (c CommandsConfig) Get(key string) (CommandConfig, bool) {
	for _, entry := range c.entries {
		if entry.Key == key {
			return entry.Config, true
		}
	}
	return CommandConfig{}, false
}

// Set replaces the command with the same key in place or appends a new one.
func (c *CommandsConfig) Set(key string, cfg CommandConfig) {
	for i := range c.entries {
		if c.entries[i].Key == key {
			c.entries[i].Config = cfg
			return
		}
	}
	c.entries = append(c.entries, CommandEntry{Key: key, Config: cfg})
}

// Merge overlays other on top of c.
func (c *CommandsConfig) Merge(other CommandsConfig) {
	for _, entry := range other.entries {
		c.Set(entry.Key, entry.Config)
	}
}

// UnmarshalYAML decodes a mapping node while preserving key order.
func (c *CommandsConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		c.entries = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: commands must be a mapping of key to command", node.Line)
	}
	entries := make([]CommandEntry, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return fmt.Errorf("line %d: command %q defined more than once", keyNode.Line, key)
		}
		seen[key] = struct{}{}
		var cfg CommandConfig
		if err := valueNode.Decode(&cfg); err != nil {
			return fmt.Errorf("command %q: %w", key, err)
		}
		entries = append(entries, CommandEntry{Key: key, Config: cfg})
	}
	c.entries = entries
	return nil
}

// MarshalYAML encodes the mapping in configuration order.
func (c CommandsConfig) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range c.entries {
		var value yaml.Node
		if err := value.Encode(entry.Config); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key},
			&value,
		)
	}
	return node, nil
}

package domain

// Label is the text shown for a command in the picker.
func (c CommandConfig) Label(key string) string {
	if c.Description != "" {
		return c.Description
	}
	return key
}

// Scope returns the effective `when` value.
func (c CommandConfig) Scope() ResourceScope {
	if c.When == "" {
		return ScopeAny
	}
	return c.When
}

// EffectiveShell returns the configured shell or the default one.
func (c CommandConfig) EffectiveShell() string {
	if c.Shell == "" {
		return DefaultShell
	}
	return c.Shell
}

// ShellFlag returns the flag passed to the shell before the command string.
func (c CommandConfig) ShellFlag() string {
	if c.LoginShell {
		return "-lc"
	}
	return "-c"
}

// TerminalKindOrDefault returns the configured backend or exec.
func (t TerminalSettings) TerminalKindOrDefault() TerminalKind {
	if t.Kind == "" {
		return TerminalExec
	}
	return t.Kind
}

// NameOrDefault returns the configured terminal name or the default one.
func (t TerminalSettings) NameOrDefault() string {
	if t.Name == "" {
		return DefaultTerminalName
	}
	return t.Name
}

// Merge overlays other on top of s. Commands are merged key by key; scalar
// settings are replaced only when set in other.
func (s *Settings) Merge(other Settings) {
	if other.StrictQuoting {
		s.StrictQuoting = true
	}
	if other.Terminal.Kind != "" {
		s.Terminal.Kind = other.Terminal.Kind
	}
	if other.Terminal.Name != "" {
		s.Terminal.Name = other.Terminal.Name
	}
	s.Commands.Merge(other.Commands)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"mvdan.cc/sh/v3/syntax"

	"github.com/doeshing/ctxrun/internal/domain"
)

// Validate checks every command and the terminal settings, reporting all problems at once.
func Validate(settings domain.Settings) error {
	var errs []error
	switch settings.Terminal.Kind {
	case "", domain.TerminalExec, domain.TerminalTmux:
	default:
		errs = append(errs, fmt.Errorf("terminal.kind must be exec|tmux, got %s", settings.Terminal.Kind))
	}
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	for _, entry := range settings.Commands.Entries() {
		errs = append(errs, validateCommand(parser, entry.Key, entry.Config)...)
	}
	return errors.Join(errs...)
}

func validateCommand(parser *syntax.Parser, key string, cfg domain.CommandConfig) []error {
	var errs []error
	if strings.TrimSpace(key) == "" {
		errs = append(errs, errors.New("command keys must not be empty"))
	}
	if strings.TrimSpace(cfg.Command) == "" {
		errs = append(errs, fmt.Errorf("commands.%s.command must be set", key))
	} else if _, err := parser.Parse(strings.NewReader(cfg.Command), key); err != nil {
		errs = append(errs, fmt.Errorf("commands.%s.command is not valid shell: %w", key, err))
	}
	switch cfg.When {
	case "", domain.ScopeAny, domain.ScopeFile, domain.ScopeFolder:
	default:
		errs = append(errs, fmt.Errorf("commands.%s.when must be file|folder|any, got %s", key, cfg.When))
	}
	if strings.ContainsAny(cfg.Shell, " \t\n") {
		errs = append(errs, fmt.Errorf("commands.%s.shell must be a single executable, got %q", key, cfg.Shell))
	}
	for _, pattern := range cfg.PathPattern {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("commands.%s.pathPattern %q is not a valid glob", key, pattern))
		}
	}
	for _, needle := range cfg.PathContains {
		if needle == "" {
			errs = append(errs, fmt.Errorf("commands.%s.pathContains has an empty entry", key))
		}
	}
	return errs
}

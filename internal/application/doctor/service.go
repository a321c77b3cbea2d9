package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"sort"

	configapp "github.com/doeshing/ctxrun/internal/application/config"
	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Workspace      ports.WorkspaceResolver
	// LookPath defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context, workspaceOverride string) (domain.HealthReport, error) {
	var checks []domain.HealthCheck
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	root := ""
	if s.Workspace != nil {
		root = s.Workspace.Root(ctx, workspaceOverride)
	}
	if root == "" {
		checks = append(checks, warn("Workspace", "no workspace root found; ${workspace} expands to an empty string"))
	} else {
		checks = append(checks, ok("Workspace", root))
	}

	settings, err := s.ConfigProvider.Load(ctx, root)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if settings.Commands.Len() == 0 {
		checks = append(checks, warn("Commands", "no commands configured"))
	} else {
		checks = append(checks, ok("Commands", fmt.Sprintf("%d configured", settings.Commands.Len())))
	}

	if err := configapp.Validate(settings); err != nil {
		checks = append(checks, fail("Validation", err.Error()))
	} else {
		checks = append(checks, ok("Validation", "all commands valid"))
	}

	for _, shell := range shells(settings) {
		if path, err := lookPath(shell); err != nil {
			checks = append(checks, fail("Shell "+shell, "not found on PATH"))
		} else {
			checks = append(checks, ok("Shell "+shell, path))
		}
	}

	kind := settings.Terminal.TerminalKindOrDefault()
	if kind == domain.TerminalTmux {
		if _, err := lookPath("tmux"); err != nil {
			checks = append(checks, fail("Terminal", "tmux not found on PATH"))
		} else {
			checks = append(checks, ok("Terminal", fmt.Sprintf("tmux session %q", settings.Terminal.NameOrDefault())))
		}
	} else {
		checks = append(checks, ok("Terminal", string(kind)))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func shells(settings domain.Settings) []string {
	seen := map[string]struct{}{}
	for _, entry := range settings.Commands.Entries() {
		seen[entry.Config.EffectiveShell()] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for shell := range seen {
		out = append(out, shell)
	}
	sort.Strings(out)
	return out
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}

package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/ctxrun/internal/domain"
)

type stubConfig struct {
	settings domain.Settings
	err      error
}

func (s stubConfig) Load(context.Context, string) (domain.Settings, error) {
	return s.settings, s.err
}

type stubWorkspace string

func (s stubWorkspace) Root(context.Context, string) string { return string(s) }

func TestDoctorReportsMissingShell(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{settings: domain.Settings{
			Terminal: domain.TerminalSettings{Kind: domain.TerminalTmux},
			Commands: domain.NewCommandsConfig(
				domain.CommandEntry{Key: "a", Config: domain.CommandConfig{Command: "ls"}},
				domain.CommandEntry{Key: "b", Config: domain.CommandConfig{Command: "ls", Shell: "fish"}},
			),
		}},
		Workspace: stubWorkspace("/repo"),
		LookPath: func(file string) (string, error) {
			if file == "fish" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + file, nil
		},
	}

	report, err := svc.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	statuses := map[string]domain.HealthStatus{}
	for _, check := range report.Checks {
		statuses[check.Name] = check.Status
	}
	want := map[string]domain.HealthStatus{
		"Workspace":  domain.HealthOK,
		"Commands":   domain.HealthOK,
		"Validation": domain.HealthOK,
		"Shell bash": domain.HealthOK,
		"Shell fish": domain.HealthError,
		"Terminal":   domain.HealthOK,
	}
	for name, status := range want {
		if statuses[name] != status {
			t.Errorf("%s = %s, want %s", name, statuses[name], status)
		}
	}
	if !report.HasErrors() {
		t.Fatal("expected report to carry errors")
	}
}

func TestDoctorConfigFailure(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("bad yaml")}}
	report, err := svc.Run(context.Background(), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(report.Checks) != 2 || report.Checks[1].Status != domain.HealthError {
		t.Fatalf("unexpected report %+v", report)
	}
}

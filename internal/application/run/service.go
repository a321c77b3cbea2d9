package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Service handles a single context-menu invocation end-to-end.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Classifier     ports.ResourceClassifier
	Workspace      ports.WorkspaceResolver
	Selector       ports.CommandSelector
	Terminals      TerminalSource
	Notifier       ports.Notifier
	Logger         ports.Logger
}

// TerminalSource picks the terminal backend for a kind.
type TerminalSource interface {
	For(kind domain.TerminalKind) (ports.TerminalProvider, error)
}

// Plan classifies the resource, loads settings and computes the eligible commands.
func (s *Service) Plan(ctx context.Context, path, workspaceOverride string) (domain.Plan, error) {
	if s.ConfigProvider == nil || s.Classifier == nil || s.Workspace == nil {
		return domain.Plan{}, errors.New("run.Service dependencies not satisfied")
	}
	if path == "" {
		return domain.Plan{}, domain.ErrNoResource
	}
	res, err := s.Classifier.Classify(ctx, path)
	if err != nil {
		return domain.Plan{}, err
	}
	root := s.Workspace.Root(ctx, workspaceOverride)
	settings, err := s.ConfigProvider.Load(ctx, root)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("load config: %w", err)
	}
	return domain.Plan{
		Resource:  res,
		Workspace: root,
		Settings:  settings,
		Eligible:  domain.Eligible(settings.Commands, res),
	}, nil
}

// Run processes one invocation. Warnings (nothing configured, nothing
// eligible) and a dismissed picker end the flow with a nil error.
func (s *Service) Run(req domain.RunRequest) (domain.RunResponse, error) {
	if s.Selector == nil || s.Terminals == nil || s.Notifier == nil || s.Logger == nil {
		return domain.RunResponse{}, errors.New("run.Service dependencies not satisfied")
	}
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	resp := domain.RunResponse{ID: uuid.NewString()}

	plan, err := s.Plan(ctx, req.Path, req.Workspace)
	if err != nil {
		s.Logger.Debug("invocation aborted", map[string]interface{}{"id": resp.ID, "path": req.Path, "error": err.Error()})
		return resp, err
	}
	resp.Plan = plan
	s.Logger.Debug("resource classified", map[string]interface{}{
		"id":        resp.ID,
		"path":      plan.Resource.Path,
		"type":      plan.Resource.Type,
		"workspace": plan.Workspace,
		"commands":  plan.Settings.Commands.Len(),
		"eligible":  len(plan.Eligible),
	})

	if plan.Settings.Commands.Len() == 0 {
		resp.Outcome = domain.OutcomeNoCommands
		s.Notifier.Warn(fmt.Sprintf("No commands configured. Add %s.commands to your settings.", domain.SettingsSection))
		return resp, nil
	}
	if len(plan.Eligible) == 0 {
		resp.Outcome = domain.OutcomeNoEligible
		s.Notifier.Warn(fmt.Sprintf("No commands apply to this %s.", plan.Resource.Type))
		return resp, nil
	}

	entry, ok, err := s.choose(ctx, req.CommandKey, plan.Eligible)
	if err != nil {
		return resp, err
	}
	if !ok {
		resp.Outcome = domain.OutcomeCancelled
		s.Logger.Debug("selection dismissed", map[string]interface{}{"id": resp.ID})
		return resp, nil
	}
	resp.Selected = &entry

	resp.Variables = domain.BuildVariables(plan.Resource, plan.Workspace)
	command := domain.Substitute(entry.Config.Command, resp.Variables)
	strict := req.StrictQuoting || plan.Settings.StrictQuoting
	inv, err := domain.ComposeInvocation(plan.Resource.Dir(), entry.Config, command, strict)
	if err != nil {
		return resp, err
	}
	resp.Invocation = &inv

	termSettings := plan.Settings.Terminal
	if req.Terminal.Kind != "" {
		termSettings.Kind = req.Terminal.Kind
	}
	if req.Terminal.Name != "" {
		termSettings.Name = req.Terminal.Name
	}
	resp.Terminal = termSettings.NameOrDefault()

	if req.DryRun {
		resp.Outcome = domain.OutcomePreview
		return resp, nil
	}

	provider, err := s.Terminals.For(termSettings.TerminalKindOrDefault())
	if err != nil {
		return resp, err
	}
	term, err := provider.FindOrCreate(ctx, resp.Terminal)
	if err != nil {
		return resp, fmt.Errorf("open terminal: %w", err)
	}
	s.Logger.Info("sending command", map[string]interface{}{
		"id":       resp.ID,
		"key":      entry.Key,
		"terminal": term.Name(),
		"strict":   strict,
	})
	s.Notifier.Info(fmt.Sprintf("Running: %s", entry.Config.Label(entry.Key)))
	result, err := term.Send(ctx, inv.Line)
	resp.Result = &result
	if err != nil {
		return resp, fmt.Errorf("send to terminal %q: %w", term.Name(), err)
	}
	resp.Outcome = domain.OutcomeExecuted
	return resp, nil
}

func (s *Service) choose(ctx context.Context, key string, eligible []domain.CommandEntry) (domain.CommandEntry, bool, error) {
	if key != "" {
		for _, entry := range eligible {
			if entry.Key == key {
				return entry, true, nil
			}
		}
		return domain.CommandEntry{}, false, fmt.Errorf("%w: %s", domain.ErrCommandNotEligible, key)
	}
	items := make([]domain.PickItem, 0, len(eligible))
	for _, entry := range eligible {
		items = append(items, domain.NewPickItem(entry))
	}
	item, ok, err := s.Selector.Select(ctx, items)
	if err != nil || !ok {
		return domain.CommandEntry{}, false, err
	}
	return item.Entry, true, nil
}

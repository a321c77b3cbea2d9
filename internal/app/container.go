package app

import (
	"context"
	"io"

	"github.com/doeshing/ctxrun/internal/application/doctor"
	"github.com/doeshing/ctxrun/internal/application/run"
	"github.com/doeshing/ctxrun/internal/infrastructure/config"
	"github.com/doeshing/ctxrun/internal/infrastructure/resource"
	"github.com/doeshing/ctxrun/internal/infrastructure/terminal"
	"github.com/doeshing/ctxrun/internal/infrastructure/workspace"
	"github.com/doeshing/ctxrun/internal/pkg/logger"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Options configures container construction.
type Options struct {
	ConfigPath string
	Verbose    bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// Container wires up application services with infrastructure adapters.
// The interactive adapters (selector, notifier, clipboard) are attached by the CLI.
type Container struct {
	RunService     *run.Service
	DoctorService  *doctor.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Workspace      ports.WorkspaceResolver
	Logger         ports.Logger
	Clipboard      ports.Clipboard
}

// BuildContainer constructs the dependency graph.
func BuildContainer(_ context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	log := logger.New(opts.Stderr, opts.Verbose)
	resolver := workspace.NewResolver()

	terminals := terminal.Providers{
		Exec: terminal.NewExecProvider("", opts.Stdin, opts.Stdout, opts.Stderr),
		Tmux: terminal.NewTmuxProvider(nil),
	}

	runService := &run.Service{
		ConfigProvider: cfgLoader,
		Classifier:     resource.NewClassifier(),
		Workspace:      resolver,
		Terminals:      terminals,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Workspace:      resolver,
	}

	return &Container{
		RunService:     runService,
		DoctorService:  doctorService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Workspace:      resolver,
		Logger:         log,
	}, nil
}

package workspace

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/pkg/filesystem"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Resolver finds the workspace root: explicit override, then CTXRUN_WORKSPACE,
// then the nearest ancestor of the working directory holding a marker.
// The home directory itself is never taken as a workspace.
type Resolver struct {
	fs      afero.Fs
	getwd   func() (string, error)
	home    string
	markers []string
}

// NewResolver builds a resolver on the OS filesystem.
func NewResolver() *Resolver {
	return NewResolverFs(afero.NewOsFs(), os.Getwd, filesystem.UserHomeDir())
}

// NewResolverFs builds a resolver on an arbitrary filesystem.
func NewResolverFs(fsys afero.Fs, getwd func() (string, error), home string) *Resolver {
	return &Resolver{
		fs:      fsys,
		getwd:   getwd,
		home:    filepath.Clean(home),
		markers: domain.WorkspaceMarkers,
	}
}

// Root implements ports.WorkspaceResolver.
func (r *Resolver) Root(_ context.Context, override string) string {
	if override != "" {
		return r.absolute(filesystem.ExpandPath(override))
	}
	if env := os.Getenv(domain.EnvWorkspace); env != "" {
		return r.absolute(filesystem.ExpandPath(env))
	}
	wd, err := r.getwd()
	if err != nil {
		return ""
	}
	return r.discover(filepath.Clean(wd))
}

func (r *Resolver) discover(dir string) string {
	for {
		if dir == r.home {
			return ""
		}
		for _, marker := range r.markers {
			if ok, _ := afero.Exists(r.fs, filepath.Join(dir, marker)); ok {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (r *Resolver) absolute(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if wd, err := r.getwd(); err == nil {
		return filepath.Join(wd, path)
	}
	return path
}

var _ ports.WorkspaceResolver = (*Resolver)(nil)

package resource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Classifier stats paths to decide between file and folder resources.
type Classifier struct {
	fs    afero.Fs
	getwd func() (string, error)
}

// NewClassifier builds a classifier on the OS filesystem.
func NewClassifier() *Classifier {
	return NewClassifierFs(afero.NewOsFs(), os.Getwd)
}

// NewClassifierFs builds a classifier on an arbitrary filesystem; getwd resolves relative paths.
func NewClassifierFs(fsys afero.Fs, getwd func() (string, error)) *Classifier {
	return &Classifier{fs: fsys, getwd: getwd}
}

// Classify implements ports.ResourceClassifier. Only regular files are files;
// directories and other kinds of paths are folders.
func (c *Classifier) Classify(_ context.Context, path string) (domain.Resource, error) {
	abs, err := c.absolute(path)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("%w: %s", domain.ErrResourceInaccessible, path)
	}
	info, err := c.fs.Stat(abs)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("%w: %s", domain.ErrResourceInaccessible, abs)
	}
	switch {
	case info.Mode().IsRegular():
		return domain.Resource{Path: abs, Type: domain.ResourceFile}, nil
	case info.IsDir():
		return domain.Resource{Path: abs, Type: domain.ResourceFolder}, nil
	default:
		return domain.Resource{Path: abs, Type: domain.ResourceFolder, Irregular: true}, nil
	}
}

func (c *Classifier) absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := c.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

var _ ports.ResourceClassifier = (*Classifier)(nil)

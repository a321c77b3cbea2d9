package domain

import "path/filepath"

// ResourceType is the classification of a selected path.
type ResourceType string

const (
	ResourceFile   ResourceType = "file"
	ResourceFolder ResourceType = "folder"
)

// Resource is a classified filesystem path. Paths that are neither regular
// files nor directories (sockets, devices, pipes) classify as folders with
// Irregular set, so they are neither a file nor a folder for ${isFile} and
// ${isFolder}.
type Resource struct {
	Path      string
	Type      ResourceType
	Irregular bool
}

// IsFile reports whether the resource is a file.
func (r Resource) IsFile() bool {
	return r.Type == ResourceFile
}

// IsFolder reports whether the resource is a directory.
func (r Resource) IsFolder() bool {
	return r.Type == ResourceFolder && !r.Irregular
}

// Dir is the directory commands run in: the parent for a file, the path itself otherwise.
func (r Resource) Dir() string {
	if r.IsFile() {
		return filepath.Dir(r.Path)
	}
	return r.Path
}

// Name is the base name of the resource.
func (r Resource) Name() string {
	return filepath.Base(r.Path)
}

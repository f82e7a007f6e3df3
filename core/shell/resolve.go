package shell

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/afero"
)

// SplitSearchPath splits a PATH style list of directories. An empty list
// has no directories.
func SplitSearchPath(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, ":")
}

// Resolver finds commands in an ordered list of directories.
type Resolver struct {
	fs         vos.VFS
	searchPath []string
}

// NewResolver creates a resolver that lists the directories in searchPath
// through fs.
func NewResolver(fs vos.VFS, searchPath []string) *Resolver {
	return &Resolver{
		fs:         fs,
		searchPath: append([]string(nil), searchPath...),
	}
}

// SearchPath returns the directories searched, in order.
func (r *Resolver) SearchPath() []string {
	return append([]string(nil), r.searchPath...)
}

// Resolve returns dir/name for the first directory in the search path with an
// entry named exactly name. Directories that can't be listed are skipped.
func (r *Resolver) Resolve(name string) (string, error) {
	for _, dir := range r.searchPath {
		if dir == "" {
			continue
		}

		entries, err := afero.ReadDir(r.fs, dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.Name() == name {
				return strings.TrimSuffix(dir, "/") + "/" + name, nil
			}
		}
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

package vos

import (
	"io/fs"
	"os"
	"path"
	"sync"
	"syscall"
)

// VWorkDir holds the working directory of the shell session.
type VWorkDir interface {
	// Getwd returns the current working directory.
	Getwd() (dir string, err error)

	// Chdir changes the current working directory.
	Chdir(dir string) error
}

// HostWorkDir changes the working directory of the current process.
type HostWorkDir struct{}

var _ VWorkDir = HostWorkDir{}

// Getwd implements VWorkDir.Getwd.
func (HostWorkDir) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VWorkDir.Chdir.
func (HostWorkDir) Chdir(dir string) error {
	return os.Chdir(dir)
}

// NewVirtualWorkDir creates a working directory that is validated against
// the given filesystem rather than the host.
func NewVirtualWorkDir(vfs VFS, dir string) *VirtualWorkDir {
	return &VirtualWorkDir{fs: vfs, dir: path.Clean(dir)}
}

// VirtualWorkDir tracks a working directory inside a VFS.
type VirtualWorkDir struct {
	mu  sync.Mutex
	fs  VFS
	dir string
}

var _ VWorkDir = (*VirtualWorkDir)(nil)

// Getwd implements VWorkDir.Getwd.
func (w *VirtualWorkDir) Getwd() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.dir, nil
}

// Chdir implements VWorkDir.Chdir, errors mirror those of os.Chdir.
func (w *VirtualWorkDir) Chdir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == "" {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	}

	target := dir
	if !path.IsAbs(target) {
		target = path.Join(w.dir, target)
	}

	stat, err := w.fs.Stat(target)
	switch {
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	case !stat.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	default:
		w.dir = path.Clean(target)
		return nil
	}
}

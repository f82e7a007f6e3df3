package vos

import "github.com/spf13/afero"

// VFS is the filesystem the shell lists directories through.
type VFS = afero.Fs

// VOS provides the slice of the operating system the shell depends on.
type VOS interface {
	VEnv
	VIO
	VFS
	VWorkDir
}

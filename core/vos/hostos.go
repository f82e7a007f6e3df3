package vos

import (
	"io"

	"github.com/spf13/afero"
)

// HostOS is a VOS backed by the real operating system.
type HostOS struct {
	HostEnv
	HostWorkDir
	VFS
	VIO
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS over the host filesystem, environment and working
// directory with the given standard streams.
func NewHostOS(stdin io.Reader, stdout, stderr io.Writer) *HostOS {
	return &HostOS{
		VFS: afero.NewOsFs(),
		VIO: NewVIOAdapter(stdin, stdout, stderr),
	}
}

// Package vostest provides deterministic in-memory operating systems for tests.
package vostest

import (
	"io"
	"os"
	"path"
	"testing"

	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/afero"
)

// TestOS is an in-memory VOS: a MemMapFs filesystem, a map backed
// environment, and a working directory validated against the filesystem.
type TestOS struct {
	*vos.MapEnv
	*vos.VirtualWorkDir
	vos.VFS
	vos.VIO
}

var _ vos.VOS = (*TestOS)(nil)

// NewTestOS creates an empty TestOS rooted at "/" with the given streams.
func NewTestOS(stdin io.Reader, stdout, stderr io.Writer) *TestOS {
	memFs := afero.NewMemMapFs()
	return &TestOS{
		MapEnv:         vos.NewMapEnv(),
		VirtualWorkDir: vos.NewVirtualWorkDir(memFs, "/"),
		VFS:            memFs,
		VIO:            vos.NewVIOAdapter(stdin, stdout, stderr),
	}
}

// MustMkdirAll creates the directory and its parents or fails the test.
func (o *TestOS) MustMkdirAll(tb testing.TB, dir string) {
	tb.Helper()

	if err := o.VFS.MkdirAll(dir, 0755); err != nil {
		tb.Fatal(err)
	}
}

// MustWriteFile creates a file with the given mode, creating parents as
// needed, or fails the test.
func (o *TestOS) MustWriteFile(tb testing.TB, name string, mode os.FileMode) {
	tb.Helper()

	o.MustMkdirAll(tb, path.Dir(name))
	if err := afero.WriteFile(o.VFS, name, []byte("#!/bin/true\n"), mode); err != nil {
		tb.Fatal(err)
	}
}

// MustWriteExecutable creates an executable file.
func (o *TestOS) MustWriteExecutable(tb testing.TB, name string) {
	tb.Helper()

	o.MustWriteFile(tb, name, 0755)
}

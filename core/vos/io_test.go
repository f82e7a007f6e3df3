package vos

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVIOAdapter(t *testing.T) {
	out := &bytes.Buffer{}
	vio := NewVIOAdapter(strings.NewReader("in"), out, nil)

	buf := make([]byte, 2)
	n, err := vio.Stdin().Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "in", string(buf[:n]))

	_, err = vio.Stdout().Write([]byte("out"))
	assert.NoError(t, err)
	assert.Equal(t, "out", out.String())
	assert.NoError(t, vio.Stdout().Close())

	n, err = vio.Stderr().Write([]byte("discarded"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestVIOAdapter_keepsFiles(t *testing.T) {
	vio := NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr)

	// Children need the *os.File to inherit the descriptor directly.
	assert.Same(t, os.Stdin, vio.Stdin())
	assert.Same(t, os.Stdout, vio.Stdout())
	assert.Same(t, os.Stderr, vio.Stderr())
}

func TestNewNullIO(t *testing.T) {
	vio := NewNullIO()

	_, err := vio.Stdin().Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)
}

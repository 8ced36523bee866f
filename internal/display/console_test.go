package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleRemoved(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c := New(out, errOut)

	c.Removed("a.txt")

	assert.Equal(t, "removed 'a.txt'\n", out.String())
	assert.Empty(t, errOut.String(), "success messages must not reach stderr")
}

func TestConsoleCannotRemove(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c := New(out, errOut)

	c.CannotRemove("stuff", "Is a directory")

	assert.Equal(t, "rm: cannot remove 'stuff': Is a directory\n", errOut.String())
	assert.Empty(t, out.String(), "error messages must not reach stdout")
}

func TestConsoleNoEscapeCodesForBuffers(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c := New(out, errOut)

	c.Removed("a.txt")
	c.CannotRemove("b.txt", "No such file or directory")

	assert.NotContains(t, out.String(), "\x1b[")
	assert.NotContains(t, errOut.String(), "\x1b[")
}

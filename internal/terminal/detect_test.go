package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	isTerminal = func(int) bool { return true }
	assert.True(t, IsInteractive())

	isTerminal = func(fd int) bool { return fd != int(os.Stderr.Fd()) }
	assert.False(t, IsInteractive())

	isTerminal = func(fd int) bool { return fd != int(os.Stdin.Fd()) }
	assert.False(t, IsInteractive())
}

//go:build unix

package scaffold

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/storekit/internal/runlock"
)

func TestRunFailsWhileLocked(t *testing.T) {
	env := newRunEnv(t)
	held, err := runlock.Acquire(env.root, env.opts.LockDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = held.Release() })

	_, err = Run(context.Background(), env.opts)

	assert.ErrorIs(t, err, runlock.ErrLocked)
	assert.Empty(t, env.sys.runs)
	assert.NoDirExists(t, filepath.Join(env.root, "src"))
}

func TestDryRunIgnoresLock(t *testing.T) {
	env := newRunEnv(t)
	held, err := runlock.Acquire(env.root, env.opts.LockDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = held.Release() })
	env.opts.DryRun = true

	_, err = Run(context.Background(), env.opts)
	assert.NoError(t, err)
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchRequiresFile(t *testing.T) {
	mgr, err := loadFrom(t, t.TempDir())
	require.NoError(t, err)
	require.Error(t, mgr.Watch(context.Background()))
}

func TestManager_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[resize]\nstep = 3\n")
	mgr, err := loadFrom(t, dir)
	require.NoError(t, err)

	var step atomic.Int64
	mgr.OnConfigChange(func(cfg *Config) { step.Store(int64(cfg.Resize.Step)) })
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "watching twice is a no-op")

	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[resize]\nstep = 6\n"), filePerm))

	require.Eventually(t, func() bool { return step.Load() == 6 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 6, mgr.Get().Resize.Step)
}

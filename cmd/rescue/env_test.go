package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/settings"
)

func TestPresetFor(t *testing.T) {
	saved := settings.NewManager(nil)
	saved.SetDifficulty("easy")

	opts.Difficulty = ""
	assert.Equal(t, "easy", presetFor(saved))

	opts.Difficulty = "hard"
	t.Cleanup(func() { opts.Difficulty = "" })
	assert.Equal(t, "hard", presetFor(saved), "the flag wins over saved settings")
}

func TestApplyGameConfigReachesNewGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  target_rescues: 3\n"), 0o644))

	opts.Config = path
	applyGameConfig("")
	t.Cleanup(func() {
		opts.Config = ""
		applyGameConfig("")
	})

	for _, id := range []string{"runner", "patrol"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
		assert.Equal(t, 3, g.State().Target, id)
	}
}

func TestSSHPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sshPort(tt.addr), tt.addr)
	}
}

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rescue/internal/core"
	_ "github.com/vovakirdan/tui-rescue/internal/games/patrol"
	_ "github.com/vovakirdan/tui-rescue/internal/games/runner"
	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

func TestListIsSorted(t *testing.T) {
	games := registry.List()
	require.Len(t, games, 2)
	assert.Equal(t, registry.GameInfo{ID: "patrol", Title: "City Patrol"}, games[0])
	assert.Equal(t, "runner", games[1].ID)
}

func TestCreateUnknown(t *testing.T) {
	_, err := registry.Create("pinball")
	assert.Error(t, err)
	assert.False(t, registry.Exists("pinball"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register("runner", func() registry.Game { return nil })
	})
}

func TestGamesAreVoicedScenes(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			g, err := registry.Create(info.ID)
			require.NoError(t, err)
			assert.Equal(t, info.ID, g.ID())

			v, ok := g.(registry.Voiced)
			require.True(t, ok)
			rec := &rescue.Recorder{}
			v.SetAnnouncer(rec)

			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
			assert.False(t, g.State().Started)

			g.Step(inputWith(core.ActionConfirm), 0.02)
			assert.True(t, g.State().Started)
			assert.Equal(t, 1, rec.Count(rescue.EventMissionStart))

			s, ok := g.(registry.Scener)
			require.True(t, ok)
			assert.Equal(t, g.State().Score, s.Scene().Score)
		})
	}
}

func inputWith(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

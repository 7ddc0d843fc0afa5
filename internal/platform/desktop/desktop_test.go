package desktop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

func TestRepeats(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{14, false},
		{15, true},
		{16, false},
		{19, true},
		{23, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, repeats(tt.ticks), "ticks=%d", tt.ticks)
	}
}

func TestToCell(t *testing.T) {
	opts := DefaultOptions()

	col, row := toCell(480, 320, opts)
	assert.Equal(t, 40, col)
	assert.Equal(t, 12, row)

	col, row = toCell(5000, -3, opts)
	assert.Equal(t, 79, col)
	assert.Equal(t, 0, row)
}

func TestScrollingProjection(t *testing.T) {
	snap := rescue.Snapshot{
		Hero:      rescue.Hero{Pos: core.V(0, 500)},
		Scrolling: true,
		Area:      core.Bounds{MinX: -480, MaxX: 480, MinY: math.Inf(-1), MaxY: math.Inf(1)},
	}
	p := newProjection(snap, 960, 640)

	x, y := p.point(snap.Hero.Pos)
	assert.Equal(t, float32(480), x)
	assert.Equal(t, float32(512), y)

	_, ahead := p.point(core.V(0, 600))
	assert.Less(t, ahead, y, "ahead of the hero is drawn above it")
}

func TestTopDownProjectionClampsToArea(t *testing.T) {
	snap := rescue.Snapshot{
		Hero: rescue.Hero{Pos: core.V(100, 100)},
		Area: core.Bounds{MaxX: 3200, MaxY: 2200},
	}
	p := newProjection(snap, 960, 640)

	x, y := p.point(core.V(0, 0))
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	snap.Hero.Pos = core.V(1600, 1100)
	p = newProjection(snap, 960, 640)
	x, y = p.point(snap.Hero.Pos)
	assert.InDelta(t, 480, x, 1e-3)
	assert.InDelta(t, 320, y, 1e-3)
}

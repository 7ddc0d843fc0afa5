package rescue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

var testIntegrator = Integrator{SmoothingRate: 9, LaneLimit: 520, MaxDelta: 0.033}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"long stall", 3, 0.033},
		{"negative", -0.5, 0},
		{"nan", math.NaN(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, testIntegrator.ClampDelta(tc.dt))
		})
	}

	unbounded := Integrator{}
	assert.Equal(t, 3.0, unbounded.ClampDelta(3), "zero MaxDelta disables the cap")
}

func TestSteerClampsToLaneLimit(t *testing.T) {
	h := &Hero{}
	for i := 0; i < 5; i++ {
		testIntegrator.Steer(h, 180)
	}
	assert.Equal(t, 520.0, h.LaneTarget)

	testIntegrator.SteerTo(h, -10000)
	assert.Equal(t, -520.0, h.LaneTarget)
}

func TestLateralSmoothing(t *testing.T) {
	h := &Hero{LaneTarget: 180}

	testIntegrator.Lateral(h, 0.1)
	assert.InDelta(t, 162, h.Pos.X, 1e-9, "90% of the way at dt*rate = 0.9")

	// A factor over one snaps to the target, never overshoots
	testIntegrator.Lateral(h, 1)
	assert.Equal(t, 180.0, h.Pos.X)
}

func TestLateralStaysInLane(t *testing.T) {
	h := &Hero{Pos: core.V(600, 0), LaneTarget: 600}
	testIntegrator.Lateral(h, 0.01)
	assert.LessOrEqual(t, h.Pos.X, 520.0)
}

func TestAdvance(t *testing.T) {
	h := &Hero{Speed: 460}
	d := testIntegrator.Advance(h, 0.5)

	assert.Equal(t, 230.0, d)
	assert.Equal(t, 230.0, h.Progress)
	assert.Equal(t, 230.0, h.Pos.Y)
}

func TestGlideInsideBounds(t *testing.T) {
	bounds := core.Bounds{MinX: 30, MinY: 30, MaxX: 3170, MaxY: 2170}
	h := &Hero{Pos: core.V(40, 40)}

	testIntegrator.Glide(h, core.V(-1, -1), 300, 1, bounds)
	assert.Equal(t, core.V(30, 30), h.Pos)

	h.Pos = core.V(100, 100)
	testIntegrator.Glide(h, core.V(3, 0), 300, 0.1, bounds)
	assert.InDelta(t, 130, h.Pos.X, 1e-9, "direction is normalized")
	assert.Equal(t, 100.0, h.Pos.Y)

	testIntegrator.Glide(h, core.Vec2{}, 300, 1, bounds)
	assert.InDelta(t, 130, h.Pos.X, 1e-9, "no direction, no movement")
}

func TestFollow(t *testing.T) {
	p := Follow(core.V(0, 0), core.V(100, 0), 5, 0.1)
	assert.InDelta(t, 50, p.X, 1e-9)

	p = Follow(core.V(0, 0), core.V(100, 0), 5, 1)
	assert.Equal(t, core.V(100, 0), p)
}

func TestFormToggle(t *testing.T) {
	assert.Equal(t, FormAlternate, FormPrimary.Toggle())
	assert.Equal(t, FormPrimary, FormAlternate.Toggle())
	assert.Equal(t, "Robot", FormPrimary.String())
	assert.Equal(t, "Vehicle", FormAlternate.String())
}

// Package desktop runs games in a window with ebiten. Games that expose a
// scene are drawn with shapes in world coordinates; others fall back to
// their text screen.
package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/platform"
	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
	"github.com/vovakirdan/tui-rescue/internal/storage"
)

// Options configures the window.
type Options struct {
	Width     int // Window size in pixels
	Height    int
	Runtime   core.RuntimeConfig // Cell grid handed to the game, and tick rate
	Store     *storage.Store
	Announcer rescue.Announcer
}

// DefaultOptions returns a 960x640 window over an 80x24 cell grid.
func DefaultOptions() Options {
	return Options{
		Width:   960,
		Height:  640,
		Runtime: core.DefaultConfig(),
	}
}

var (
	colorBackground = color.RGBA{0x14, 0x18, 0x22, 0xff}
	colorRoad       = color.RGBA{0x2a, 0x2f, 0x3a, 0xff}
	colorLaneMark   = color.RGBA{0x6b, 0x70, 0x7c, 0xff}
	colorObstacle   = color.RGBA{0xd9, 0x48, 0x3b, 0xff}
	colorCitizen    = color.RGBA{0xc0, 0x6b, 0xd6, 0xff}
	colorNearest    = color.RGBA{0xf2, 0xd3, 0x4f, 0xff}
	colorHero       = color.RGBA{0x4f, 0xd6, 0xe8, 0xff}
	colorVehicle    = color.RGBA{0x4f, 0xe8, 0x8a, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// patrolSpan is the width of the world shown by a top-down view.
const patrolSpan = 1600.0

// adapter implements ebiten.Game around a registry.Game.
type adapter struct {
	game    registry.Game
	scene   registry.Scener // nil when the game has no scene
	opts    Options
	input   *inputReader
	tracker *platform.Tracker
	screen  *core.Screen
	quit    bool
}

func newAdapter(game registry.Game, opts Options) *adapter {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = 80, 24
	}

	if v, ok := game.(registry.Voiced); ok && opts.Announcer != nil {
		v.SetAnnouncer(opts.Announcer)
	}
	game.Reset(opts.Runtime)

	a := &adapter{
		game:    game,
		opts:    opts,
		input:   newInputReader(),
		tracker: platform.NewTracker(opts.Store, game.ID(), opts.Runtime.Seed),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if s, ok := game.(registry.Scener); ok {
		a.scene = s
	}
	return a
}

// Update advances the game by one tick.
func (a *adapter) Update() error {
	frame, quit := a.input.read(a.opts)
	state := a.game.State()
	if quit || (frame.Has(core.ActionBack) && (state.GameOver || state.Paused || !state.Started)) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	result := a.game.Step(frame, dt)
	a.tracker.Observe(result.State, dt)
	return nil
}

// Draw renders the scene, or the text screen for games without one.
func (a *adapter) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)

	if a.scene == nil {
		a.game.Render(a.screen)
		ebitenutil.DebugPrintAt(dst, a.screen.String(), 4, 4)
		return
	}

	snap := a.scene.Scene()
	view := newProjection(snap, a.opts.Width, a.opts.Height)
	drawArea(dst, snap, view)

	for _, o := range snap.Obstacles {
		x, y := view.point(o.Pos)
		r := float32(o.Radius * view.scale)
		vector.DrawFilledRect(dst, x-r, y-r, 2*r, 2*r, colorObstacle, false)
	}

	for i, c := range snap.Citizens {
		if c.Resolved {
			continue
		}
		clr := colorCitizen
		if snap.Nearest != nil && snap.Nearest.Ref.Index == i && snap.Nearest.InRange {
			clr = colorNearest
		}
		x, y := view.point(c.Pos)
		vector.DrawFilledCircle(dst, x, y, float32(math.Max(c.Radius*view.scale, 4)), clr, true)
		if clr == colorNearest && c.Issue != "" {
			ebitenutil.DebugPrintAt(dst, c.Issue, int(x)-3*len(c.Issue), int(y)-28)
		}
	}

	hx, hy := view.point(snap.Hero.Pos)
	if snap.Hero.Form == rescue.FormAlternate {
		vector.DrawFilledRect(dst, hx-14, hy-20, 28, 40, colorVehicle, false)
	} else {
		vector.DrawFilledCircle(dst, hx, hy, 16, colorHero, true)
	}

	drawHUD(dst, snap, a.opts.Width)
}

// Layout keeps a fixed logical size.
func (a *adapter) Layout(_, _ int) (int, int) {
	return a.opts.Width, a.opts.Height
}

func drawArea(dst *ebiten.Image, snap rescue.Snapshot, view projection) {
	if snap.Scrolling {
		left, _ := view.point(core.V(snap.Area.MinX, snap.Hero.Pos.Y))
		right, _ := view.point(core.V(snap.Area.MaxX, snap.Hero.Pos.Y))
		vector.DrawFilledRect(dst, left, 0, right-left, float32(view.height), colorRoad, false)
		// Lane marks scroll with the hero
		offset := math.Mod(snap.Hero.Pos.Y*view.scale, 40)
		for y := -40.0; y < float64(view.height); y += 40 {
			for _, lane := range []float64{-1.0 / 3, 1.0 / 3} {
				x, _ := view.point(core.V(lane*snap.Area.MaxX, 0))
				vector.DrawFilledRect(dst, x-2, float32(y+offset), 4, 20, colorLaneMark, false)
			}
		}
		return
	}

	x0, y0 := view.point(core.V(snap.Area.MinX, snap.Area.MinY))
	x1, y1 := view.point(core.V(snap.Area.MaxX, snap.Area.MaxY))
	vector.DrawFilledRect(dst, x0, y0, x1-x0, y1-y0, colorRoad, false)
	vector.StrokeRect(dst, x0, y0, x1-x0, y1-y0, 2, colorLaneMark, false)
}

func drawHUD(dst *ebiten.Image, snap rescue.Snapshot, width int) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", snap.Score), 8, 8)
	right := fmt.Sprintf("Rescued: %d/%d  Form: %s", snap.Rescues, snap.Target, snap.Hero.Form)
	ebitenutil.DebugPrintAt(dst, right, width-8-6*len(right), 8)
	ebitenutil.DebugPrintAt(dst, snap.Message, 8, 24)

	var title, hint string
	switch snap.Status {
	case rescue.StatusNotStarted:
		title, hint = "READY", "Press Enter to start"
	case rescue.StatusPaused:
		title, hint = "PAUSED", "Press P to resume"
	case rescue.StatusEnded:
		title = "MISSION FAILED"
		if snap.Outcome == rescue.OutcomeWin {
			title = "MISSION COMPLETE"
		}
		hint = "Press R to play again, Esc to leave"
	default:
		return
	}

	bounds := dst.Bounds()
	cy := bounds.Dy() / 2
	vector.DrawFilledRect(dst, 0, float32(cy-30), float32(bounds.Dx()), 60, colorOverlay, false)
	ebitenutil.DebugPrintAt(dst, title, (bounds.Dx()-6*len(title))/2, cy-16)
	ebitenutil.DebugPrintAt(dst, hint, (bounds.Dx()-6*len(hint))/2, cy+2)
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, opts Options) error {
	a := newAdapter(game, opts)

	ebiten.SetWindowSize(a.opts.Width, a.opts.Height)
	ebiten.SetWindowTitle(game.Title())
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

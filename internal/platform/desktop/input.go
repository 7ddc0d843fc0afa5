package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// Held direction keys repeat like a terminal: once on press, then every
// repeatEvery ticks after repeatDelay ticks.
const (
	repeatDelay = 15
	repeatEvery = 4
)

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

type keyAction struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool
}

// inputReader turns ebiten keyboard and mouse state into input frames.
type inputReader struct {
	bindings []keyAction
}

func newInputReader() *inputReader {
	return &inputReader{bindings: []keyAction{
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionMoveLeft, true},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionMoveRight, true},
		{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionMoveUp, true},
		{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionMoveDown, true},
		{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyT}, core.ActionToggleForm, false},
		{[]ebiten.Key{ebiten.KeyE}, core.ActionInteract, false},
		{[]ebiten.Key{ebiten.KeyP}, core.ActionPause, false},
		{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm, false},
		{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
		{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack, false},
	}}
}

// read returns this tick's input and whether quit was pressed.
func (r *inputReader) read(opts Options) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return frame, true
	}

	for _, b := range r.bindings {
		for _, k := range b.keys {
			fired := inpututil.IsKeyJustPressed(k)
			if b.repeat {
				fired = repeats(inpututil.KeyPressDuration(k))
			}
			if fired {
				frame.Set(b.action)
				break
			}
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyShift) && moving(frame) {
		frame.Set(core.ActionSprint)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		col, row := toCell(x, y, opts)
		frame.PointerDownAt(col, row)
	}

	return frame, false
}

func moving(f core.InputFrame) bool {
	return f.Has(core.ActionMoveLeft) || f.Has(core.ActionMoveRight) ||
		f.Has(core.ActionMoveUp) || f.Has(core.ActionMoveDown)
}

// toCell maps a window pixel to the cell grid the game was reset with.
func toCell(x, y int, opts Options) (int, int) {
	col := x * opts.Runtime.ScreenW / max(opts.Width, 1)
	row := y * opts.Runtime.ScreenH / max(opts.Height, 1)
	return core.Clamp(col, 0, opts.Runtime.ScreenW-1), core.Clamp(row, 0, opts.Runtime.ScreenH-1)
}

package patrol

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// Visual characters for rendering
const (
	HeroChar      = '@'
	VehicleChar   = '#'
	CompanionChar = '&'
	CitizenChar   = 'o'
	RoadVChar     = '│'
	RoadHChar     = '─'
	CrossChar     = '┼'
)

const (
	hudRows  = 2    // Status bar and message line
	cellW    = 20.0 // World units per screen column
	cellH    = 40.0 // World units per screen row
	roadStep = 260.0
	roadX0   = 120.0
	roadY0   = 80.0
)

// camera returns the world position of the top-left visible cell, keeping
// the hero centred while staying inside the city.
func (g *Game) camera(w, h int) core.Vec2 {
	viewW := float64(w) * cellW
	viewH := float64(core.Max(h-hudRows, 1)) * cellH
	hero := g.world.Hero().Pos
	return core.V(
		core.ClampF(hero.X-viewW/2, 0, math.Max(0, g.cfg.City.Width-viewW)),
		core.ClampF(hero.Y-viewH/2, 0, math.Max(0, g.cfg.City.Height-viewH)),
	)
}

// screenToWorld converts a screen cell to the world position at its centre.
func (g *Game) screenToWorld(col, row int) core.Vec2 {
	cam := g.camera(g.viewSize())
	return core.V(
		cam.X+(float64(col)+0.5)*cellW,
		cam.Y+(float64(row-hudRows)+0.5)*cellH,
	)
}

// worldToScreen converts a world position to a screen cell.
func worldToScreen(cam, p core.Vec2) (int, int) {
	return int(math.Floor((p.X - cam.X) / cellW)), int(math.Floor((p.Y-cam.Y)/cellH)) + hudRows
}

// onRoad reports whether the world span [a, a+size) crosses a road line.
func onRoad(a, size, origin float64) bool {
	k := math.Ceil((a - origin) / roadStep)
	line := origin + k*roadStep
	return line < a+size
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	g.view = [2]int{w, h}
	cam := g.camera(w, h)

	// Road grid
	for row := hudRows; row < h; row++ {
		wy := cam.Y + float64(row-hudRows)*cellH
		if wy >= g.cfg.City.Height {
			break
		}
		horiz := onRoad(wy, cellH, roadY0)
		for col := 0; col < w; col++ {
			wx := cam.X + float64(col)*cellW
			if wx >= g.cfg.City.Width {
				break
			}
			vert := onRoad(wx, cellW, roadX0)
			switch {
			case horiz && vert:
				dst.SetColored(col, row, CrossChar, core.ColorGray)
			case horiz:
				dst.SetColored(col, row, RoadHChar, core.ColorGray)
			case vert:
				dst.SetColored(col, row, RoadVChar, core.ColorGray)
			}
		}
	}

	nearest, hasNearest := g.world.NearestCitizen()
	for i, c := range g.world.Registry().Citizens() {
		if c.Resolved {
			continue
		}
		x, y := worldToScreen(cam, c.Pos)
		if y < hudRows {
			continue
		}
		color := core.ColorMagenta
		if hasNearest && nearest.Ref.Index == i {
			color = core.ColorBrightMagenta
			if nearest.InRange {
				color = core.ColorBrightYellow
				label := c.Issue
				dst.DrawTextColored(x-len([]rune(label))/2, y-1, label, core.ColorBrightWhite)
			}
		}
		dst.SetColored(x, y, CitizenChar, color)
	}

	for i, p := range g.Companions() {
		x, y := worldToScreen(cam, p)
		if y < hudRows {
			continue
		}
		color := core.ColorOrange
		if i == 1 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, y, CompanionChar, color)
	}

	hero := g.world.Hero()
	hx, hy := worldToScreen(cam, hero.Pos)
	ch := HeroChar
	if hero.Form == rescue.FormAlternate {
		ch = VehicleChar
	}
	dst.SetColored(hx, hy, ch, core.ColorBrightCyan)

	g.drawHUD(dst)

	switch s := g.world.Session(); s.Status() {
	case rescue.StatusPaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case rescue.StatusEnded:
		drawCenteredMessage(dst, "PATROL COMPLETE", fmt.Sprintf("Reputation: %d  |  Press R for a new shift", s.Score()))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.world.Session()
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Reputation: %d ", s.Score()), core.ColorBrightWhite)

	right := fmt.Sprintf(" Missions: %d/%d  Form: %s ", s.Rescues(), s.Target(), g.world.Hero().Form)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightGreen)

	dst.DrawHLine(0, 1, dst.Width(), ' ')
	dst.DrawTextCentered(1, g.message)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-titleLen)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle)
}

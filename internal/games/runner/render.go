package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// Visual characters for rendering
const (
	RoadEdge     = '│'
	LaneMark     = '┆'
	ObstacleChar = '▓'
	CitizenChar  = '☺'
	RobotChar    = '█'
	VehicleChar  = '▀'
	HeadChar     = '◆'
)

const (
	hudRows   = 2      // Score line and status line
	viewAhead = 1500.0 // World units visible above the hero
)

// roadColumns returns the first and last screen column of the road surface.
func roadColumns(w int) (left, right int) {
	return 2, w - 3
}

// heroRow returns the screen row the hero is drawn on.
func heroRow(h int) int {
	return h - 3
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	g.view = [2]int{w, h}
	left, right := roadColumns(w)
	hero := *g.world.Hero()
	row := heroRow(h)
	unitsPerRow := viewAhead / float64(core.Max(row-hudRows, 1))

	// Road edges and a scrolling centre line
	dst.DrawVLine(left-1, hudRows, h-hudRows, RoadEdge)
	dst.DrawVLine(right+1, hudRows, h-hudRows, RoadEdge)
	scroll := int(hero.Progress / unitsPerRow)
	mid := g.laneColumn(0, w)
	for y := hudRows; y < h; y++ {
		if ((y-scroll)%4+4)%4 < 2 {
			dst.SetColored(mid, y, LaneMark, core.ColorGray)
		}
	}

	toRow := func(y float64) int {
		return row - int(math.Round((y-hero.Pos.Y)/unitsPerRow))
	}

	for _, o := range g.world.Registry().Obstacles() {
		y := toRow(o.Pos.Y)
		if y < hudRows || y >= h {
			continue
		}
		x := g.laneColumn(o.Pos.X, w)
		half := g.cellRadius(o.Radius, w)
		for dx := -half; dx <= half; dx++ {
			dst.SetColored(x+dx, y, ObstacleChar, core.ColorOrange)
		}
	}

	for _, c := range g.world.Registry().Citizens() {
		if c.Resolved {
			continue
		}
		y := toRow(c.Pos.Y)
		if y < hudRows || y >= h {
			continue
		}
		dst.SetColored(g.laneColumn(c.Pos.X, w), y, CitizenChar, core.ColorBrightCyan)
	}

	g.drawHero(dst, hero, row)
	g.drawHUD(dst)

	switch s := g.world.Session(); s.Status() {
	case rescue.StatusPaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case rescue.StatusEnded:
		if s.Outcome() == rescue.OutcomeWin {
			drawCenteredMessage(dst, "CITY SAVED", fmt.Sprintf("Score: %d  |  Press R for a new round", s.Score()))
		} else {
			drawCenteredMessage(dst, "COLLISION", fmt.Sprintf("Score: %d  |  Press R to retry", s.Score()))
		}
	}
}

// laneColumn maps a lateral world position to a screen column.
func (g *Game) laneColumn(x float64, w int) int {
	left, right := roadColumns(w)
	limit := g.cfg.Motion.LaneLimit
	t := (x + limit) / (2 * limit)
	return left + int(math.Round(t*float64(right-left)))
}

// cellRadius converts a world radius to half a width in cells.
func (g *Game) cellRadius(r float64, w int) int {
	left, right := roadColumns(w)
	return int(r / (2 * g.cfg.Motion.LaneLimit) * float64(right-left))
}

func (g *Game) drawHero(dst *core.Screen, hero rescue.Hero, row int) {
	x := g.laneColumn(hero.Pos.X, dst.Width())
	if hero.Form == rescue.FormAlternate {
		// Vehicle: wide and low
		for dx := -2; dx <= 2; dx++ {
			dst.SetColored(x+dx, row, VehicleChar, core.ColorBrightRed)
		}
		dst.SetColored(x, row-1, HeadChar, core.ColorBrightBlue)
		return
	}
	// Robot: tall and narrow
	dst.SetColored(x, row-1, HeadChar, core.ColorBrightBlue)
	for dx := -1; dx <= 1; dx++ {
		dst.SetColored(x+dx, row, RobotChar, core.ColorBrightRed)
	}
	dst.SetColored(x-1, row+1, '╱', core.ColorBlue)
	dst.SetColored(x+1, row+1, '╲', core.ColorBlue)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.world.Session()
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", s.Score()), core.ColorBrightWhite)

	right := fmt.Sprintf(" Saved: %d/%d  Form: %s ", s.Rescues(), s.Target(), g.world.Hero().Form)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightGreen)

	dst.DrawTextCentered(1, g.message)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}

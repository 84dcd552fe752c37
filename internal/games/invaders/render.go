package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	sim "github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Visual characters for rendering
const (
	AlienChar      = '▓'
	PlayerChar     = '▄'
	ProjectileChar = '│'
)

// alienColors tints formation rows from the top of the field down.
var alienColors = []core.Color{
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorBrightCyan,
}

// viewport maps y-up world coordinates onto a block of screen cells.
type viewport struct {
	area  core.Rect
	world sim.Vector2
}

func (v viewport) scale() (sx, sy float64) {
	return float64(v.area.W) / v.world.X, float64(v.area.H) / v.world.Y
}

// box returns the cells covered by a world box, at least one cell in each
// direction, clipped to the viewport.
func (v viewport) box(o sim.GameObject) core.Rect {
	sx, sy := v.scale()
	hi := o.Max()

	x0 := int(math.Floor(o.Position.X * sx))
	x1 := int(math.Ceil(hi.X * sx))
	top := int(math.Floor((v.world.Y - hi.Y) * sy))
	bottom := int(math.Ceil((v.world.Y - o.Position.Y) * sy))

	r := core.NewRect(v.area.X+x0, v.area.Y+top, core.Max(x1-x0, 1), core.Max(bottom-top, 1))
	return r.Clip(v.area)
}

// point returns the cell containing a world point.
func (v viewport) point(p sim.Vector2) (x, y int) {
	sx, sy := v.scale()
	x = v.area.X + int(math.Floor(p.X*sx))
	y = v.area.Y + int(math.Floor((v.world.Y-p.Y)*sy))
	return x, y
}

// field returns the bordered playfield below the HUD row.
func field(dst *core.Screen) core.Rect {
	return core.NewRect(0, 1, dst.Width(), dst.Height()-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start game")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}

	g.renderHUD(dst)

	frame := field(dst)
	dst.DrawBox(frame, core.ColorGray)

	view := viewport{
		area:  core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		world: sim.Vec(g.cfg.Playfield.Width, g.cfg.Playfield.Height),
	}
	g.renderAliens(dst, view)
	g.renderProjectiles(dst, view)
	g.renderPlayer(dst, view, frame)

	g.renderOverlay(dst)
}

// renderHUD draws score, wave and ammo on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)

	var middle string
	if g.mode == ModeEndless {
		middle = fmt.Sprintf("Wave: %d", g.Wave())
	} else {
		aliens, _ := g.table.Objects(g.handle, sim.KindAlien)
		middle = fmt.Sprintf("Aliens: %d", len(aliens))
	}
	dst.DrawTextCentered(0, middle)

	shots, _ := g.table.Objects(g.handle, sim.KindProjectile)
	ammo := fmt.Sprintf("Shots: %d/%d", len(shots), g.cfg.Projectile.MaxInFlight)
	dst.DrawText(dst.Width()-len(ammo)-1, 0, ammo)
}

func (g *Game) renderAliens(dst *core.Screen, view viewport) {
	aliens, _ := g.table.Objects(g.handle, sim.KindAlien)
	for _, a := range aliens {
		r := view.box(a)
		if r.Empty() {
			continue
		}
		color := alienColors[(r.Y-view.area.Y)%len(alienColors)]
		dst.DrawRect(r, AlienChar, color)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, view viewport) {
	shots, _ := g.table.Objects(g.handle, sim.KindProjectile)
	for _, p := range shots {
		x, y := view.point(p.Center())
		if !view.area.Intersects(core.NewRect(x, y, 1, 1)) {
			continue
		}
		dst.SetColored(x, y, ProjectileChar, core.ColorBrightYellow)
	}
}

// renderPlayer draws the ship with its name centred underneath.
func (g *Game) renderPlayer(dst *core.Screen, view viewport, frame core.Rect) {
	p, err := g.table.Player(g.handle)
	if err != nil {
		return
	}
	r := view.box(p)
	color := core.ColorBrightGreen
	if g.status == sim.StatusLost {
		color = core.ColorRed
	}
	dst.DrawRect(r, PlayerChar, color)

	name, _ := g.table.PlayerName(g.handle)
	if name == "" {
		return
	}
	label := core.TruncateText(name, frame.W-2)
	width := core.TextWidth(label)
	x := r.X + (r.W-width)/2
	x = core.Clamp(x, frame.X+1, frame.Right()-1-width)
	y := core.Min(r.Bottom(), frame.Bottom()-1)
	dst.DrawTextColored(x, y, label, core.ColorWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	case g.status == sim.StatusLost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	case g.status == sim.StatusWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "EARTH IS SAFE!", subtitle, core.ColorBrightGreen)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW, subtitleW := core.TextWidth(title), core.TextWidth(subtitle)
	boxW := core.Min(core.Max(titleW, subtitleW)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

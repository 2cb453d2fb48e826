package road

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/roadrush/internal/core"
)

// Visual characters for rendering
const (
	CarChar      = '█'
	ObstacleChar = '▓'
	FuelChar     = '▒'
	PowerUpChar  = '◆'
	BulletChar   = '|'
	LaneChar     = '¦'
	BarFull      = '█'
	BarEmpty     = '░'
)

const (
	lanes       = 3
	dashesPerPF = 6
	hpBarWidth  = 10
	pwrBarWidth = 6
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	v := viewport{
		upc:    g.cfg.Playfield.UnitsPerColumn,
		upr:    g.cfg.Playfield.UnitsPerRow,
		height: snap.Height,
		rows:   dst.Height(),
	}

	g.drawLanes(dst, v, snap)
	for _, r := range snap.Fuel {
		v.fill(dst, r, FuelChar, core.ColorGreen)
	}
	for _, r := range snap.PowerUps {
		v.fill(dst, r, PowerUpChar, core.ColorBrightCyan)
	}
	for _, r := range snap.Obstacles {
		v.fill(dst, r, ObstacleChar, core.ColorRed)
	}
	for _, r := range snap.Bullets {
		v.fill(dst, r, BulletChar, core.ColorBrightYellow)
	}

	carColor := core.ColorYellow
	if snap.Invincible {
		carColor = core.ColorBrightCyan
	}
	v.fill(dst, snap.Player, CarChar, carColor)

	g.drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseGameOver:
		drawPanel(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"",
			"R restart  L leaderboard  B menu",
		)
	case g.paused:
		drawPanel(dst, core.ColorWhite, "PAUSED", "", "P resume  B menu")
	}
}

// viewport maps world units (y up) to screen cells below the HUD.
type viewport struct {
	upc, upr float64
	height   float64
	rows     int
}

func (v viewport) cols(x, w float64) (int, int) {
	return int(math.Floor(x / v.upc)), int(math.Ceil((x+w)/v.upc)) - 1
}

func (v viewport) rowSpan(y, h float64) (int, int) {
	top := hudRows + int(math.Floor((v.height-(y+h))/v.upr))
	bottom := hudRows + int(math.Ceil((v.height-y)/v.upr)) - 1
	return max(top, hudRows), min(bottom, v.rows-1)
}

func (v viewport) fill(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	c0, c1 := v.cols(r.X, r.W)
	r0, r1 := v.rowSpan(r.Y, r.H)
	if c1 < c0 || r1 < r0 {
		return
	}
	dst.DrawRect(core.NewRect(c0, r0, c1-c0+1, r1-r0+1), ch, c)
}

// drawLanes draws dashed lane markers that scroll with the background bands.
func (g *Game) drawLanes(dst *core.Screen, v viewport, snap Snapshot) {
	period := snap.Height / dashesPerPF
	if period <= 0 {
		return
	}
	for lane := 1; lane < lanes; lane++ {
		x, _ := v.cols(snap.Width*float64(lane)/lanes, 0)
		for _, by := range snap.BandY {
			for k := 0; k < dashesPerPF; k++ {
				r0, r1 := v.rowSpan(by+float64(k)*period, period/2)
				if r1 >= r0 {
					dst.DrawVLine(x, r0, r1-r0+1, LaneChar, core.ColorGray)
				}
			}
		}
	}
}

// drawHUD renders score, speed, health and power bars on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += utf8.RuneCountInString(text)
	}

	put(fmt.Sprintf("Score: %d  ", snap.Score), core.ColorWhite)
	put(fmt.Sprintf("Speed x%.2f  ", snap.DisplaySpeed), core.ColorWhite)

	ratio := 0.0
	if snap.MaxHealth > 0 {
		ratio = snap.Health / snap.MaxHealth
	}
	put("HP ", core.ColorWhite)
	put(bar(ratio, hpBarWidth), healthColor(ratio))

	if snap.Invincible && snap.InvincibleDuration > 0 {
		put("  PWR ", core.ColorWhite)
		put(bar(snap.InvincibleRemaining/snap.InvincibleDuration, pwrBarWidth), core.ColorBrightCyan)
	}

	right := snap.Difficulty
	if g.showFPS {
		right = fmt.Sprintf("FPS: %d  %s", g.fps.value, right)
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorGray)
}

// bar renders ratio in [0,1] as a fixed-width gauge.
func bar(ratio float64, width int) string {
	filled := int(math.Round(core.ClampF(ratio, 0, 1) * float64(width)))
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

// healthColor is green above 60%, yellow above 30%, red otherwise.
func healthColor(ratio float64) core.Color {
	switch {
	case ratio > 0.6:
		return core.ColorGreen
	case ratio > 0.3:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// drawPanel draws a boxed message in the centre of the screen.
func drawPanel(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	center := func(y int, text string, c core.Color) {
		dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(text))/2, y, text, c)
	}
	center(box.Y+1, title, titleColor)
	for i, l := range lines {
		center(box.Y+2+i, l, core.ColorWhite)
	}
}

package terminal

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"gridshooter/engine"
)

var (
	ceilingStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	floorStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(128, 128, 128))
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	weaponStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	flashStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hitStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	mapStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	selfStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
)

// shade picks a denser block for closer walls.
func shade(dist float64) rune {
	switch {
	case dist < 2:
		return '█'
	case dist < 4:
		return '▓'
	case dist < 8:
		return '▒'
	}
	return '░'
}

// viewport maps virtual coordinates onto terminal cells.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func (d *Driver) viewport() viewport {
	cols, rows := d.screen.Size()
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / float64(d.opts.Width),
		sy:   float64(rows) / float64(d.opts.Height),
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return int(y * v.sy) }

func (d *Driver) set(v viewport, x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= v.cols || y >= v.rows {
		return
	}
	d.screen.SetContent(x, y, r, nil, style)
}

func (d *Driver) text(v viewport, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		d.set(v, x+i, y, r, style)
	}
}

func (d *Driver) Render(commands []engine.DrawCommand) {
	engine.SortByDepth(commands)
	v := d.viewport()

	for _, command := range commands {
		switch c := command.(type) {
		case engine.Background:
			d.drawBackground(v)
		case engine.Column:
			d.drawColumn(v, c)
		case engine.Billboard:
			d.drawBillboard(v, c)
		case engine.WeaponOverlay:
			d.drawWeapon(v, c.Texture)
		case engine.PainFlash:
			d.drawPain(v)
		case engine.LifeCounter:
			d.text(v, 0, 0, "HP "+strconv.Itoa(max(c.Life, 0)), hudStyle)
		case engine.Crosshair:
			style := hudStyle
			if c.Hit {
				style = hitStyle
			}
			d.set(v, v.cols/2, v.rows/2, '+', style)
		case engine.Minimap:
			d.drawMinimap(v, c)
		case engine.GameOver:
			msg := "GAME OVER"
			d.text(v, (v.cols-len(msg))/2, v.rows/2-1, msg, hitStyle)
		}
	}

	d.screen.Show()
}

func (d *Driver) drawBackground(v viewport) {
	for y := 0; y < v.rows; y++ {
		style := ceilingStyle
		if y >= v.rows/2 {
			style = floorStyle
		}
		for x := 0; x < v.cols; x++ {
			d.set(v, x, y, ' ', style)
		}
	}
}

func (d *Driver) drawColumn(v viewport, c engine.Column) {
	x := v.col(float64(c.Index) * c.Width)

	half := float64(d.opts.Height) / 2
	top, bottom := v.row(half-c.Height/2), v.row(half+c.Height/2)

	style := tcell.StyleDefault.Foreground(d.colors[c.Texture])
	r := shade(c.Dist)
	for y := max(top, 0); y <= bottom && y < v.rows; y++ {
		d.set(v, x, y, r, style)
	}
}

func (d *Driver) drawBillboard(v viewport, c engine.Billboard) {
	style := tcell.StyleDefault.Foreground(d.colors[c.Texture])
	r := shade(c.Dist)

	left, right := v.col(c.X), v.col(c.X+c.Width)
	top, bottom := v.row(c.Y), v.row(c.Y+c.Height)
	for y := max(top, 0); y <= bottom && y < v.rows; y++ {
		for x := max(left, 0); x <= right && x < v.cols; x++ {
			d.set(v, x, y, r, style)
		}
	}
}

func (d *Driver) drawWeapon(v viewport, id engine.TextureID) {
	x, y := v.cols/2, v.rows-1
	d.set(v, x-1, y, '█', weaponStyle)
	d.set(v, x, y, '█', weaponStyle)
	d.set(v, x, y-1, '█', weaponStyle)
	if id == engine.TextureWeaponShoot {
		d.set(v, x, y-2, '*', flashStyle)
	}
}

// drawPain tints the border red, keeping whatever was drawn there.
func (d *Driver) drawPain(v viewport) {
	tint := func(x, y int) {
		r, _, style, _ := d.screen.GetContent(x, y)
		d.set(v, x, y, r, style.Background(tcell.ColorDarkRed))
	}
	for x := 0; x < v.cols; x++ {
		tint(x, 0)
		tint(x, v.rows-1)
	}
	for y := 0; y < v.rows; y++ {
		tint(0, y)
		tint(v.cols-1, y)
	}
}

// heading picks an arrow for the player marker, one per quarter turn.
func heading(angle float64) rune {
	arrows := [4]rune{'>', 'v', '<', '^'}
	quarter := int(math.Round(angle/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return arrows[quarter]
}

// drawMinimap puts one cell per grid cell in the top right corner. It is
// skipped when the terminal is too narrow to hold it.
func (d *Driver) drawMinimap(v viewport, m engine.Minimap) {
	if m.Width+1 > v.cols || m.Height > v.rows || len(m.Walls) < m.Width*m.Height {
		return
	}
	left := v.cols - m.Width

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r := '.'
			if m.Walls[y*m.Width+x] {
				r = '#'
			}
			d.set(v, left+x, y, r, mapStyle)
		}
	}
	for _, e := range m.Enemies {
		r := 'E'
		if !e.Alive {
			r = 'x'
		}
		d.set(v, left+int(e.X), int(e.Y), r, hitStyle.Background(tcell.ColorBlack))
	}
	d.set(v, left+int(m.Player.X), int(m.Player.Y), heading(m.Angle), selfStyle)
}

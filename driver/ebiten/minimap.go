package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridshooter/engine"
)

const (
	minimapScale  = 8
	minimapMargin = 10
)

var (
	minimapWall  = color.RGBA{50, 50, 50, 255}
	minimapFloor = color.RGBA{140, 140, 140, 255}
	minimapAlive = color.RGBA{255, 0, 0, 255}
	minimapDead  = color.RGBA{90, 0, 0, 255}
	minimapSelf  = color.RGBA{0, 255, 255, 255}
)

// minimapOrigin is the top left corner of a map w cells wide, anchored to the
// top right of the screen.
func minimapOrigin(screenWidth, w int) (float32, float32) {
	return float32(screenWidth - w*minimapScale - minimapMargin), minimapMargin
}

// arrow returns the three corners of the player marker pointing along angle.
func arrow(x, y float32, angle float64, size float32) [3][2]float32 {
	var pts [3][2]float32
	for i, a := range [3]float64{angle, angle + 2.5, angle - 2.5} {
		pts[i] = [2]float32{x + size*float32(math.Cos(a)), y + size*float32(math.Sin(a))}
	}
	return pts
}

// staticMinimap renders the walls once; they never change within a level.
func (d *Driver) staticMinimap(m engine.Minimap) *ebiten.Image {
	if d.minimap != nil {
		b := d.minimap.Bounds()
		if b.Dx() == m.Width*minimapScale && b.Dy() == m.Height*minimapScale {
			return d.minimap
		}
	}

	img := ebiten.NewImage(m.Width*minimapScale, m.Height*minimapScale)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			clr := minimapFloor
			if m.Walls[y*m.Width+x] {
				clr = minimapWall
			}
			vector.DrawFilledRect(img, float32(x*minimapScale), float32(y*minimapScale), minimapScale, minimapScale, clr, false)
		}
	}
	d.minimap = img
	return img
}

func (d *Driver) drawMinimap(screen *ebiten.Image, m engine.Minimap) {
	if m.Width == 0 || len(m.Walls) < m.Width*m.Height {
		return
	}
	ox, oy := minimapOrigin(d.opts.Width, m.Width)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(d.staticMinimap(m), op)

	for _, e := range m.Enemies {
		clr := minimapAlive
		if !e.Alive {
			clr = minimapDead
		}
		ex, ey := ox+float32(e.X*minimapScale), oy+float32(e.Y*minimapScale)
		vector.DrawFilledCircle(screen, ex, ey, minimapScale/2, clr, false)
	}

	px, py := ox+float32(m.Player.X*minimapScale), oy+float32(m.Player.Y*minimapScale)
	pts := arrow(px, py, m.Angle, minimapScale)
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{DstX: p[0], DstY: p[1], ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, d.playerMarker(), nil)
}

func (d *Driver) playerMarker() *ebiten.Image {
	if d.marker == nil {
		d.marker = ebiten.NewImage(1, 1)
		d.marker.Fill(minimapSelf)
	}
	return d.marker
}

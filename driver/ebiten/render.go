package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridshooter/driver/asset"
	"gridshooter/engine"
)

var (
	ceilingColor = color.RGBA{0, 0, 0, 255}
	floorColor   = color.RGBA{128, 128, 128, 255}

	crosshairColor = color.RGBA{255, 255, 255, 200}
	hitColor       = color.RGBA{255, 0, 0, 255}
)

type textureSet struct {
	images map[engine.TextureID]*ebiten.Image
	source map[engine.TextureID]image.Image
}

func newTextureSet(images map[engine.TextureID]image.Image) *textureSet {
	t := &textureSet{
		images: make(map[engine.TextureID]*ebiten.Image, len(images)),
		source: images,
	}
	for id, img := range images {
		t.images[id] = ebiten.NewImageFromImage(img)
	}
	return t
}

func (t *textureSet) refs(ids ...engine.TextureID) ([]engine.TextureRef, error) {
	return asset.Refs(t.source, ids...)
}

func (d *Driver) draw(screen *ebiten.Image, commands []engine.DrawCommand) {
	engine.SortByDepth(commands)

	for _, command := range commands {
		switch c := command.(type) {
		case engine.Background:
			d.drawBackground(screen)
		case engine.Column:
			d.drawColumn(screen, c)
		case engine.Billboard:
			d.drawBillboard(screen, c)
		case engine.WeaponOverlay:
			d.drawWeapon(screen, c.Texture)
		case engine.PainFlash:
			d.drawFullscreen(screen, engine.TexturePainScreen)
		case engine.LifeCounter:
			d.drawLife(screen, c.Life)
		case engine.Crosshair:
			d.drawCrosshair(screen, c.Hit)
		case engine.Minimap:
			d.drawMinimap(screen, c)
		case engine.GameOver:
			d.drawFullscreen(screen, engine.TextureGameOver)
		}
	}
}

func (d *Driver) drawBackground(screen *ebiten.Image) {
	w, h := float32(d.opts.Width), float32(d.opts.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, ceilingColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)
}

// drawColumn stretches a one ray wide strip of the wall texture.
func (d *Driver) drawColumn(screen *ebiten.Image, c engine.Column) {
	tex, ok := d.textures.images[c.Texture]
	if !ok || c.Height <= 0 || c.Width <= 0 {
		return
	}

	b := tex.Bounds()
	w := min(max(int(c.Width), 1), b.Dx())
	srcX := b.Min.X + int(c.Offset*float64(b.Dx()-w))
	strip := tex.SubImage(image.Rect(srcX, b.Min.Y, srcX+w, b.Max.Y)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(c.Width/float64(w), c.Height/float64(b.Dy()))
	op.GeoM.Translate(float64(c.Index)*c.Width, float64(d.opts.Height)/2-c.Height/2)
	screen.DrawImage(strip, op)
}

func (d *Driver) drawBillboard(screen *ebiten.Image, c engine.Billboard) {
	tex, ok := d.textures.images[c.Texture]
	if !ok || c.Width <= 0 || c.Height <= 0 {
		return
	}

	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(c.Width/float64(b.Dx()), c.Height/float64(b.Dy()))
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(tex, op)
}

// drawWeapon draws the weapon at half size, bottom centre.
func (d *Driver) drawWeapon(screen *ebiten.Image, id engine.TextureID) {
	tex, ok := d.textures.images[id]
	if !ok {
		return
	}

	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(0.5, 0.5)
	op.GeoM.Translate(
		float64(d.opts.Width)/2-float64(b.Dx())/4,
		float64(d.opts.Height)-float64(b.Dy())/2,
	)
	screen.DrawImage(tex, op)
}

func (d *Driver) drawFullscreen(screen *ebiten.Image, id engine.TextureID) {
	tex, ok := d.textures.images[id]
	if !ok {
		return
	}

	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(d.opts.Width)/float64(b.Dx()), float64(d.opts.Height)/float64(b.Dy()))
	screen.DrawImage(tex, op)
}

// drawLife writes the digits left to right from the top left corner.
func (d *Driver) drawLife(screen *ebiten.Image, life int) {
	x := 0.0
	for _, id := range engine.Digits(life) {
		tex, ok := d.textures.images[id]
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(tex, op)
		x += float64(tex.Bounds().Dx())
	}
}

func (d *Driver) drawCrosshair(screen *ebiten.Image, hit bool) {
	cx, cy := float32(d.opts.Width)/2, float32(d.opts.Height)/2
	clr := crosshairColor
	if hit {
		clr = hitColor
	}

	vector.StrokeLine(screen, cx-10, cy, cx+10, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-10, cx, cy+10, 2, clr, false)
}

// Package ebiten runs the game in a window using Ebitengine.
package ebiten

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gridshooter/driver/asset"
	"gridshooter/engine"
)

var _ engine.Driver = (*Driver)(nil)

type Options struct {
	Title    string
	Width    int
	Height   int
	FPS      int
	Textures map[engine.TextureID]string
	// Sounds in shoot, enemy pain, enemy attack, player pain order.
	Sounds [4]string
}

// Driver implements engine.Driver on top of an ebiten.Game.
type Driver struct {
	opts Options
	log  *zap.Logger

	textures *textureSet
	sounds   *soundBank

	// minimap caches the wall layer; marker is the player arrow fill.
	minimap *ebiten.Image
	marker  *ebiten.Image

	inputs []engine.Input
	mouse  mouse

	commands []engine.DrawCommand
	last     time.Time

	ctx  context.Context
	step func() bool
}

func New(opts Options, logger *zap.Logger) (*Driver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	images, err := asset.Images(opts.Textures)
	if err != nil {
		return nil, errors.Wrap(err, "load textures")
	}

	sounds, err := newSoundBank(opts.Sounds, logger)
	if err != nil {
		return nil, errors.Wrap(err, "load sounds")
	}

	d := &Driver{
		opts:     opts,
		log:      logger,
		textures: newTextureSet(images),
		sounds:   sounds,
		mouse:    newMouse(opts.Width),
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.FPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	logger.Info("ebiten driver ready",
		zap.Int("textures", len(images)),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
	)
	return d, nil
}

func (d *Driver) Poll() (engine.Input, bool) {
	if len(d.inputs) == 0 {
		return engine.Input{}, false
	}
	in := d.inputs[0]
	d.inputs = d.inputs[1:]
	return in, true
}

// ElapsedTime returns the milliseconds since the previous call. Ebiten paces
// the ticks itself, so nothing sleeps here.
func (d *Driver) ElapsedTime() float64 {
	now := time.Now()
	if d.last.IsZero() {
		d.last = now
		return 1000 / float64(d.opts.FPS)
	}
	elapsed := now.Sub(d.last)
	d.last = now
	return float64(elapsed) / float64(time.Millisecond)
}

func (d *Driver) Render(commands []engine.DrawCommand) {
	d.commands = commands
}

func (d *Driver) LoadTextureRefs(ids ...engine.TextureID) ([]engine.TextureRef, error) {
	return d.textures.refs(ids...)
}

func (d *Driver) CenterMouse(x, y int) {
	d.mouse.center(x)
}

func (d *Driver) Loop(ctx context.Context, step func() bool) error {
	d.ctx, d.step = ctx, step

	err := ebiten.RunGame(d)
	if errors.Is(err, ebiten.Termination) {
		return ctx.Err()
	}
	return err
}

// Update is called by ebiten every tick.
func (d *Driver) Update() error {
	if d.ctx != nil && d.ctx.Err() != nil {
		return ebiten.Termination
	}

	d.inputs = d.pollInputs(d.inputs[:0])
	if d.step != nil && d.step() {
		return ebiten.Termination
	}
	return nil
}

// Draw is called by ebiten every frame.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.draw(screen, d.commands)
}

func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.opts.Width, d.opts.Height
}

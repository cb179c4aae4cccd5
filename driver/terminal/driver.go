// Package terminal runs the game inside a terminal using tcell. Walls and
// sprites are shaded blocks tinted with the average colour of their texture.
package terminal

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gridshooter/driver/asset"
	"gridshooter/engine"
)

var _ engine.Driver = (*Driver)(nil)

// turnStep is the mouse movement reported for one left or right arrow press.
const turnStep = 20

type Options struct {
	// Width and Height are the virtual resolution the game renders at.
	Width  int
	Height int
	FPS    int
}

type Driver struct {
	screen tcell.Screen
	opts   Options
	log    *zap.Logger

	images map[engine.TextureID]image.Image
	colors map[engine.TextureID]tcell.Color

	inputs []engine.Input
	events chan tcell.Event

	mouseX int
	last   time.Time
}

// New takes an initialised screen; the caller owns Fini.
func New(screen tcell.Screen, images map[engine.TextureID]image.Image, opts Options, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Driver{
		screen: screen,
		opts:   opts,
		log:    logger,
		images: images,
		colors: make(map[engine.TextureID]tcell.Color, len(images)),
		events: make(chan tcell.Event, 64),
		mouseX: -1,
	}
	for id, img := range images {
		d.colors[id] = toColor(asset.AverageColor(img))
	}

	screen.EnableMouse()
	screen.HideCursor()
	return d
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (d *Driver) Poll() (engine.Input, bool) {
	if len(d.inputs) == 0 {
		return engine.Input{}, false
	}
	in := d.inputs[0]
	d.inputs = d.inputs[1:]
	return in, true
}

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

func (d *Driver) LoadTextureRefs(ids ...engine.TextureID) ([]engine.TextureRef, error) {
	return asset.Refs(d.images, ids...)
}

// CenterMouse forgets the last pointer position so the next motion starts a
// fresh delta.
func (d *Driver) CenterMouse(x, y int) {
	d.mouseX = -1
}

// Terminals only have a bell.
func (d *Driver) PlayShoot()       {}
func (d *Driver) PlayEnemyPain()   {}
func (d *Driver) PlayEnemyAttack() {}
func (d *Driver) PlayPlayerPain()  { _ = d.screen.Beep() }

// Loop pumps terminal events on a separate goroutine and steps the game on a
// fixed ticker.
func (d *Driver) Loop(ctx context.Context, step func() bool) error {
	done := make(chan struct{})
	go d.pump(done)
	defer close(done)

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.FPS))
	defer ticker.Stop()

	for {
		d.drain()
		if step() {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}
}

// pump forwards screen events until done closes. Each Loop owns its own done.
func (d *Driver) pump(done <-chan struct{}) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-done:
			return
		}
	}
}

// drain converts every queued terminal event without blocking.
func (d *Driver) drain() {
	for {
		select {
		case ev := <-d.events:
			d.inputs = append(d.inputs, d.translate(ev)...)
		default:
			return
		}
	}
}

func (d *Driver) translate(ev tcell.Event) []engine.Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.translateKey(ev)
	case *tcell.EventMouse:
		return d.translateMouse(ev)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return nil
}

func (d *Driver) translateKey(ev *tcell.EventKey) []engine.Input {
	center := d.opts.Width / 2

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []engine.Input{{Kind: engine.Quit}}
	case tcell.KeyUp:
		return []engine.Input{{Kind: engine.MoveForward}}
	case tcell.KeyDown:
		return []engine.Input{{Kind: engine.MoveBack}}
	case tcell.KeyLeft:
		return []engine.Input{{Kind: engine.MouseDelta, X: center, XRel: -turnStep}}
	case tcell.KeyRight:
		return []engine.Input{{Kind: engine.MouseDelta, X: center, XRel: turnStep}}
	case tcell.KeyEnter:
		return []engine.Input{{Kind: engine.Confirm}}
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'w', 'W':
		return []engine.Input{{Kind: engine.MoveForward}}
	case 's', 'S':
		return []engine.Input{{Kind: engine.MoveBack}}
	case 'a', 'A':
		return []engine.Input{{Kind: engine.StrafeLeft}}
	case 'd', 'D':
		return []engine.Input{{Kind: engine.StrafeRight}}
	case ' ':
		return []engine.Input{{Kind: engine.Confirm}}
	case 'q', 'Q':
		return []engine.Input{{Kind: engine.Quit}}
	}
	return nil
}

// translateMouse scales terminal columns up to the virtual resolution.
func (d *Driver) translateMouse(ev *tcell.EventMouse) []engine.Input {
	var inputs []engine.Input
	if ev.Buttons()&tcell.Button1 != 0 {
		inputs = append(inputs, engine.Input{Kind: engine.Confirm})
	}

	cols, _ := d.screen.Size()
	if cols == 0 {
		return inputs
	}
	col, _ := ev.Position()
	x := col * d.opts.Width / cols

	if d.mouseX >= 0 && x != d.mouseX {
		inputs = append(inputs, engine.Input{Kind: engine.MouseDelta, X: x, XRel: x - d.mouseX})
	}
	d.mouseX = x
	return inputs
}

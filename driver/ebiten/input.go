package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridshooter/engine"
)

var movementKeys = []struct {
	kind engine.InputKind
	keys []ebiten.Key
}{
	{engine.MoveForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	{engine.MoveBack, []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	{engine.StrafeLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
	{engine.StrafeRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
}

// mouse turns the captured cursor into a virtual x coordinate that can be
// recentred, since the real cursor cannot be warped.
type mouse struct {
	prevX   int
	originX int
	centerX int
}

func newMouse(width int) mouse {
	return mouse{
		prevX:   math.MinInt32,
		centerX: width / 2,
	}
}

// update returns the virtual x and the movement since the previous call.
func (m *mouse) update(cursorX int) (x, rel int, moved bool) {
	if m.prevX == math.MinInt32 {
		m.prevX = cursorX
		m.originX = cursorX
		return 0, 0, false
	}

	rel = cursorX - m.prevX
	m.prevX = cursorX
	if rel == 0 {
		return 0, 0, false
	}
	return m.centerX + cursorX - m.originX, rel, true
}

func (m *mouse) center(x int) {
	m.centerX = x
	m.originX = m.prevX
}

func (d *Driver) pollInputs(inputs []engine.Input) []engine.Input {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return append(inputs, engine.Input{Kind: engine.Quit})
	}

	for _, mk := range movementKeys {
		for _, key := range mk.keys {
			if ebiten.IsKeyPressed(key) {
				inputs = append(inputs, engine.Input{Kind: mk.kind})
				break
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		inputs = append(inputs, engine.Input{Kind: engine.Confirm})
	}

	cursorX, _ := ebiten.CursorPosition()
	if x, rel, moved := d.mouse.update(cursorX); moved {
		inputs = append(inputs, engine.Input{Kind: engine.MouseDelta, X: x, XRel: rel})
	}

	return inputs
}

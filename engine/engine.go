package engine

import "context"

// InputKind enumerates the controls a driver can report.
type InputKind int

const (
	MoveForward InputKind = iota
	MoveBack
	StrafeLeft
	StrafeRight
	Confirm
	Quit
	MouseDelta
)

func (k InputKind) String() string {
	switch k {
	case MoveForward:
		return "move_forward"
	case MoveBack:
		return "move_back"
	case StrafeLeft:
		return "strafe_left"
	case StrafeRight:
		return "strafe_right"
	case Confirm:
		return "confirm"
	case Quit:
		return "quit"
	case MouseDelta:
		return "mouse_delta"
	}
	return "unknown"
}

// Input is one polled control. X and XRel are only set for MouseDelta.
type Input struct {
	Kind InputKind
	X    int
	XRel int
}

// Audio holds the fire and forget sound cues.
type Audio interface {
	PlayShoot()
	PlayEnemyPain()
	PlayEnemyAttack()
	PlayPlayerPain()
}

// Driver is everything the game needs from the platform: input, timing,
// texture metrics, drawing and sound.
type Driver interface {
	Audio

	// Poll returns at most one pending input without blocking.
	Poll() (Input, bool)

	// ElapsedTime returns milliseconds since the previous call.
	ElapsedTime() float64

	// Render draws one frame. Commands may arrive in any order.
	Render(commands []DrawCommand)

	LoadTextureRefs(ids ...TextureID) ([]TextureRef, error)

	CenterMouse(x, y int)

	// Loop calls step once per frame until it returns true, the context is
	// cancelled or the platform shuts down.
	Loop(ctx context.Context, step func() bool) error
}

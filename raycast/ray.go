package raycast

import (
	"math"

	"gridshooter/world"
)

const (
	// MaxDepth bounds the number of grid lines a branch may cross.
	MaxDepth = 20

	nudge = 1e-6
)

// Hit is the result of a wall trace. Kind is world.None when the trace ran
// out of depth without striking a wall.
type Hit struct {
	Depth  float64
	Offset float64
	Kind   world.CellKind
}

func (h Hit) Ok() bool {
	return h.Kind != world.None
}

// Branch is one half of the DDA: the trace along horizontal or vertical grid
// line crossings. At is the crossing coordinate along the other axis.
type Branch struct {
	Depth float64
	At    float64
	Kind  world.CellKind
}

type stepper struct {
	x, y, dx, dy float64
	depth, delta float64
}

// horizontal sets up the walk over y = const lines.
func horizontal(origin world.Pos, sin, cos float64) (stepper, bool) {
	if sin == 0 {
		return stepper{}, false
	}
	cell := origin.Cell()

	y, dy := float64(cell.Y+1), 1.0
	if math.Signbit(sin) {
		y, dy = float64(cell.Y)-nudge, -1
	}

	depth := (y - origin.Y) / sin
	delta := dy / sin
	return stepper{
		x: origin.X + depth*cos, y: y,
		dx: delta * cos, dy: dy,
		depth: depth, delta: delta,
	}, true
}

// vertical sets up the walk over x = const lines.
func vertical(origin world.Pos, sin, cos float64) (stepper, bool) {
	if cos == 0 {
		return stepper{}, false
	}
	cell := origin.Cell()

	x, dx := float64(cell.X+1), 1.0
	if math.Signbit(cos) {
		x, dx = float64(cell.X)-nudge, -1
	}

	depth := (x - origin.X) / cos
	delta := dx / cos
	return stepper{
		x: x, y: origin.Y + depth*sin,
		dx: dx, dy: delta * sin,
		depth: depth, delta: delta,
	}, true
}

func (s *stepper) cell() world.Cell {
	return world.NewPos(s.x, s.y).Cell()
}

func (s *stepper) advance() {
	s.x += s.dx
	s.y += s.dy
	s.depth += s.delta
}

func trace(grid *world.Grid, s stepper, ok bool) (stepper, world.CellKind) {
	if !ok {
		return stepper{depth: math.Inf(1)}, world.None
	}
	for i := 0; i < MaxDepth; i++ {
		if kind := grid.At(s.cell()); kind.IsWall() {
			return s, kind
		}
		s.advance()
	}
	return s, world.None
}

// Horizontal traces only the horizontal grid line crossings.
func Horizontal(grid *world.Grid, origin world.Pos, angle float64) Branch {
	sin, cos := math.Sincos(angle)
	s, ok := horizontal(origin, sin, cos)
	s, kind := trace(grid, s, ok)
	return Branch{Depth: s.depth, At: s.x, Kind: kind}
}

// Vertical traces only the vertical grid line crossings.
func Vertical(grid *world.Grid, origin world.Pos, angle float64) Branch {
	sin, cos := math.Sincos(angle)
	s, ok := vertical(origin, sin, cos)
	s, kind := trace(grid, s, ok)
	return Branch{Depth: s.depth, At: s.y, Kind: kind}
}

// Cast finds the first wall along the ray. The nearer branch wins and a tie
// goes to the vertical face. A branch that found no wall never beats one that
// did.
func Cast(grid *world.Grid, origin world.Pos, angle float64) Hit {
	sin, cos := math.Sincos(angle)
	hor := Horizontal(grid, origin, angle)
	vert := Vertical(grid, origin, angle)

	return pick(hor, vert, sin, cos)
}

func pick(hor, vert Branch, sin, cos float64) Hit {
	useVert := vert.Depth <= hor.Depth
	switch {
	case vert.Kind == world.None && hor.Kind != world.None:
		useVert = false
	case hor.Kind == world.None && vert.Kind != world.None:
		useVert = true
	}

	if useVert {
		offset := math.Mod(vert.At, 1)
		if math.Signbit(cos) {
			offset = 1 - offset
		}
		return Hit{Depth: vert.Depth, Offset: offset, Kind: vert.Kind}
	}

	offset := math.Mod(hor.At, 1)
	if !math.Signbit(sin) {
		offset = 1 - offset
	}
	return Hit{Depth: hor.Depth, Offset: offset, Kind: hor.Kind}
}

// race walks one branch and reports the depth at which it first enters
// target or a wall. Zero means the marker was never reached.
func race(grid *world.Grid, s stepper, ok bool, target world.Cell) (targetDepth, wallDepth float64) {
	if !ok {
		return 0, 0
	}
	for i := 0; i < MaxDepth; i++ {
		c := s.cell()
		if c == target {
			return s.depth, 0
		}
		if grid.IsWall(c) {
			return 0, s.depth
		}
		s.advance()
	}
	return 0, 0
}

// Visible reports whether target can be seen from origin along angle. The
// farther marker of each kind is compared: the target must be reached before
// any wall, or no wall may be struck at all. An origin inside target is
// always visible.
func Visible(grid *world.Grid, origin world.Pos, angle float64, target world.Cell) bool {
	if origin.Cell() == target {
		return true
	}

	sin, cos := math.Sincos(angle)
	hs, hok := horizontal(origin, sin, cos)
	vs, vok := vertical(origin, sin, cos)
	hTarget, hWall := race(grid, hs, hok, target)
	vTarget, vWall := race(grid, vs, vok, target)

	targetDist := math.Max(hTarget, vTarget)
	wallDist := math.Max(hWall, vWall)

	return (0 < targetDist && targetDist < wallDist) || wallDist == 0
}

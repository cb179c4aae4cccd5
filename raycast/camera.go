package raycast

import (
	"math"

	"gridshooter/engine"
	"gridshooter/world"
)

const projectionEpsilon = 1e-4

// Camera turns a pose into wall columns and maps view angles to screen x.
type Camera struct {
	width, height int
	fov           float64
	numRays       int

	halfFOV    float64
	deltaAngle float64
	scale      float64
	screenDist float64
}

// NewCamera casts one ray per two screen pixels, the same density used for
// the sprite projection math.
func NewCamera(width, height int, fov float64) *Camera {
	c := &Camera{
		width:   width,
		height:  height,
		fov:     fov,
		numRays: width / 2,
	}
	if c.numRays < 1 {
		c.numRays = 1
	}
	c.halfFOV = fov / 2
	c.deltaAngle = fov / float64(c.numRays)
	c.scale = float64(width / c.numRays)
	c.screenDist = float64(width/2) / math.Tan(c.halfFOV)
	return c
}

func (c *Camera) Width() int              { return c.width }
func (c *Camera) Height() int             { return c.height }
func (c *Camera) NumRays() int            { return c.numRays }
func (c *Camera) Scale() float64          { return c.scale }
func (c *Camera) DeltaAngle() float64     { return c.deltaAngle }
func (c *Camera) ScreenDistance() float64 { return c.screenDist }

// ProjectedHeight returns the on-screen size of something at depth. The
// epsilon keeps a zero depth finite.
func (c *Camera) ProjectedHeight(depth float64) float64 {
	return c.screenDist / (depth + projectionEpsilon)
}

// SpriteX maps an angle relative to the view direction to a screen x.
func (c *Camera) SpriteX(delta float64) float64 {
	return (float64(c.numRays/2) + delta/c.deltaAngle) * c.scale
}

// RayAngle is the angle of ray i for a camera facing angle.
func (c *Camera) RayAngle(angle float64, i int) float64 {
	return angle - c.halfFOV + projectionEpsilon + float64(i)*c.deltaAngle
}

// Project casts every column of the view. Columns whose ray hits nothing
// are left out. The sort key is the raw ray depth; the height uses the fish
// eye corrected one.
func (c *Camera) Project(grid *world.Grid, pos world.Pos, angle float64) []engine.DrawCommand {
	commands := make([]engine.DrawCommand, 0, c.numRays)

	for i := 0; i < c.numRays; i++ {
		rayAngle := c.RayAngle(angle, i)
		hit := Cast(grid, pos, rayAngle)
		if !hit.Ok() {
			continue
		}

		corrected := hit.Depth * math.Cos(angle-rayAngle)

		commands = append(commands, engine.Column{
			Dist:    hit.Depth,
			Texture: engine.TextureWall,
			Index:   i,
			Offset:  hit.Offset,
			Height:  c.ProjectedHeight(corrected),
			Width:   c.scale,
		})
	}

	return commands
}

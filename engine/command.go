package engine

import (
	"math"
	"sort"
)

// DrawCommand is one renderable item. The set of variants is closed.
type DrawCommand interface {
	// Depth orders commands; drivers draw the largest first.
	Depth() float64
	drawCommand()
}

type Background struct{}

// Column is a vertical wall slice for ray Index, Width pixels wide.
type Column struct {
	Dist    float64
	Texture TextureID
	Index   int
	Offset  float64
	Height  float64
	Width   float64
}

// Billboard is a camera facing sprite placed in screen space.
type Billboard struct {
	Dist          float64
	Texture       TextureID
	X, Y          float64
	Width, Height float64
}

type WeaponOverlay struct {
	Texture TextureID
}

type LifeCounter struct {
	Life int
}

type PainFlash struct{}

// Crosshair is drawn at screen center; Hit flags a recent confirmed hit.
type Crosshair struct {
	Hit bool
}

type GameOver struct{}

// Minimap is a top down overview drawn in a screen corner. Walls holds Width
// cells per row, row major.
type Minimap struct {
	Width, Height int
	Walls         []bool
	Player        Mark
	Angle         float64
	Enemies       []Mark
}

// Mark is a position on the minimap in grid units.
type Mark struct {
	X, Y  float64
	Alive bool
}

func (Background) Depth() float64    { return math.Inf(1) }
func (c Column) Depth() float64      { return c.Dist }
func (b Billboard) Depth() float64   { return b.Dist }
func (WeaponOverlay) Depth() float64 { return math.Inf(-1) }
func (LifeCounter) Depth() float64   { return math.Inf(-1) }
func (PainFlash) Depth() float64     { return math.Inf(-1) }
func (Crosshair) Depth() float64     { return math.Inf(-1) }
func (GameOver) Depth() float64      { return math.Inf(-1) }
func (Minimap) Depth() float64       { return math.Inf(-1) }

func (Background) drawCommand()    {}
func (Column) drawCommand()        {}
func (Billboard) drawCommand()     {}
func (WeaponOverlay) drawCommand() {}
func (LifeCounter) drawCommand()   {}
func (PainFlash) drawCommand()     {}
func (Crosshair) drawCommand()     {}
func (GameOver) drawCommand()      {}
func (Minimap) drawCommand()       {}

// SortByDepth orders commands farthest first. Overlays sharing the -Inf key
// keep their submission order.
func SortByDepth(commands []DrawCommand) {
	sort.SliceStable(commands, func(i, j int) bool {
		return commands[i].Depth() > commands[j].Depth()
	})
}

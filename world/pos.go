package world

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Pos is a continuous position in grid units.
type Pos struct {
	geom.Vector2
}

func NewPos(x, y float64) Pos {
	return Pos{geom.Vector2{X: x, Y: y}}
}

func (p Pos) Add(o Pos) Pos {
	return NewPos(p.X+o.X, p.Y+o.Y)
}

func (p Pos) Sub(o Pos) Pos {
	return NewPos(p.X-o.X, p.Y-o.Y)
}

// Len is the euclidean length of p taken as a vector.
func (p Pos) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Cell truncates p toward zero. A coordinate sitting exactly on a grid line
// belongs to the cell with the larger index.
func (p Pos) Cell() Cell {
	return Cell{X: int(p.X), Y: int(p.Y)}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Ways is the fixed neighbour ordering: cardinals first, then diagonals.
var Ways = [8]Cell{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Center returns the continuous position of the middle of the cell.
func (c Cell) Center() Pos {
	return NewPos(float64(c.X)+0.5, float64(c.Y)+0.5)
}

// Near reports whether o is c itself or one of its eight neighbours.
func (c Cell) Near(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Chebyshev returns the king-move distance between two cells.
func (c Cell) Chebyshev(o Cell) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

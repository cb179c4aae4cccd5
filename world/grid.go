package world

import (
	"strings"

	"github.com/pkg/errors"
)

type CellKind uint8

const (
	// None is reported for anything outside the grid.
	None CellKind = iota
	Floor
	Wall
	Gargoyle
	Bricks
	Shield
	Mold
)

var (
	ErrEmptyLevel  = errors.New("level has no rows")
	ErrRaggedLevel = errors.New("level rows differ in width")
	ErrUnknownCell = errors.New("unknown cell kind")
)

// IsWall reports whether the kind blocks rays and movement. Decorative kinds
// are walls too.
func (k CellKind) IsWall() bool {
	return k != None && k != Floor
}

func (k CellKind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Gargoyle:
		return "gargoyle"
	case Bricks:
		return "bricks"
	case Shield:
		return "shield"
	case Mold:
		return "mold"
	}
	return "none"
}

func kindFromRune(r rune) (CellKind, bool) {
	switch r {
	case 'F', '.', 'P', 'E':
		return Floor, true
	case 'W':
		return Wall, true
	case 'G':
		return Gargoyle, true
	case 'B':
		return Bricks, true
	case 'S':
		return Shield, true
	case 'M':
		return Mold, true
	}
	return None, false
}

// Grid is the static level map. It is never mutated after construction.
type Grid struct {
	width, height int
	cells         []CellKind
}

// NewGrid builds a grid of the given size filled with kind.
func NewGrid(width, height int, kind CellKind) *Grid {
	g := &Grid{width: width, height: height, cells: make([]CellKind, width*height)}
	for i := range g.cells {
		g.cells[i] = kind
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// At returns the kind at c, or None when c is out of bounds.
func (g *Grid) At(c Cell) CellKind {
	if !g.Contains(c) {
		return None
	}
	return g.cells[c.Y*g.width+c.X]
}

func (g *Grid) IsWall(c Cell) bool {
	return g.At(c).IsWall()
}

// Floors returns every floor cell in row-major order.
func (g *Grid) Floors() []Cell {
	var floors []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Floor {
				floors = append(floors, Cell{X: x, Y: y})
			}
		}
	}
	return floors
}

func (g *Grid) set(c Cell, kind CellKind) {
	g.cells[c.Y*g.width+c.X] = kind
}

// String renders the grid back into level rows.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch g.cells[y*g.width+x] {
			case Floor:
				sb.WriteByte('F')
			case Gargoyle:
				sb.WriteByte('G')
			case Bricks:
				sb.WriteByte('B')
			case Shield:
				sb.WriteByte('S')
			case Mold:
				sb.WriteByte('M')
			default:
				sb.WriteByte('W')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

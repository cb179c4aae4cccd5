package world

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosCell(t *testing.T) {
	assert.Equal(t, Cell{1, 5}, NewPos(1.5, 5.0).Cell())
	assert.Equal(t, Cell{2, 3}, NewPos(2.0, 3.0).Cell())
	assert.Equal(t, Cell{0, 0}, NewPos(-0.5, 0.99).Cell())

	sum := NewPos(1, 2).Add(NewPos(0.5, -1))
	assert.Equal(t, NewPos(1.5, 1), sum)
	assert.Equal(t, NewPos(1, 2), sum.Sub(NewPos(0.5, -1)))
	assert.InDelta(t, 5.0, NewPos(3, 4).Len(), 1e-9)
}

func TestCellNear(t *testing.T) {
	c := Cell{5, 5}
	for _, way := range Ways {
		assert.True(t, c.Near(c.Add(way)), "way %v", way)
	}
	assert.True(t, c.Near(c))
	assert.False(t, c.Near(Cell{7, 5}))
	assert.Equal(t, 3, c.Chebyshev(Cell{2, 4}))
}

func TestDefaultLevel(t *testing.T) {
	level := DefaultLevel()
	grid := level.Grid

	require.Equal(t, 16, grid.Width())
	require.Equal(t, 9, grid.Height())
	assert.Equal(t, Mold, grid.At(Cell{8, 0}))
	assert.Equal(t, Gargoyle, grid.At(Cell{8, 8}))
	assert.Equal(t, Floor, grid.At(Cell{1, 1}))
	assert.True(t, grid.IsWall(Cell{3, 2}))
	assert.Nil(t, level.PlayerStart)
	assert.Empty(t, level.Spawns)
	assert.Equal(t, strings.Join(DefaultRows, "\n")+"\n", grid.String())
}

func TestGridOutOfBounds(t *testing.T) {
	grid := DefaultLevel().Grid

	for _, c := range []Cell{{-1, 0}, {0, -1}, {16, 0}, {0, 9}, {100, 100}} {
		assert.Equal(t, None, grid.At(c), "cell %v", c)
		assert.False(t, grid.IsWall(c), "cell %v", c)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("small", []string{
		"WWWWW",
		"WP.EW",
		"WWWWW",
	})
	require.NoError(t, err)

	require.NotNil(t, level.PlayerStart)
	assert.Equal(t, NewPos(1.5, 1.5), *level.PlayerStart)
	assert.Equal(t, []Pos{NewPos(3.5, 1.5)}, level.Spawns)
	assert.Equal(t, []Cell{{1, 1}, {2, 1}, {3, 1}}, level.Grid.Floors())
}

func TestParseLevelErrors(t *testing.T) {
	_, err := ParseLevel("empty", nil)
	assert.ErrorIs(t, err, ErrEmptyLevel)

	_, err = ParseLevel("ragged", []string{"WWW", "WF"})
	assert.ErrorIs(t, err, ErrRaggedLevel)

	_, err = ParseLevel("unknown", []string{"WXW"})
	assert.ErrorIs(t, err, ErrUnknownCell)
}

func TestLoadLevel(t *testing.T) {
	doc := `
name: corridor
rows:
  - WWWWW
  - WPFEW
  - WWWWW
`
	level, err := LoadLevel(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "corridor", level.Name)
	assert.Equal(t, 5, level.Grid.Width())
	assert.Len(t, level.Spawns, 1)
}

func TestDecodeLevelImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, levelColorWall)
		}
	}
	img.Set(1, 1, levelColorPlayer)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	level, err := DecodeLevelImage(&buf)
	require.NoError(t, err)
	require.NotNil(t, level.PlayerStart)
	assert.Equal(t, NewPos(1.5, 1.5), *level.PlayerStart)
	assert.Equal(t, Floor, level.Grid.At(Cell{1, 1}))
	assert.Equal(t, Wall, level.Grid.At(Cell{0, 0}))
}

func TestGraphEdges(t *testing.T) {
	grid := DefaultLevel().Grid
	graph := NewGraph(grid)

	assert.Equal(t, len(grid.Floors()), graph.Len())
	assert.Equal(t, []Cell{{2, 1}, {1, 2}, {2, 2}}, graph.Neighbors(Cell{1, 1}))
	assert.Empty(t, graph.Neighbors(Cell{0, 0}))

	for _, c := range grid.Floors() {
		for _, n := range graph.Neighbors(c) {
			assert.Equal(t, Floor, grid.At(n))
			assert.Equal(t, 1, c.Chebyshev(n))
		}
	}
}

func TestPathFinderNext(t *testing.T) {
	paths := NewPathFinder(NewGraph(DefaultLevel().Grid))

	step, ok := paths.Next(Cell{1, 1}, Cell{5, 1}, nil)
	require.True(t, ok)
	assert.Equal(t, Cell{2, 1}, step)

	_, ok = paths.Next(Cell{4, 4}, Cell{4, 4}, nil)
	assert.False(t, ok)
}

func TestPathFinderOpenGrid(t *testing.T) {
	grid := NewGrid(12, 12, Floor)
	paths := NewPathFinder(NewGraph(grid))

	tests := []struct {
		start, goal Cell
	}{
		{Cell{0, 0}, Cell{11, 11}},
		{Cell{11, 0}, Cell{0, 11}},
		{Cell{5, 5}, Cell{5, 0}},
		{Cell{3, 9}, Cell{10, 2}},
		{Cell{6, 6}, Cell{7, 7}},
	}
	for _, tt := range tests {
		step, ok := paths.Next(tt.start, tt.goal, nil)
		require.True(t, ok, "%v -> %v", tt.start, tt.goal)
		assert.Less(t, step.Chebyshev(tt.goal), tt.start.Chebyshev(tt.goal), "%v -> %v", tt.start, tt.goal)
		assert.Equal(t, 1, step.Chebyshev(tt.start))
	}
}

func TestPathFinderOccupied(t *testing.T) {
	paths := NewPathFinder(NewGraph(DefaultLevel().Grid))

	// occupied goal still steers toward it
	step, ok := paths.Next(Cell{1, 1}, Cell{5, 1}, []Cell{{5, 1}})
	require.True(t, ok)
	assert.Equal(t, Cell{2, 1}, step)

	// but never steps onto it
	_, ok = paths.Next(Cell{4, 1}, Cell{5, 1}, []Cell{{5, 1}})
	assert.False(t, ok)

	// detour around an occupied cell
	step, ok = paths.Next(Cell{1, 1}, Cell{5, 1}, []Cell{{2, 1}})
	require.True(t, ok)
	assert.NotEqual(t, Cell{2, 1}, step)
	assert.Equal(t, Cell{2, 2}, step)
}

func TestPathFinderUnreachable(t *testing.T) {
	level, err := ParseLevel("corridor", []string{
		"WWWWW",
		"WFFFW",
		"WWWWW",
	})
	require.NoError(t, err)
	paths := NewPathFinder(NewGraph(level.Grid))

	_, ok := paths.Next(Cell{1, 1}, Cell{3, 1}, []Cell{{2, 1}})
	assert.False(t, ok)

	_, ok = paths.Next(Cell{1, 1}, Cell{0, 0}, nil)
	assert.False(t, ok)
}

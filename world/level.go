package world

import (
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"gopkg.in/yaml.v3"
)

// Level is a grid plus the optional spawn markers found in the level file.
type Level struct {
	Name        string
	Grid        *Grid
	PlayerStart *Pos
	Spawns      []Pos
}

type levelFile struct {
	Name string   `json:"name" yaml:"name"`
	Rows []string `json:"rows" yaml:"rows"`
}

// DefaultRows is the built-in 16x9 level.
var DefaultRows = []string{
	"WWWWWWWWMMMWWWWW",
	"WFFFFFFFFFFFFFFW",
	"WFFSBBBFFFBBBFFW",
	"WFFFFFBFFFFFBFFW",
	"WFFFFFBFFFFFBFFW",
	"WFFSBBBFFFFFFFFW",
	"WFFFFFFFFFFFFFFW",
	"WFFMFFFMFFFFFFFW",
	"WWWWWWWWGWGWGWWW",
}

func DefaultLevel() *Level {
	level, err := ParseLevel("default", DefaultRows)
	if err != nil {
		panic(err)
	}
	return level
}

// ParseLevel builds a level from rows of single character cells. 'P' marks
// the player start and 'E' an enemy spawn, both standing on floor.
func ParseLevel(name string, rows []string) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLevel
	}

	width := len(rows[0])
	level := &Level{Name: name, Grid: NewGrid(width, len(rows), Wall)}

	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrRaggedLevel, "row %d has width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			kind, ok := kindFromRune(r)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownCell, "%q at %d,%d", r, x, y)
			}
			c := Cell{X: x, Y: y}
			level.Grid.set(c, kind)

			switch r {
			case 'P':
				start := c.Center()
				level.PlayerStart = &start
			case 'E':
				level.Spawns = append(level.Spawns, c.Center())
			}
		}
	}

	return level, nil
}

// LoadLevel decodes a yaml level document.
func LoadLevel(r io.Reader) (*Level, error) {
	var f levelFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	return ParseLevel(f.Name, f.Rows)
}

var (
	levelColorFloor  = color.RGBA{255, 255, 255, 255}
	levelColorWall   = color.RGBA{0, 0, 0, 255}
	levelColorEnemy  = color.RGBA{255, 0, 0, 255}
	levelColorPlayer = color.RGBA{0, 0, 255, 255}
	levelColorBricks = color.RGBA{255, 255, 0, 255}
	levelColorShield = color.RGBA{0, 255, 0, 255}
)

// DecodeLevelImage reads a level drawn as an image, one pixel per cell.
func DecodeLevelImage(r io.Reader) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode level image")
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrEmptyLevel
	}

	rows := make([]string, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		var sb strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)

			switch c {
			case levelColorFloor:
				sb.WriteByte('F')
			case levelColorWall:
				sb.WriteByte('W')
			case levelColorEnemy:
				sb.WriteByte('E')
			case levelColorPlayer:
				sb.WriteByte('P')
			case levelColorBricks:
				sb.WriteByte('B')
			case levelColorShield:
				sb.WriteByte('S')
			default:
				return nil, errors.Wrapf(ErrUnknownCell, "color %v at %d,%d", c, x, y)
			}
		}
		rows = append(rows, sb.String())
	}

	return ParseLevel("image", rows)
}

// OpenLevel loads a level file, picking the decoder from the extension.
func OpenLevel(path string) (*Level, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open level")
	}
	defer file.Close()

	var level *Level
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		level, err = DecodeLevelImage(file)
	default:
		level, err = LoadLevel(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	if level.Name == "" || level.Name == "image" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}

// Package asset decodes texture files into images and texture metrics for
// the platform drivers.
package asset

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	"gridshooter/engine"
)

// Images decodes every texture file, several at a time.
func Images(paths map[engine.TextureID]string) (map[engine.TextureID]image.Image, error) {
	var (
		mu     sync.Mutex
		images = make(map[engine.TextureID]image.Image, len(paths))
		g      errgroup.Group
	)
	g.SetLimit(runtime.NumCPU())

	for id, path := range paths {
		id, path := id, path
		g.Go(func() error {
			img, err := decode(path)
			if err != nil {
				return errors.Wrapf(err, "texture %s", id)
			}

			mu.Lock()
			images[id] = img
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

func Ref(id engine.TextureID, img image.Image) engine.TextureRef {
	b := img.Bounds()
	ratio := 1.0
	if b.Dy() > 0 {
		ratio = float64(b.Dx()) / float64(b.Dy())
	}
	return engine.TextureRef{ID: id, Width: b.Dx(), Ratio: ratio}
}

// Refs looks up the metrics of each id in order.
func Refs(images map[engine.TextureID]image.Image, ids ...engine.TextureID) ([]engine.TextureRef, error) {
	refs := make([]engine.TextureRef, len(ids))
	for i, id := range ids {
		img, ok := images[id]
		if !ok {
			return nil, errors.Wrap(engine.ErrUnknownTexture, id.String())
		}
		refs[i] = Ref(id, img)
	}
	return refs, nil
}

// AverageColor blends every opaque pixel of img. Fully transparent pixels are
// skipped so sprites are not darkened by their background.
func AverageColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca == 0 {
				continue
			}
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			b += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff}
}

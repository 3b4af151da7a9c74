package avatar

import (
	"context"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/systemshift/robo-identities/internal/assets"
	"github.com/systemshift/robo-identities/internal/errs"
)

// Compose draws sel onto a width x height canvas: the background first, then
// every part in order. Parts are hue-rotated when sel.Hue is set.
func Compose(ctx context.Context, repo *assets.Repository, sel *Selection, width, height int) (*image.RGBA, error) {
	if sel == nil {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "compose", "no selection")
	}
	if width <= 0 || height <= 0 {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "compose", "invalid size %dx%d", width, height)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	if sel.Background != nil {
		if err := overlay(ctx, canvas, repo, *sel.Background, nil); err != nil {
			return nil, err
		}
	}
	var hue *hueMatrix
	if sel.Hue != nil {
		m := newHueMatrix(*sel.Hue)
		hue = &m
	}
	for _, part := range sel.Parts {
		if err := overlay(ctx, canvas, repo, part, hue); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

func overlay(ctx context.Context, canvas *image.RGBA, repo *assets.Repository, it assets.Item, hue *hueMatrix) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := repo.Load(it)
	if err != nil {
		return err
	}
	size := canvas.Bounds().Size()
	layer := resize(img, size.X, size.Y)
	if hue != nil {
		layer = hue.rotate(layer)
	}
	draw.Draw(canvas, canvas.Bounds(), layer, layer.Bounds().Min, draw.Over)
	return nil
}

// resize scales img to w x h with Catmull-Rom. Layers already at the target
// size are returned untouched.
func resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// hueMatrix is the luminance-preserving hue rotation matrix in 16.16 fixed
// point.
type hueMatrix [9]int64

const fixedOne = 1 << 16

func newHueMatrix(degrees int) hueMatrix {
	rad := float64(degrees) * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	// Each product is converted explicitly so it is rounded before the sum.
	f := [9]float64{
		0.213 + float64(c*0.787) - float64(s*0.213),
		0.715 - float64(c*0.715) - float64(s*0.715),
		0.072 - float64(c*0.072) + float64(s*0.928),
		0.213 - float64(c*0.213) + float64(s*0.143),
		0.715 + float64(c*0.285) + float64(s*0.140),
		0.072 - float64(c*0.072) - float64(s*0.283),
		0.213 - float64(c*0.213) - float64(s*0.787),
		0.715 - float64(c*0.715) + float64(s*0.715),
		0.072 + float64(c*0.928) + float64(s*0.072),
	}
	var m hueMatrix
	for i, v := range f {
		m[i] = int64(math.Round(float64(v * fixedOne)))
	}
	return m
}

// rotate returns a hue-rotated copy of img. Alpha is preserved and the
// matrix is applied to straight (non-premultiplied) color.
func (m hueMatrix) rotate(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	for i := 0; i+3 < len(out.Pix); i += 4 {
		p := out.Pix[i : i+4 : i+4]
		if p[3] == 0 {
			continue
		}
		r, g, bl := int64(p[0]), int64(p[1]), int64(p[2])
		p[0] = clamp8(m[0]*r + m[1]*g + m[2]*bl)
		p[1] = clamp8(m[3]*r + m[4]*g + m[5]*bl)
		p[2] = clamp8(m[6]*r + m[7]*g + m[8]*bl)
	}
	return out
}

func clamp8(v int64) uint8 {
	v = (v + fixedOne/2) >> 16
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Package imagelattice exposes images as seedfill lattices.
//
// Lattice adapts any draw.Image to seedfill.Sites[color.RGBA] for the
// callback fill variant; FillGray runs the flat-buffer fill directly over
// an *image.Gray's pixel memory. Because the callback variant keeps no undo
// log, Checkpoint/Rollback copy an image region aside and back.
package imagelattice

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/latfill/seedfill"
)

// ErrUnrepresentable indicates the fill colour does not survive the image's
// colour model, so painted pixels would never read back as painted.
var ErrUnrepresentable = errors.New("imagelattice: fill colour not representable in image colour model")

// Lattice reads and writes pixels of a draw.Image as color.RGBA sites.
// A fill over a Lattice only terminates when its new value reads back
// unchanged after Write; Fill checks this, direct users of Lattice must.
type Lattice struct {
	img xdraw.Image
}

// New wraps img. The image is not copied.
func New(img xdraw.Image) *Lattice {
	return &Lattice{img: img}
}

// Read returns the pixel at (x,y) converted to color.RGBA.
func (l *Lattice) Read(x, y int) color.RGBA {
	return color.RGBAModel.Convert(l.img.At(x, y)).(color.RGBA)
}

// Write sets the pixel at (x,y).
func (l *Lattice) Write(x, y int, c color.RGBA) {
	l.img.Set(x, y, c)
}

// Window returns the image bounds as an inclusive seedfill window.
func Window(img image.Image) seedfill.Window {
	b := img.Bounds()
	return seedfill.Window{X0: b.Min.X, Y0: b.Min.Y, X1: b.Max.X - 1, Y1: b.Max.Y - 1}
}

// Fill paints c over every pixel reachable from (x,y) through 4-connected
// pixels that are neither border nor c. The whole image is the window.
//
// border is matched after conversion through img's colour model. Returns
// ErrUnrepresentable when c itself changes under that conversion.
func Fill(img xdraw.Image, x, y int, c, border color.RGBA, opts ...seedfill.Option) (seedfill.Result, error) {
	cm := img.ColorModel()
	if got := toRGBA(cm, c); got != c {
		return seedfill.Result{}, fmt.Errorf("%w: %v reads back as %v in %T", ErrUnrepresentable, c, got, img)
	}
	border = toRGBA(cm, border)

	e, err := seedfill.New[color.RGBA](opts...)
	if err != nil {
		return seedfill.Result{}, err
	}
	w := Window(img)
	e.SetWindow(w.X0, w.Y0, w.X1, w.Y1)
	return e.FillToBorderValueSites(x, y, c, border, New(img))
}

// toRGBA is c as it reads back from an image with colour model cm.
func toRGBA(cm color.Model, c color.Color) color.RGBA {
	return color.RGBAModel.Convert(cm.Convert(c)).(color.RGBA)
}

// FillGray replaces the 4-connected region of equal gray level around
// pixel (x,y) with v, operating in place on img.Pix.
//
// Pix is row-major with stride img.Stride, so the engine sees image rows
// as its x axis and image columns as its y axis.
func FillGray(img *image.Gray, x, y int, v uint8, opts ...seedfill.Option) (seedfill.Result, error) {
	r := img.Rect
	win := seedfill.Window{X0: 0, Y0: 0, X1: r.Dy() - 1, Y1: r.Dx() - 1}
	return seedfill.Fill(img.Pix, img.Stride, win, y-r.Min.Y, x-r.Min.X, v, opts...)
}

// Snapshot holds a copy of an image region.
type Snapshot struct {
	rect image.Rectangle
	pix  *image.RGBA
}

// Checkpoint copies the part of r inside img's bounds.
func Checkpoint(img image.Image, r image.Rectangle) *Snapshot {
	r = r.Intersect(img.Bounds())
	pix := image.NewRGBA(r)
	xdraw.Copy(pix, r.Min, img, r, xdraw.Src, nil)
	return &Snapshot{rect: r, pix: pix}
}

// Bounds is the region held by the snapshot.
func (s *Snapshot) Bounds() image.Rectangle { return s.rect }

// Rollback writes the saved region back into img.
func (s *Snapshot) Rollback(img xdraw.Image) {
	xdraw.Copy(img, s.rect.Min, s.pix, s.rect, xdraw.Src, nil)
}

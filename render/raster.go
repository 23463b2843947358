// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/metaball"
)

// kappa is the cubic Bezier handle ratio approximating a quarter circle.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Raster is a CPU-backed metaball.Canvas drawing anti-aliased fills into an
// *image.RGBA with golang.org/x/image/vector.
//
// Raster is not safe for concurrent use.
//
// Example:
//
//	r := render.NewRaster(320, 80, render.WithFill(color.White))
//	bar.Draw(r, 0.4)
//	_ = r.SavePNG("frame.png")
type Raster struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	fill       *image.Uniform
	background *image.Uniform
}

// NewRaster creates a raster of the given size, cleared to the background.
func NewRaster(width, height int, opts ...RasterOption) *Raster {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(width, height),
		fill:       image.NewUniform(o.fill),
		background: image.NewUniform(o.background),
	}
	r.Clear()
	return r
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.img.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.img.Bounds().Dy()
}

// Pixels returns direct access to the pixel data, 4 bytes per pixel.
func (r *Raster) Pixels() []byte {
	return r.img.Pix
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.img.Stride
}

// Image returns the underlying image. It shares memory with the raster.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// SetFill changes the color of subsequent fills.
func (r *Raster) SetFill(c color.Color) {
	r.fill = image.NewUniform(c)
}

// Clear fills the whole raster with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), r.background, image.Point{}, draw.Src)
}

// FillCircle implements metaball.Canvas.
func (r *Raster) FillCircle(c metaball.Circle) {
	if !c.Visible() {
		return
	}

	cx, cy, rad := c.Center.X, c.Center.Y, c.Radius
	k := rad * kappa

	r.begin()
	r.moveTo(cx+rad, cy)
	r.cubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.cubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.cubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.cubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.flush()
}

// FillPath implements metaball.Canvas.
func (r *Raster) FillPath(p *metaball.Path) {
	if p == nil || p.Len() == 0 {
		return
	}

	r.begin()
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case metaball.MoveTo:
			r.moveTo(s.Point.X, s.Point.Y)
		case metaball.LineTo:
			r.z.LineTo(float32(s.Point.X), float32(s.Point.Y))
		case metaball.CubicTo:
			r.cubeTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case metaball.Close:
			r.z.ClosePath()
		}
	}
	r.flush()
}

// EncodePNG writes the raster as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) flush() {
	r.z.Draw(r.img, r.img.Bounds(), r.fill, image.Point{})
}

func (r *Raster) moveTo(x, y float64) {
	r.z.MoveTo(float32(x), float32(y))
}

func (r *Raster) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

var _ metaball.Canvas = (*Raster)(nil)

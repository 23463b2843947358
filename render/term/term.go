// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package term presents rendered metaball frames on a terminal using tcell.
//
// Each terminal cell shows two vertically stacked pixels with the upper
// half block glyph: the foreground paints the top pixel and the background
// the bottom one.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/metaball"
)

// upperHalf is the glyph whose foreground covers the top half of a cell.
const upperHalf = '▀'

// Screen draws images onto a tcell screen.
type Screen struct {
	screen tcell.Screen
	buf    *image.RGBA
}

// New wraps an initialized tcell screen.
func New(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Open creates and initializes the terminal screen.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return New(s), nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Tcell returns the underlying screen, for event polling.
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// PixelSize returns the drawable size in pixels: one column and two rows
// of pixels per cell.
func (s *Screen) PixelSize() (int, int) {
	w, h := s.screen.Size()
	return w, h * 2
}

// Present scales img to the terminal and shows it.
func (s *Screen) Present(img image.Image) {
	w, h := s.PixelSize()
	if w <= 0 || h <= 0 {
		return
	}

	if s.buf == nil || s.buf.Bounds().Dx() != w || s.buf.Bounds().Dy() != h {
		s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
		metaball.Logger().Debug("term: resized", "width", w, "height", h)
	}
	xdraw.ApproxBiLinear.Scale(s.buf, s.buf.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(s.buf.At(x, y))).
				Background(cellColor(s.buf.At(x, y+1)))
			s.screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
	s.screen.Show()
}

// cellColor converts a pixel to a terminal color. Fully transparent
// pixels map to the terminal default.
func cellColor(c color.Color) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

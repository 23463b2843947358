// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/metaball"
)

var (
	purple = color.RGBA{R: 170, G: 102, B: 204, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestNewRaster(t *testing.T) {
	r := NewRaster(64, 32, WithBackground(purple))

	if r.Width() != 64 || r.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", r.Width(), r.Height())
	}
	if r.Stride() != 64*4 {
		t.Errorf("Stride() = %d, want %d", r.Stride(), 64*4)
	}
	if len(r.Pixels()) != 64*32*4 {
		t.Errorf("len(Pixels()) = %d", len(r.Pixels()))
	}
	if got := r.Image().RGBAAt(10, 10); got != purple {
		t.Errorf("background pixel = %v, want %v", got, purple)
	}
}

func TestRaster_FillCircle(t *testing.T) {
	r := NewRaster(100, 100, WithBackground(purple), WithFill(white))
	r.FillCircle(metaball.Circ(50, 50, 20))

	img := r.Image()
	if got := img.RGBAAt(50, 50); got != white {
		t.Errorf("center pixel = %v, want white", got)
	}
	if got := img.RGBAAt(50, 35); got != white {
		t.Errorf("pixel inside radius = %v, want white", got)
	}
	if got := img.RGBAAt(50, 20); got != purple {
		t.Errorf("pixel outside radius = %v, want background", got)
	}
	if got := img.RGBAAt(85, 85); got != purple {
		t.Errorf("corner pixel = %v, want background", got)
	}

	// Zero radius draws nothing.
	r.Clear()
	r.FillCircle(metaball.Circ(50, 50, 0))
	if got := img.RGBAAt(50, 50); got != purple {
		t.Errorf("zero-radius circle painted %v", got)
	}
}

func TestRaster_FillBlobNeck(t *testing.T) {
	r := NewRaster(120, 60, WithBackground(purple), WithFill(white))

	// Two circles whose gap at the center line is covered only by the blob.
	origin := metaball.Circ(30, 30, 14)
	destination := metaball.Circ(70, 30, 14)
	res := metaball.Compute(origin, destination, 0.5)
	if _, ok := res.(metaball.FusedBlob); !ok {
		t.Fatalf("Compute() = %T, want FusedBlob", res)
	}

	r.FillCircle(origin)
	r.FillCircle(destination)
	if got := r.Image().RGBAAt(50, 30); got != purple {
		t.Fatalf("gap pixel before blob = %v, want background", got)
	}

	r.Clear()
	res.Draw(r)
	if got := r.Image().RGBAAt(50, 30); got != white {
		t.Errorf("neck pixel = %v, want white", got)
	}
	if got := r.Image().RGBAAt(50, 5); got != purple {
		t.Errorf("pixel above neck = %v, want background", got)
	}
}

func TestRaster_FillPathEmpty(t *testing.T) {
	r := NewRaster(10, 10, WithBackground(purple))
	r.FillPath(nil)
	r.FillPath(metaball.NewPath())
	if got := r.Image().RGBAAt(5, 5); got != purple {
		t.Errorf("empty path painted %v", got)
	}
}

func TestRaster_SetFill(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	r := NewRaster(40, 40)
	r.SetFill(red)
	r.FillCircle(metaball.Circ(20, 20, 10))
	if got := r.Image().RGBAAt(20, 20); got != red {
		t.Errorf("center pixel = %v, want red", got)
	}
}

func TestRaster_SavePNG(t *testing.T) {
	r := NewRaster(32, 16, WithBackground(purple))
	r.FillCircle(metaball.Circ(16, 8, 6))

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v", b)
	}

	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func TestRaster_Caption(t *testing.T) {
	r := NewRaster(120, 24, WithBackground(purple), WithFill(white))
	if err := r.Caption(2, 16, "t=0.50"); err != nil {
		t.Fatalf("Caption() error = %v", err)
	}

	changed := 0
	img := r.Image()
	for y := 0; y < 24; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y) != purple {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("Caption() drew no pixels")
	}
}

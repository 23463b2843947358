// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides software implementations of metaball.Canvas.
//
// # Canvases
//
//   - Raster: anti-aliased fills into an *image.RGBA via
//     golang.org/x/image/vector, with PNG output and text captions
//   - Recorder: captures draw calls for inspection and later playback
//
// # Example
//
//	r := render.NewRaster(400, 80,
//	    render.WithBackground(color.RGBA{170, 102, 204, 255}),
//	    render.WithFill(color.White),
//	)
//	metaball.Compute(origin, destination, t).Draw(r)
//	if err := r.SavePNG("frame.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Hosts that copy frames elsewhere can read Raster.Pixels, which holds
// alpha-premultiplied RGBA bytes, row by row with Raster.Stride.
package render

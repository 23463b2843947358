// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// RasterOption configures a Raster during creation.
type RasterOption func(*rasterOptions)

type rasterOptions struct {
	fill       color.Color
	background color.Color
}

func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		fill:       color.White,
		background: color.Transparent,
	}
}

// WithFill sets the color used for circles and blob paths.
// Defaults to opaque white.
func WithFill(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		if c != nil {
			o.fill = c
		}
	}
}

// WithBackground sets the color Clear paints. Defaults to transparent.
func WithBackground(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		if c != nil {
			o.background = c
		}
	}
}

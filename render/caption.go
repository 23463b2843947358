// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// captionSize is the caption font size in pixels.
const captionSize = 11

var (
	captionOnce sync.Once
	captionFont *opentype.Font
	captionErr  error
)

func loadCaptionFont() (*opentype.Font, error) {
	captionOnce.Do(func() {
		captionFont, captionErr = opentype.Parse(gomono.TTF)
	})
	return captionFont, captionErr
}

// Caption draws a single line of text with its baseline at (x, y) in the
// fill color. It is meant for frame annotations such as the frame index and
// fraction.
func (r *Raster) Caption(x, y int, s string) error {
	f, err := loadCaptionFont()
	if err != nil {
		return fmt.Errorf("render: parse caption font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: caption face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  r.img,
		Src:  r.fill,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/metaball"
)

// OpKind identifies the type of a recorded draw operation.
type OpKind uint8

const (
	OpFillCircle OpKind = iota // Fill a circle
	OpFillPath                 // Fill a closed path
)

var opKindNames = [...]string{
	OpFillCircle: "FillCircle",
	OpFillPath:   "FillPath",
}

// String returns the name of the operation kind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", k)
}

// Op is one recorded draw call. Circle is set for OpFillCircle, Path for
// OpFillPath.
type Op struct {
	Kind   OpKind
	Circle metaball.Circle
	Path   *metaball.Path
}

// Recorder is a metaball.Canvas that captures draw calls instead of
// rasterizing them, so a frame can be inspected or replayed onto another
// canvas later.
type Recorder struct {
	ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{ops: make([]Op, 0, 3)}
}

// FillCircle implements metaball.Canvas.
func (r *Recorder) FillCircle(c metaball.Circle) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Circle: c})
}

// FillPath implements metaball.Canvas.
func (r *Recorder) FillPath(p *metaball.Path) {
	r.ops = append(r.ops, Op{Kind: OpFillPath, Path: p})
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Playback replays the recorded operations onto c.
func (r *Recorder) Playback(c metaball.Canvas) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpFillCircle:
			c.FillCircle(op.Circle)
		case OpFillPath:
			c.FillPath(op.Path)
		}
	}
}

var _ metaball.Canvas = (*Recorder)(nil)

package component

import "github.com/milk9111/spritedog/common"

// Animation paces a sprite strip on a grid spritesheet. FrameY selects the
// row (strip) and FrameX walks columns 0..MaxFrame inclusive.
type Animation struct {
	FrameX   int
	FrameY   int
	MaxFrame int
	// Timer accumulates host-supplied milliseconds toward Interval.
	Timer    float64
	Interval float64
}

// NewAnimation returns an Animation that advances fps times per second.
func NewAnimation(fps float64) Animation {
	a := Animation{}
	a.SetFPS(fps)
	return a
}

// SetFPS changes the frame interval. Non-positive fps is ignored.
func (a *Animation) SetFPS(fps float64) {
	if fps <= 0 {
		return
	}
	a.Interval = 1000 / fps
}

// SetStrip switches to another row of the sheet without resetting the
// column, the same way the sprite changes row mid-cycle on a state change.
func (a *Animation) SetStrip(row, maxFrame int) {
	a.FrameY = row
	a.MaxFrame = maxFrame
}

// Advance accumulates dt milliseconds and steps FrameX at most once. Any
// remainder past one interval carries into the next call.
func (a *Animation) Advance(dt float64) {
	if a.FrameX > a.MaxFrame || a.FrameX < 0 {
		a.FrameX = 0
	}
	if dt > 0 {
		a.Timer += dt
	}
	if a.Interval <= 0 || a.Timer < a.Interval {
		return
	}
	if a.FrameX < a.MaxFrame {
		a.FrameX++
	} else {
		a.FrameX = 0
	}
	a.Timer -= a.Interval
	if a.Timer >= a.Interval {
		a.Timer = 0
	}
}

// Reset sets the animation back to the first column.
func (a *Animation) Reset() {
	a.FrameX = 0
	a.Timer = 0
}

// Source returns the sheet rectangle of the current frame.
func (a *Animation) Source(frameW, frameH float64) common.Rect {
	return common.Rect{
		X:      float64(a.FrameX) * frameW,
		Y:      float64(a.FrameY) * frameH,
		Width:  frameW,
		Height: frameH,
	}
}

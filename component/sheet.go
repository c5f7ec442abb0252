package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritedog/common"
)

// Sheet is a uniform grid spritesheet. Frames are laid out left-to-right in
// rows, one row per animation strip.
type Sheet struct {
	Image  *ebiten.Image
	Cols   int
	Rows   int
	FrameW float64
	FrameH float64
}

// NewSheet derives the frame size from the image bounds. The frame size may
// be fractional when the sheet does not divide evenly.
func NewSheet(img *ebiten.Image, cols, rows int) *Sheet {
	s := &Sheet{Image: img, Cols: cols, Rows: rows}
	if img == nil || cols <= 0 || rows <= 0 {
		return s
	}
	b := img.Bounds()
	s.FrameW = float64(b.Dx()) / float64(cols)
	s.FrameH = float64(b.Dy()) / float64(rows)
	return s
}

// SheetRenderer blits frames of Sheet onto Screen.
type SheetRenderer struct {
	Screen *ebiten.Image
	Sheet  *Sheet
}

// DrawSprite copies src out of the sheet into dst on the screen, scaling
// when the sizes differ.
func (r SheetRenderer) DrawSprite(src, dst common.Rect) {
	if r.Screen == nil || r.Sheet == nil || r.Sheet.Image == nil {
		return
	}
	rect := src.Image().Intersect(r.Sheet.Image.Bounds())
	if rect.Empty() {
		return
	}
	sub := r.Sheet.Image.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(rect.Dx()), dst.Height/float64(rect.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterNearest
	r.Screen.DrawImage(sub, op)
}

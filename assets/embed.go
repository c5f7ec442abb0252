package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// rowColors tints each animation strip of the placeholder sheet so state
// changes are visible without real art.
var rowColors = []color.RGBA{
	colornames.Sandybrown,    // standing right
	colornames.Peru,          // standing left
	colornames.Skyblue,       // jumping right
	colornames.Steelblue,     // jumping left
	colornames.Plum,          // falling right
	colornames.Mediumpurple,  // falling left
	colornames.Lightgreen,    // running right
	colornames.Seagreen,      // running left
	colornames.Khaki,         // sitting right
	colornames.Goldenrod,     // sitting left
	colornames.Lightgray,
	colornames.Darkgray,
}

// LoadSheet decodes a sprite sheet image from disk.
func LoadSheet(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// PlaceholderSheet builds a width x height sheet of cols x rows cells. Every
// cell is filled with its row colour and carries a marker whose position
// follows the column, so a cycling animation visibly moves.
func PlaceholderSheet(width, height, cols, rows int) *ebiten.Image {
	sheet := ebiten.NewImage(width, height)
	if cols <= 0 || rows <= 0 {
		return sheet
	}
	cw := width / cols
	ch := height / rows
	marker := max(cw/6, 2)

	for r := 0; r < rows; r++ {
		fill := rowColors[r%len(rowColors)]
		for c := 0; c < cols; c++ {
			x0, y0 := c*cw, r*ch
			cell := sheet.SubImage(image.Rect(x0+1, y0+1, x0+cw-1, y0+ch-1)).(*ebiten.Image)
			cell.Fill(fill)

			// marker walks along the bottom edge with the column
			mx := x0 + marker + (c*(cw-3*marker))/max(cols-1, 1)
			my := y0 + ch - 2*marker
			dot := sheet.SubImage(image.Rect(mx, my, mx+marker, my+marker)).(*ebiten.Image)
			dot.Fill(colornames.Black)
		}
	}
	return sheet
}

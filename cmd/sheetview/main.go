package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritedog/assets"
	"github.com/milk9111/spritedog/common"
	"github.com/milk9111/spritedog/component"
	"github.com/milk9111/spritedog/obj"
	"github.com/milk9111/spritedog/prefabs"
)

const viewSize = 512

// viewer plays one state's strip in place. Up/Down pick the state.
type viewer struct {
	sheet  *component.Sheet
	player *obj.Player
	states []obj.StateID
	index  int
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.index = (v.index + 1) % len(v.states)
		v.show()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.index = (v.index + len(v.states) - 1) % len(v.states)
		v.show()
	}
	return nil
}

// show enters the selected state on a grounded, stationary player so only
// the animation strip changes.
func (v *viewer) show() {
	v.player.SetState(v.states[v.index])
	v.player.Speed = 0
	v.player.VY = 0
	v.player.Y = v.player.GameHeight - v.player.Height
	v.player.Anim.Reset()
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	p := v.player
	p.X = (viewSize - p.Width) / 2
	p.Y = (viewSize - p.Height) / 2
	p.Draw(component.SheetRenderer{Screen: screen, Sheet: v.sheet}, 1000/float64(ebiten.TPS()))

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  row %d  frame %d/%d",
		p.State(), p.Anim.FrameY, p.Anim.FrameX, p.Anim.MaxFrame), 10, 10)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	config := flag.String("config", "", "player prefab YAML on disk")
	sheetPath := flag.String("sheet", "", "sprite sheet PNG (default: generated placeholder)")
	flag.Parse()

	spec := prefabs.DefaultPlayerSpec()
	if *config != "" {
		s, err := prefabs.ReadPlayerSpec(*config)
		if err != nil {
			log.Fatal(err)
		}
		spec = s
	}

	var img *ebiten.Image
	if *sheetPath != "" {
		i, err := assets.LoadSheet(*sheetPath)
		if err != nil {
			log.Fatal(err)
		}
		img = i
	} else {
		img = assets.PlaceholderSheet(spec.Sheet.Width, spec.Sheet.Height, spec.Sheet.Cols, spec.Sheet.Rows)
	}
	sheet := component.NewSheet(img, spec.Sheet.Cols, spec.Sheet.Rows)

	fw, fh := spec.Sheet.FrameSize()
	cfg := obj.DefaultPlayerConfig(viewSize, viewSize)
	cfg.FrameW = common.Clamp(fw, 1, viewSize)
	cfg.FrameH = common.Clamp(fh, 1, viewSize)
	cfg.FPS = spec.FPS

	v := &viewer{sheet: sheet, player: obj.NewPlayer(cfg), states: obj.States()}
	v.index = int(v.player.State())
	v.show()

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("spritedog sheet viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

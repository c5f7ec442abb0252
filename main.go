package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	config := flag.String("config", "", "player prefab YAML on disk (default: prefabs/player.yaml or the embedded copy)")
	sheet := flag.String("sheet", "", "sprite sheet PNG (overrides the prefab)")
	demo := flag.Bool("demo", false, "let the demo script drive the dog")
	script := flag.String("script", "demo", "tengo script used by -demo")
	watch := flag.Bool("watch", false, "reload the prefab and script when they change on disk")
	debug := flag.Bool("debug", false, "log state transitions and show FPS")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	opts := Options{
		ConfigPath: *config,
		SheetPath:  *sheet,
		Watch:      *watch,
		Debug:      *debug,
	}
	if *demo {
		opts.Script = *script
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.spec.GameWidth), int(game.spec.GameHeight))
	ebiten.SetWindowTitle("spritedog")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

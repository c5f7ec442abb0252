package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spritedog/assets"
	"github.com/milk9111/spritedog/component"
	"github.com/milk9111/spritedog/obj"
	"github.com/milk9111/spritedog/prefabs"
	"golang.org/x/image/colornames"
)

type Options struct {
	// ConfigPath is a player prefab on disk; empty uses prefabs/player.yaml.
	ConfigPath string
	// SheetPath overrides the sheet image named in the prefab.
	SheetPath string
	// Script, when set, drives the player from a tengo script.
	Script string
	Watch  bool
	Debug  bool
}

type Game struct {
	frames int
	opts   Options

	spec    prefabs.PlayerSpec
	input   *Input
	pilot   *obj.Autopilot
	player  *obj.Player
	sheet   *component.Sheet
	watcher *prefabs.Watcher

	lastInput obj.Event
	// pendingMS is simulated time since the last Draw.
	pendingMS float64
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts, input: NewInput()}

	spec, err := g.loadSpec()
	if err != nil {
		return nil, err
	}
	g.spec = spec
	g.sheet = g.loadSheet(spec)

	g.player = obj.NewPlayer(playerConfig(spec))
	g.player.Debug = opts.Debug

	if opts.Script != "" {
		if err := g.loadPilot(); err != nil {
			return nil, err
		}
	}

	if opts.Watch {
		g.startWatcher()
	}
	return g, nil
}

func playerConfig(spec prefabs.PlayerSpec) obj.PlayerConfig {
	fw, fh := spec.Sheet.FrameSize()
	return obj.PlayerConfig{
		GameWidth:   spec.GameWidth,
		GameHeight:  spec.GameHeight,
		FrameW:      fw,
		FrameH:      fh,
		MaxSpeed:    spec.MaxSpeed,
		Weight:      spec.Weight,
		JumpImpulse: spec.JumpImpulse,
		AirControl:  spec.AirControl,
		FPS:         spec.FPS,
	}
}

func (g *Game) loadSpec() (prefabs.PlayerSpec, error) {
	if g.opts.ConfigPath != "" {
		return prefabs.ReadPlayerSpec(g.opts.ConfigPath)
	}
	return prefabs.LoadPlayerSpec(prefabs.PlayerFile)
}

func (g *Game) loadSheet(spec prefabs.PlayerSpec) *component.Sheet {
	path := g.opts.SheetPath
	if path == "" {
		path = spec.Sheet.Image
	}
	if path != "" {
		img, err := assets.LoadSheet(path)
		if err == nil {
			return component.NewSheet(img, spec.Sheet.Cols, spec.Sheet.Rows)
		}
		log.Printf("game: %v; using placeholder sheet", err)
	}
	img := assets.PlaceholderSheet(spec.Sheet.Width, spec.Sheet.Height, spec.Sheet.Cols, spec.Sheet.Rows)
	return component.NewSheet(img, spec.Sheet.Cols, spec.Sheet.Rows)
}

func (g *Game) loadPilot() error {
	src, err := prefabs.LoadScript(g.opts.Script)
	if err != nil {
		return fmt.Errorf("game: load script %s: %w", g.opts.Script, err)
	}
	pilot, err := obj.NewAutopilot(g.opts.Script, src)
	if err != nil {
		return err
	}
	g.pilot = pilot
	return nil
}

func (g *Game) startWatcher() {
	var dirs []string
	if g.opts.ConfigPath != "" {
		dirs = append(dirs, filepath.Dir(g.opts.ConfigPath))
	} else if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		dirs = append(dirs, "prefabs")
	}
	if g.opts.Script != "" {
		if info, err := os.Stat(filepath.Join("prefabs", "scripts")); err == nil && info.IsDir() {
			dirs = append(dirs, filepath.Join("prefabs", "scripts"))
		}
	}
	if len(dirs) == 0 {
		log.Printf("game: nothing on disk to watch")
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: watch %v: %v", dirs, err)
		return
	}
	g.watcher = w
}

// Close releases the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

func (g *Game) Update() error {
	g.frames++

	ev := obj.None
	if g.pilot != nil {
		e, err := g.pilot.Next(g.player)
		if err != nil {
			log.Printf("game: %v; handing control back to the keyboard", err)
			g.pilot = nil
		} else {
			ev = e
		}
	} else {
		g.input.Update()
		ev = g.input.LastKey
	}
	if ev != obj.None {
		g.lastInput = ev
	}

	g.player.Update(ev)
	g.pendingMS += 1000 / float64(ebiten.TPS())

	g.pollWatcher()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	base := filepath.Base(name)
	switch {
	case prefabs.IsSpecFile(name) && base == g.configBase():
		spec, err := g.loadSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", base, err)
			return
		}
		if spec.Sheet != g.spec.Sheet {
			g.sheet = g.loadSheet(spec)
		}
		g.spec = spec
		g.player.Retune(playerConfig(spec))
		log.Printf("game: reloaded %s", base)
	case prefabs.IsScriptFile(name) && g.pilot != nil && base == filepath.Base(scriptFile(g.opts.Script)):
		if err := g.loadPilot(); err != nil {
			log.Printf("game: reload %s: %v", base, err)
			return
		}
		log.Printf("game: reloaded %s", base)
	}
}

func (g *Game) configBase() string {
	if g.opts.ConfigPath != "" {
		return filepath.Base(g.opts.ConfigPath)
	}
	return prefabs.PlayerFile
}

func scriptFile(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".tengo"
	}
	return name
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	g.player.Draw(component.SheetRenderer{Screen: screen, Sheet: g.sheet}, g.pendingMS)
	g.pendingMS = 0

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Last input: %s", g.lastInput), 20, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Active state: %s", g.player.State()), 20, 40)
	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 20, 60)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.spec.GameWidth), int(g.spec.GameHeight)
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritedog/obj"
)

// keyNames maps keys to the direction word used in input events.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyA:          "left",
	ebiten.KeyD:          "right",
	ebiten.KeyW:          "up",
	ebiten.KeyS:          "down",
}

// Input tracks the most recent keyboard event. LastKey keeps its value
// across ticks until another tracked key goes down or up, so a held key
// keeps reporting its press.
type Input struct {
	LastKey obj.Event

	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard for this tick's key edges.
func (i *Input) Update() {
	i.pressed = inpututil.AppendJustPressedKeys(i.pressed[:0])
	i.released = inpututil.AppendJustReleasedKeys(i.released[:0])
	i.Feed(i.pressed, i.released)
}

// Feed applies one tick of key edges. Releases are applied before presses,
// so a key pressed this tick wins over one let go this tick.
func (i *Input) Feed(pressed, released []ebiten.Key) {
	for _, k := range released {
		if e, ok := keyEvent(k, false); ok {
			i.LastKey = e
		}
	}
	for _, k := range pressed {
		if e, ok := keyEvent(k, true); ok {
			i.LastKey = e
		}
	}
}

func keyEvent(k ebiten.Key, down bool) (obj.Event, bool) {
	name, ok := keyNames[k]
	if !ok {
		return obj.None, false
	}
	prefix := "RELEASE "
	if down {
		prefix = "PRESS "
	}
	// "RELEASE up" is not part of the vocabulary
	return obj.ParseEvent(prefix + name)
}

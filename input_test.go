package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritedog/obj"
)

func TestInputFeed(t *testing.T) {
	cases := []struct {
		name     string
		start    obj.Event
		pressed  []ebiten.Key
		released []ebiten.Key
		want     obj.Event
	}{
		{"press_right", obj.None, []ebiten.Key{ebiten.KeyArrowRight}, nil, obj.PressRight},
		{"wasd_left", obj.None, []ebiten.Key{ebiten.KeyA}, nil, obj.PressLeft},
		{"release_down", obj.PressDown, nil, []ebiten.Key{ebiten.KeyArrowDown}, obj.ReleaseDown},
		{"release_up_ignored", obj.PressUp, nil, []ebiten.Key{ebiten.KeyArrowUp}, obj.PressUp},
		{"untracked_key", obj.PressLeft, []ebiten.Key{ebiten.KeySpace}, nil, obj.PressLeft},
		{"press_beats_release", obj.PressLeft, []ebiten.Key{ebiten.KeyArrowRight}, []ebiten.Key{ebiten.KeyArrowLeft}, obj.PressRight},
		{"no_edges_keeps_last", obj.PressRight, nil, nil, obj.PressRight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := NewInput()
			in.LastKey = c.start
			in.Feed(c.pressed, c.released)
			if in.LastKey != c.want {
				t.Fatalf("LastKey = %q, want %q", in.LastKey, c.want)
			}
		})
	}
}

func TestHeldKeyKeepsRunning(t *testing.T) {
	in := NewInput()
	p := obj.NewPlayer(obj.DefaultPlayerConfig(1280, 720))

	in.Feed([]ebiten.Key{ebiten.KeyArrowRight}, nil)
	for i := 0; i < 5; i++ {
		p.Update(in.LastKey)
		in.Feed(nil, nil)
	}
	if p.State() != obj.RunningRight {
		t.Fatalf("state = %s, want %s", p.State(), obj.RunningRight)
	}

	in.Feed(nil, []ebiten.Key{ebiten.KeyArrowRight})
	p.Update(in.LastKey)
	if p.State() != obj.StandingRight {
		t.Fatalf("state = %s, want %s", p.State(), obj.StandingRight)
	}
}

package obj

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Autopilot drives the player from a tengo script instead of the keyboard.
// Each tick the script sees the globals tick, state, on_ground, x, y and vy
// and assigns the string global event.
type Autopilot struct {
	name     string
	compiled *tengo.Compiled
	tick     int
}

// NewAutopilot compiles src once. name is only used in error messages.
func NewAutopilot(name string, src []byte) (*Autopilot, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("state", "")
	_ = script.Add("on_ground", false)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("vy", 0.0)
	_ = script.Add("event", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

// Next runs the script for the current tick and returns the event it chose.
// Strings outside the input vocabulary come back as-is and are ignored by
// the player like any unknown key.
func (a *Autopilot) Next(p *Player) (Event, error) {
	if a == nil || a.compiled == nil {
		return None, fmt.Errorf("autopilot: nil script")
	}
	vars := map[string]any{
		"tick":  a.tick,
		"event": "",
	}
	if p != nil {
		vars["state"] = p.State().String()
		vars["on_ground"] = p.OnGround()
		vars["x"] = p.X
		vars["y"] = p.Y
		vars["vy"] = p.VY
	}
	for k, v := range vars {
		if err := a.compiled.Set(k, v); err != nil {
			return None, fmt.Errorf("autopilot: %s: set %s: %w", a.name, k, err)
		}
	}
	if err := a.compiled.Run(); err != nil {
		return None, fmt.Errorf("autopilot: %s: tick %d: %w", a.name, a.tick, err)
	}
	a.tick++

	ev := a.compiled.Get("event")
	if ev.IsUndefined() {
		return None, nil
	}
	return Event(strings.TrimSpace(ev.String())), nil
}

// Tick returns how many ticks the script has run.
func (a *Autopilot) Tick() int { return a.tick }

package obj

import (
	"log"

	"github.com/milk9111/spritedog/common"
	"github.com/milk9111/spritedog/component"
)

// Renderer receives the single sprite blit issued by Player.Draw: src is a
// rectangle on the spritesheet, dst is where it lands on screen.
type Renderer interface {
	DrawSprite(src, dst common.Rect)
}

// PlayerConfig holds the tunables of a Player.
type PlayerConfig struct {
	GameWidth  float64
	GameHeight float64
	// FrameW/FrameH are the spritesheet cell size, also used as the
	// player's collision box.
	FrameW float64
	FrameH float64

	MaxSpeed    float64
	Weight      float64
	JumpImpulse float64
	// AirControl scales MaxSpeed for the sideways nudge while airborne.
	AirControl float64
	FPS        float64
}

// DefaultPlayerConfig returns the stock dog tuning for a gameWidth x
// gameHeight playfield: a 1800x2182 sheet of 9x12 cells.
func DefaultPlayerConfig(gameWidth, gameHeight float64) PlayerConfig {
	return PlayerConfig{
		GameWidth:   gameWidth,
		GameHeight:  gameHeight,
		FrameW:      1800.0 / 9,
		FrameH:      2182.0 / 12,
		MaxSpeed:    10,
		Weight:      0.5,
		JumpImpulse: 20,
		AirControl:  0.5,
		FPS:         25,
	}
}

type Player struct {
	common.Rect
	VY          float64
	Speed       float64
	MaxSpeed    float64
	Weight      float64
	JumpImpulse float64
	AirControl  float64
	GameWidth   float64
	GameHeight  float64

	Anim component.Animation

	// Debug logs every state transition.
	Debug bool

	state StateID
}

// NewPlayer places the player centred on the ground line, standing right.
func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{
		Rect: common.Rect{
			Width:  cfg.FrameW,
			Height: cfg.FrameH,
		},
		Anim: component.NewAnimation(cfg.FPS),
	}
	p.applyConfig(cfg)
	p.X = p.GameWidth/2 - p.Width/2
	p.Y = p.GameHeight - p.Height
	p.state = StandingRight
	stateTable[p.state].Enter(p)
	return p
}

func (p *Player) applyConfig(cfg PlayerConfig) {
	p.GameWidth = cfg.GameWidth
	p.GameHeight = cfg.GameHeight
	p.Width = cfg.FrameW
	p.Height = cfg.FrameH
	p.MaxSpeed = cfg.MaxSpeed
	p.Weight = cfg.Weight
	p.JumpImpulse = cfg.JumpImpulse
	p.AirControl = cfg.AirControl
	p.Anim.SetFPS(cfg.FPS)
}

// Retune swaps in new tuning while keeping the active state, position and
// animation. Running states pick up the new MaxSpeed immediately.
func (p *Player) Retune(cfg PlayerConfig) {
	p.applyConfig(cfg)
	switch p.state {
	case RunningLeft:
		p.Speed = -p.MaxSpeed
	case RunningRight:
		p.Speed = p.MaxSpeed
	}
	p.clamp()
}

// State returns the active state.
func (p *Player) State() StateID { return p.state }

// SetState makes id the active state and runs its entry effect. Unknown ids
// are ignored.
func (p *Player) SetState(id StateID) {
	if !id.Valid() {
		return
	}
	if p.Debug {
		log.Printf("player: %s -> %s", p.state, id)
	}
	p.state = id
	stateTable[id].Enter(p)
}

// OnGround reports whether the player stands on the ground line.
func (p *Player) OnGround() bool {
	return p.Y >= p.GameHeight-p.Height
}

// Update runs one simulation tick with the tick's input event.
func (p *Player) Update(e Event) {
	stateTable[p.state].HandleInput(p, e)

	// horizontal movement
	p.X += p.Speed
	p.X = common.Clamp(p.X, 0, p.GameWidth-p.Width)

	// vertical movement
	p.Y += p.VY
	if !p.OnGround() {
		p.VY += p.Weight
	} else {
		p.VY = 0
	}
	if p.Y > p.GameHeight-p.Height {
		p.Y = p.GameHeight - p.Height
	}
}

// Draw advances the animation by dt milliseconds and blits the current frame.
func (p *Player) Draw(r Renderer, dt float64) {
	p.Anim.Advance(dt)
	if r == nil {
		return
	}
	r.DrawSprite(p.Anim.Source(p.Width, p.Height), p.Rect)
}

func (p *Player) clamp() {
	p.X = common.Clamp(p.X, 0, p.GameWidth-p.Width)
	if p.Y > p.GameHeight-p.Height {
		p.Y = p.GameHeight - p.Height
	}
}

// jump applies the take-off impulse. Only a grounded player can take off,
// so re-entering a jump state mid-air never stacks velocity.
func (p *Player) jump() {
	if p.OnGround() {
		p.VY -= p.JumpImpulse
	}
}

// steer nudges the player sideways while airborne; dir is -1 or 1.
func (p *Player) steer(dir float64) {
	p.Speed = dir * p.MaxSpeed * p.AirControl
}

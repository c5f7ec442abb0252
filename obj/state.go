package obj

import "fmt"

// StateID names one of the player's animation states.
type StateID int

const (
	StandingLeft StateID = iota
	StandingRight
	SittingLeft
	SittingRight
	RunningLeft
	RunningRight
	JumpingLeft
	JumpingRight
	FallingLeft
	FallingRight

	stateCount
)

var stateNames = [stateCount]string{
	StandingLeft:  "STANDING LEFT",
	StandingRight: "STANDING RIGHT",
	SittingLeft:   "SITTING LEFT",
	SittingRight:  "SITTING RIGHT",
	RunningLeft:   "RUNNING LEFT",
	RunningRight:  "RUNNING RIGHT",
	JumpingLeft:   "JUMPING LEFT",
	JumpingRight:  "JUMPING RIGHT",
	FallingLeft:   "FALLING LEFT",
	FallingRight:  "FALLING RIGHT",
}

func (s StateID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("StateID(%d)", int(s))
	}
	return stateNames[s]
}

func (s StateID) Valid() bool {
	return s >= 0 && s < stateCount
}

// States lists every state in table order.
func States() []StateID {
	out := make([]StateID, 0, stateCount)
	for s := StateID(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// State is the interface each concrete player state implements. Enter runs
// once when the state becomes active, before its first HandleInput.
// HandleInput runs once per tick and requests at most one transition.
type State interface {
	Enter(p *Player)
	HandleInput(p *Player, e Event)
}

// Sprite-sheet rows and strip lengths.
const (
	rowStandingRight = 0
	rowStandingLeft  = 1
	rowJumpingRight  = 2
	rowJumpingLeft   = 3
	rowFallingRight  = 4
	rowFallingLeft   = 5
	rowRunningRight  = 6
	rowRunningLeft   = 7
	rowSittingRight  = 8
	rowSittingLeft   = 9

	standFrames = 6
	sitFrames   = 4
	runFrames   = 8
	airFrames   = 6
)

// singletons for each state to avoid allocating on every transition
var stateTable = [stateCount]State{
	StandingLeft:  standingLeftState{},
	StandingRight: standingRightState{},
	SittingLeft:   sittingLeftState{},
	SittingRight:  sittingRightState{},
	RunningLeft:   runningLeftState{},
	RunningRight:  runningRightState{},
	JumpingLeft:   jumpingLeftState{},
	JumpingRight:  jumpingRightState{},
	FallingLeft:   fallingLeftState{},
	FallingRight:  fallingRightState{},
}

type standingLeftState struct{}

func (standingLeftState) Enter(p *Player) {
	p.Anim.SetStrip(rowStandingLeft, standFrames)
	p.Speed = 0
}
func (standingLeftState) HandleInput(p *Player, e Event) {
	switch e {
	case PressRight:
		p.SetState(RunningRight)
	case PressLeft:
		p.SetState(RunningLeft)
	case PressDown:
		p.SetState(SittingLeft)
	case PressUp:
		p.SetState(JumpingLeft)
	}
}

type standingRightState struct{}

func (standingRightState) Enter(p *Player) {
	p.Anim.SetStrip(rowStandingRight, standFrames)
	p.Speed = 0
}
func (standingRightState) HandleInput(p *Player, e Event) {
	switch e {
	case PressLeft:
		p.SetState(RunningLeft)
	case PressRight:
		p.SetState(RunningRight)
	case PressDown:
		p.SetState(SittingRight)
	case PressUp:
		p.SetState(JumpingRight)
	}
}

type sittingLeftState struct{}

func (sittingLeftState) Enter(p *Player) {
	p.Anim.SetStrip(rowSittingLeft, sitFrames)
	p.Speed = 0
}
func (sittingLeftState) HandleInput(p *Player, e Event) {
	switch e {
	case PressRight:
		p.SetState(SittingRight)
	case ReleaseDown:
		p.SetState(StandingLeft)
	}
}

type sittingRightState struct{}

func (sittingRightState) Enter(p *Player) {
	p.Anim.SetStrip(rowSittingRight, sitFrames)
	p.Speed = 0
}
func (sittingRightState) HandleInput(p *Player, e Event) {
	switch e {
	case PressLeft:
		p.SetState(SittingLeft)
	case ReleaseDown:
		p.SetState(StandingRight)
	}
}

type runningLeftState struct{}

func (runningLeftState) Enter(p *Player) {
	p.Anim.SetStrip(rowRunningLeft, runFrames)
	p.Speed = -p.MaxSpeed
}
func (runningLeftState) HandleInput(p *Player, e Event) {
	switch e {
	case PressRight:
		p.SetState(RunningRight)
	case ReleaseLeft:
		p.SetState(StandingLeft)
	case PressDown:
		p.SetState(SittingLeft)
	}
}

type runningRightState struct{}

func (runningRightState) Enter(p *Player) {
	p.Anim.SetStrip(rowRunningRight, runFrames)
	p.Speed = p.MaxSpeed
}
func (runningRightState) HandleInput(p *Player, e Event) {
	switch e {
	case PressLeft:
		p.SetState(RunningLeft)
	case ReleaseRight:
		p.SetState(StandingRight)
	case PressDown:
		p.SetState(SittingRight)
	}
}

// Airborne states check physics between the facing switch and air control,
// so the order of the if/else chain matters.

type jumpingLeftState struct{}

func (jumpingLeftState) Enter(p *Player) {
	p.Anim.SetStrip(rowJumpingLeft, airFrames)
	p.jump()
}
func (jumpingLeftState) HandleInput(p *Player, e Event) {
	if e == PressRight {
		p.SetState(JumpingRight)
	} else if p.OnGround() {
		p.SetState(StandingLeft)
	} else if p.VY > 0 {
		p.SetState(FallingLeft)
	} else if e == PressLeft {
		p.steer(-1)
	}
}

type jumpingRightState struct{}

func (jumpingRightState) Enter(p *Player) {
	p.Anim.SetStrip(rowJumpingRight, airFrames)
	p.jump()
}
func (jumpingRightState) HandleInput(p *Player, e Event) {
	if e == PressLeft {
		p.SetState(JumpingLeft)
	} else if p.OnGround() {
		p.SetState(StandingRight)
	} else if p.VY > 0 {
		p.SetState(FallingRight)
	} else if e == PressRight {
		p.steer(1)
	}
}

type fallingLeftState struct{}

func (fallingLeftState) Enter(p *Player) {
	p.Anim.SetStrip(rowFallingLeft, airFrames)
}
func (fallingLeftState) HandleInput(p *Player, e Event) {
	if e == PressRight {
		p.SetState(FallingRight)
	} else if p.OnGround() {
		p.SetState(StandingLeft)
	} else if e == PressLeft {
		p.steer(-1)
	}
}

type fallingRightState struct{}

func (fallingRightState) Enter(p *Player) {
	p.Anim.SetStrip(rowFallingRight, airFrames)
}
func (fallingRightState) HandleInput(p *Player, e Event) {
	if e == PressLeft {
		p.SetState(FallingLeft)
	} else if p.OnGround() {
		p.SetState(StandingRight)
	} else if e == PressRight {
		p.steer(1)
	}
}

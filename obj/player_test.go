package obj

import (
	"math/rand"
	"testing"

	"github.com/milk9111/spritedog/common"
)

func newTestPlayer() *Player {
	return NewPlayer(DefaultPlayerConfig(1280, 720))
}

type blit struct {
	src, dst common.Rect
}

type recordingRenderer struct {
	blits []blit
}

func (r *recordingRenderer) DrawSprite(src, dst common.Rect) {
	r.blits = append(r.blits, blit{src: src, dst: dst})
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()
	if p.State() != StandingRight {
		t.Fatalf("state = %s, want %s", p.State(), StandingRight)
	}
	if p.Width != 200 {
		t.Fatalf("Width = %v, want 200", p.Width)
	}
	if p.X != 1280/2-100 {
		t.Fatalf("X = %v, want %v", p.X, 1280/2-100)
	}
	if !p.OnGround() {
		t.Fatalf("player should start on the ground")
	}
	if p.Anim.FrameY != 0 || p.Anim.MaxFrame != 6 || p.Speed != 0 {
		t.Fatalf("unexpected start: FrameY=%d MaxFrame=%d Speed=%v", p.Anim.FrameY, p.Anim.MaxFrame, p.Speed)
	}
}

func TestRunAndStopScenario(t *testing.T) {
	p := newTestPlayer()

	p.Update(PressRight)
	if p.State() != RunningRight {
		t.Fatalf("state = %s, want %s", p.State(), RunningRight)
	}
	if p.Anim.FrameY != 6 || p.Speed != p.MaxSpeed {
		t.Fatalf("FrameY=%d Speed=%v, want 6 and %v", p.Anim.FrameY, p.Speed, p.MaxSpeed)
	}

	p.Update(ReleaseRight)
	if p.State() != StandingRight {
		t.Fatalf("state = %s, want %s", p.State(), StandingRight)
	}
	if p.Speed != 0 {
		t.Fatalf("Speed = %v, want 0", p.Speed)
	}
}

func TestAirborneJumpBecomesFall(t *testing.T) {
	p := newTestPlayer()
	p.Y = 100
	p.SetState(JumpingRight)
	p.VY = -5
	if p.OnGround() {
		t.Fatalf("player should be airborne")
	}

	for i := 0; i < 100 && p.State() == JumpingRight; i++ {
		p.Update(None)
	}
	if p.State() != FallingRight {
		t.Fatalf("state = %s, want %s", p.State(), FallingRight)
	}
	if p.VY <= 0 {
		t.Fatalf("VY = %v, want > 0 once falling", p.VY)
	}
}

func TestJumpImpulseDoesNotStack(t *testing.T) {
	p := newTestPlayer()
	p.Update(PressUp)
	if p.State() != JumpingRight {
		t.Fatalf("state = %s, want %s", p.State(), JumpingRight)
	}
	if p.VY != -19.5 {
		t.Fatalf("VY after take-off tick = %v, want -19.5", p.VY)
	}

	vy := p.VY
	p.SetState(JumpingLeft)
	p.SetState(JumpingRight)
	if p.VY != vy {
		t.Fatalf("re-entering a jump mid-air changed VY from %v to %v", vy, p.VY)
	}
}

func TestFullJumpArc(t *testing.T) {
	p := newTestPlayer()
	ground := p.Y
	p.Update(PressUp)

	sawFall := false
	for i := 0; i < 500 && p.State() != StandingRight; i++ {
		p.Update(None)
		if p.State() == FallingRight {
			sawFall = true
		}
		if p.Y > ground {
			t.Fatalf("tick %d: Y = %v sank below ground %v", i, p.Y, ground)
		}
	}
	if !sawFall {
		t.Fatalf("jump never passed through %s", FallingRight)
	}
	if p.State() != StandingRight {
		t.Fatalf("state = %s, want %s", p.State(), StandingRight)
	}
	if !p.OnGround() || p.VY != 0 {
		t.Fatalf("landed with Y=%v VY=%v", p.Y, p.VY)
	}
}

func TestHorizontalBounds(t *testing.T) {
	cases := []struct {
		name  string
		press Event
		wantX func(p *Player) float64
	}{
		{"left_wall", PressLeft, func(p *Player) float64 { return 0 }},
		{"right_wall", PressRight, func(p *Player) float64 { return p.GameWidth - p.Width }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			for i := 0; i < 200; i++ {
				p.Update(c.press)
			}
			if p.X != c.wantX(p) {
				t.Fatalf("X = %v, want %v", p.X, c.wantX(p))
			}
		})
	}
}

func TestRandomInputKeepsInvariants(t *testing.T) {
	events := []Event{
		None, PressLeft, PressRight, PressUp, PressDown,
		ReleaseLeft, ReleaseRight, ReleaseDown, "PRESS space",
	}
	rng := rand.New(rand.NewSource(7))
	p := newTestPlayer()
	r := &recordingRenderer{}
	for i := 0; i < 5000; i++ {
		p.Update(events[rng.Intn(len(events))])
		p.Draw(r, float64(rng.Intn(60)))

		if !p.State().Valid() {
			t.Fatalf("tick %d: invalid state %d", i, p.State())
		}
		if p.X < 0 || p.X > p.GameWidth-p.Width {
			t.Fatalf("tick %d: X = %v out of bounds", i, p.X)
		}
		if p.Y > p.GameHeight-p.Height {
			t.Fatalf("tick %d: Y = %v below ground", i, p.Y)
		}
		if p.Anim.FrameX < 0 || p.Anim.FrameX > p.Anim.MaxFrame {
			t.Fatalf("tick %d: FrameX = %d outside 0..%d", i, p.Anim.FrameX, p.Anim.MaxFrame)
		}
	}
}

func TestDrawIssuesOneBlit(t *testing.T) {
	p := newTestPlayer()
	r := &recordingRenderer{}

	p.Draw(r, 10)
	if p.Anim.FrameX != 0 {
		t.Fatalf("FrameX = %d after 10ms, want 0", p.Anim.FrameX)
	}
	p.Draw(r, 30)
	if p.Anim.FrameX != 1 {
		t.Fatalf("FrameX = %d after 40ms, want 1", p.Anim.FrameX)
	}
	if len(r.blits) != 2 {
		t.Fatalf("got %d blits, want 2", len(r.blits))
	}

	last := r.blits[1]
	wantSrc := common.Rect{X: p.Width, Y: 0, Width: p.Width, Height: p.Height}
	if last.src != wantSrc {
		t.Fatalf("src = %+v, want %+v", last.src, wantSrc)
	}
	if last.dst != p.Rect {
		t.Fatalf("dst = %+v, want %+v", last.dst, p.Rect)
	}
}

func TestDrawWrapsAtMaxFrame(t *testing.T) {
	p := newTestPlayer()
	p.SetState(SittingRight)
	seen := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		p.Draw(nil, p.Anim.Interval)
		seen = append(seen, p.Anim.FrameX)
	}
	want := []int{1, 2, 3, 4, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
}

func TestSetStateIgnoresInvalid(t *testing.T) {
	p := newTestPlayer()
	p.SetState(StateID(-1))
	p.SetState(stateCount)
	if p.State() != StandingRight {
		t.Fatalf("state = %s, want %s", p.State(), StandingRight)
	}
}

func TestRetuneKeepsState(t *testing.T) {
	p := newTestPlayer()
	p.Update(PressRight)

	cfg := DefaultPlayerConfig(1280, 720)
	cfg.MaxSpeed = 4
	cfg.FPS = 10
	p.Retune(cfg)

	if p.State() != RunningRight {
		t.Fatalf("state = %s, want %s", p.State(), RunningRight)
	}
	if p.Speed != 4 {
		t.Fatalf("Speed = %v, want 4", p.Speed)
	}
	if p.Anim.Interval != 100 {
		t.Fatalf("Interval = %v, want 100", p.Anim.Interval)
	}
}

func TestRetuneClampsIntoSmallerField(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 200; i++ {
		p.Update(PressRight)
	}
	p.Retune(DefaultPlayerConfig(800, 600))
	if p.X != 600 {
		t.Fatalf("X = %v, want 600", p.X)
	}
	if p.Y > 600-p.Height {
		t.Fatalf("Y = %v below the new ground", p.Y)
	}
}

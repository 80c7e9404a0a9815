package inject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"padkit/host"
	"padkit/pad"
)

// fakeJoystick is a mutable controller: tests flip buttons, the hat and
// axes between frames. Layout is a standard Xbox-style pad: axes 0-3
// are the sticks (rest 0), axes 4-5 the triggers (rest -1).
type fakeJoystick struct {
	axes    []float64
	buttons []bool
	hat     [2]int
}

func newFakeJoystick() *fakeJoystick {
	return &fakeJoystick{
		axes:    []float64{0, 0, 0, 0, -1, -1},
		buttons: make([]bool, 10),
	}
}

func (j *fakeJoystick) Name() string         { return "fake pad" }
func (j *fakeJoystick) NumAxes() int         { return len(j.axes) }
func (j *fakeJoystick) Axis(i int) float64   { return j.axes[i] }
func (j *fakeJoystick) NumButtons() int      { return len(j.buttons) }
func (j *fakeJoystick) Button(i int) bool    { return j.buttons[i] }
func (j *fakeJoystick) NumHats() int         { return 1 }
func (j *fakeJoystick) Hat(i int) (int, int) { return j.hat[0], j.hat[1] }
func (j *fakeJoystick) Close()               {}

type fakeBackend struct {
	joy   *fakeJoystick
	count int
}

func (b *fakeBackend) Rescan() (int, error)       { return b.count, nil }
func (b *fakeBackend) NumJoysticks() (int, error) { return b.count, nil }

func (b *fakeBackend) Open(index int) (pad.Joystick, error) {
	return b.joy, nil
}

type fakeActor struct {
	pos host.Point
}

func (a *fakeActor) Pos() host.Point { return a.pos }

// fakeSpell is a selectable entry that is its own targeting capability.
type fakeSpell struct {
	name string
}

func (s *fakeSpell) Targeter() host.Targeter       { return s }
func (s *fakeSpell) CanTarget(host.Point) bool     { return true }
func (s *fakeSpell) TargetableTiles() []host.Point { return nil }
func (s *fakeSpell) Range() int                    { return 5 }
func (s *fakeSpell) RequiresLOS() bool             { return true }
func (s *fakeSpell) Cast(host.Point)               {}

// fakeHost records every pipeline interaction with the game.
type fakeHost struct {
	mode    host.Mode
	frame   uint64
	canAct  bool
	actor   *fakeActor
	spells  []host.Selectable
	items   []host.Selectable
	blocked map[host.Point]bool
	width   int
	height  int

	targeter     host.Targeter
	target       *host.Point
	deployTarget *host.Point

	aborted  int
	sounds   []string
	events   []host.Event
	moves    []host.Point
	examined []host.Point

	keys map[host.Action]host.Keycode
}

func newFakeHost() *fakeHost {
	keys := make(map[host.Action]host.Keycode)
	for a := host.ActionConfirm; a <= host.ActionDownRight; a++ {
		keys[a] = host.Keycode(1000 + int(a))
	}
	return &fakeHost{
		mode:    host.ModeLevel,
		canAct:  true,
		actor:   &fakeActor{pos: host.Pt(5, 5)},
		blocked: make(map[host.Point]bool),
		width:   12,
		height:  12,
		keys:    keys,
	}
}

func (h *fakeHost) Mode() host.Mode { return h.mode }
func (h *fakeHost) Frame() uint64   { return h.frame }
func (h *fakeHost) CanAct() bool    { return h.canAct }

func (h *fakeHost) Actor() host.Actor {
	if h.actor == nil {
		return nil
	}
	return h.actor
}

func (h *fakeHost) Spells() []host.Selectable { return h.spells }
func (h *fakeHost) Items() []host.Selectable  { return h.items }

func (h *fakeHost) Targeter() host.Targeter { return h.targeter }

func (h *fakeHost) SetTargeter(t host.Targeter) {
	h.targeter = t
	if t == nil {
		h.target = nil
	}
}

func (h *fakeHost) AbortTargeter() {
	h.aborted++
	h.targeter = nil
	h.target = nil
}

func (h *fakeHost) Target() (host.Point, bool) {
	if h.target == nil {
		return host.Point{}, false
	}
	return *h.target, true
}

func (h *fakeHost) SetTarget(p host.Point) { h.target = &p }

func (h *fakeHost) DeployTarget() (host.Point, bool) {
	if h.deployTarget == nil {
		return host.Point{}, false
	}
	return *h.deployTarget, true
}

func (h *fakeHost) SetDeployTarget(p host.Point) { h.deployTarget = &p }

func (h *fakeHost) CanMoveTo(p host.Point) bool {
	return h.InBounds(p) && !h.blocked[p]
}

func (h *fakeHost) Move(delta host.Point) bool {
	dst := h.actor.pos.Add(delta)
	if !h.CanMoveTo(dst) {
		return false
	}
	h.actor.pos = dst
	h.moves = append(h.moves, delta)
	return true
}

func (h *fakeHost) Examine(p host.Point)  { h.examined = append(h.examined, p) }
func (h *fakeHost) PlaySound(name string) { h.sounds = append(h.sounds, name) }
func (h *fakeHost) Push(ev host.Event)    { h.events = append(h.events, ev) }

func (h *fakeHost) KeyFor(a host.Action) (host.Keycode, bool) {
	k, ok := h.keys[a]
	return k, ok
}

func (h *fakeHost) InBounds(p host.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < h.width && p.Y < h.height
}

func (h *fakeHost) DeployInBounds(p host.Point) bool { return h.InBounds(p) }

// actions projects the pushed events onto their actions.
func (h *fakeHost) actions() []host.Action {
	var as []host.Action
	for _, ev := range h.events {
		as = append(as, ev.Action)
	}
	return as
}

// A rig wires a pipeline to a fake host and a fake controller. Repeat
// delays are set far beyond any test, and the debounce to zero, so a
// held direction fires exactly once and every fire is deterministic
// under the fixed clock.
type rig struct {
	h   *fakeHost
	joy *fakeJoystick
	p   *Pipeline
}

func testConfig() pad.Config {
	cfg := pad.DefaultConfig
	cfg.Repeat.MoveDelay = pad.Duration(time.Hour)
	cfg.Repeat.MoveInterval = pad.Duration(time.Hour)
	cfg.Repeat.CursorDelay = pad.Duration(time.Hour)
	cfg.Repeat.CursorInterval = pad.Duration(time.Hour)
	cfg.Repeat.Debounce = 0
	return cfg
}

func newRig(t *testing.T) *rig {
	t.Helper()

	h := newFakeHost()
	joy := newFakeJoystick()
	cfg := testConfig()
	clock := func() time.Time { return time.Unix(1000, 0) }
	dev := pad.NewDeviceWith(cfg, &fakeBackend{joy: joy, count: 1}, clock)
	require.True(t, dev.Connect(), "fake controller must connect")
	return &rig{h: h, joy: joy, p: New(h, dev, cfg)}
}

// step advances the host one frame and runs the pipeline.
func (r *rig) step() {
	r.h.frame++
	r.p.Inject()
}

func (r *rig) stepRaw() {
	r.h.frame++
	r.p.InjectRaw()
}

func (r *rig) press(btn int)   { r.joy.buttons[btn] = true }
func (r *rig) release(btn int) { r.joy.buttons[btn] = false }
func (r *rig) hat(dx, dy int)  { r.joy.hat = [2]int{dx, dy} }

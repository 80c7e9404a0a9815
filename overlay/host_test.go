package overlay

import (
	"padkit/host"
)

// fakeActor is a player standing on a tile.
type fakeActor struct {
	pos host.Point
}

func (a *fakeActor) Pos() host.Point { return a.pos }

// fakeSpell is a directly-selectable entry: it is its own targeter.
type fakeSpell struct {
	name string
}

func (s *fakeSpell) Targeter() host.Targeter       { return s }
func (s *fakeSpell) CanTarget(host.Point) bool     { return true }
func (s *fakeSpell) TargetableTiles() []host.Point { return nil }
func (s *fakeSpell) Range() int                    { return 5 }
func (s *fakeSpell) RequiresLOS() bool             { return true }
func (s *fakeSpell) Cast(host.Point)               {}

// fakeItem wraps an inner spell, like consumables do.
type fakeItem struct {
	spell *fakeSpell
}

func (it *fakeItem) Targeter() host.Targeter { return it.spell }

// fakeHost records every interaction the overlays have with the game.
type fakeHost struct {
	mode    host.Mode
	frame   uint64
	canAct  bool
	actor   *fakeActor
	spells  []host.Selectable
	items   []host.Selectable
	blocked map[host.Point]bool // tiles movement rules forbid
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
	// targeter value observed at the moment of each Move call, to
	// verify overlays clear preview state before moving
	targeterAtMove []host.Targeter

	keys map[host.Action]host.Keycode
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		mode:    host.ModeLevel,
		canAct:  true,
		actor:   &fakeActor{pos: host.Pt(5, 5)},
		blocked: make(map[host.Point]bool),
		width:   12,
		height:  12,
		keys: map[host.Action]host.Keycode{
			host.ActionConfirm: host.KeyReturn,
			host.ActionAbort:   host.KeyEscape,
		},
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
	h.targeterAtMove = append(h.targeterAtMove, h.targeter)
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

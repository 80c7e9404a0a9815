package overlay

import (
	"padkit/host"
	"padkit/log"
)

// stepTargeter is the synthetic targeting capability installed while
// the walk-target overlay is active. It exposes just enough of the
// Targeter contract for the host's targeting display to work, and its
// legality check delegates to the host's ordinary movement rules, so
// obstruction, hazards and occupant swaps are all respected.
type stepTargeter struct {
	h      host.Host
	origin host.Point
}

func (s *stepTargeter) CanTarget(p host.Point) bool {
	d := p.Sub(s.origin)
	if d.IsZero() || d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
		return false
	}
	return s.h.CanMoveTo(p)
}

func (s *stepTargeter) TargetableTiles() []host.Point {
	var tiles []host.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := s.origin.Add(host.Pt(dx, dy))
			if s.h.InBounds(p) && s.h.CanMoveTo(p) {
				tiles = append(tiles, p)
			}
		}
	}
	return tiles
}

func (s *stepTargeter) Range() int        { return 1 }
func (s *stepTargeter) RequiresLOS() bool { return false }

// Cast is a no-op: the capability is never meant to be cast, but the
// host must not malfunction if it ever invokes it.
func (s *stepTargeter) Cast(host.Point) {}

// WalkTarget is the modal overlay for choosing one of the up to 8
// adjacent cells. Aim is always expressed as origin + offset, never
// accumulated, so repeated re-aiming cannot drift.
type WalkTarget struct {
	h      host.Host
	active bool
	origin host.Point
	aim    host.Point
	step   *stepTargeter
}

func NewWalkTarget(h host.Host) *WalkTarget {
	return &WalkTarget{h: h}
}

func (w *WalkTarget) Active() bool { return w.active }

// Enter captures the actor's position as the fixed origin and installs
// the synthetic targeting capability into host preview state.
func (w *WalkTarget) Enter() bool {
	actor := w.h.Actor()
	if actor == nil {
		return false
	}

	w.origin = actor.Pos()
	w.aim = w.origin
	w.step = &stepTargeter{h: w.h, origin: w.origin}
	w.h.SetTargeter(w.step)
	w.h.SetTarget(w.origin)
	w.active = true

	log.ModWalk.DebugZ("entered").Stringer("origin", w.origin).End()
	return true
}

// consistent verifies the host preview still references our synthetic
// capability. Anything else means something external replaced or
// cleared it: force-clear local state, no host interaction.
func (w *WalkTarget) consistent() bool {
	if !w.active || w.step == nil {
		return false
	}
	if t, ok := w.h.Targeter().(*stepTargeter); !ok || t != w.step {
		log.ModWalk.DebugZ("preview replaced externally, clearing").End()
		w.clear()
		return false
	}
	return true
}

func (w *WalkTarget) clear() {
	w.active = false
	w.step = nil
}

// Update aims at origin + dir. A neutral dir keeps the last aim, so a
// stable choice can be observed before release.
func (w *WalkTarget) Update(dir host.Point) {
	if !w.consistent() {
		return
	}
	if dir.IsZero() {
		return
	}

	p := w.origin.Add(dir)
	if !w.h.InBounds(p) {
		return
	}
	w.aim = p
	w.h.SetTarget(p)
	w.h.Examine(p)
}

// Exit leaves the overlay. With commit, a legal non-origin aim turns
// into one ordinary host move; an illegal aim or an explicit cancel
// plays the abort cue; an untouched aim cancels silently. Overlay
// state is cleared before any host move, so the host's own turn
// processing never observes the synthetic capability. Reports whether
// a move occurred.
func (w *WalkTarget) Exit(commit bool) bool {
	if !w.active {
		return false
	}
	if !w.consistent() {
		return false
	}

	step, aim, origin := w.step, w.aim, w.origin
	w.clear()
	w.h.SetTargeter(nil)

	if !commit {
		w.h.PlaySound(SoundAbort)
		log.ModWalk.DebugZ("exit cancelled").End()
		return false
	}

	delta := aim.Sub(origin)
	if delta.IsZero() {
		// Never aimed: silent cancel.
		log.ModWalk.DebugZ("exit, no aim").End()
		return false
	}
	if !step.CanTarget(aim) {
		w.h.PlaySound(SoundAbort)
		log.ModWalk.DebugZ("exit, illegal target").Stringer("aim", aim).End()
		return false
	}

	moved := w.h.Move(delta)
	log.ModWalk.DebugZ("exit walk").
		Stringer("delta", delta).
		Bool("moved", moved).
		End()
	return moved
}

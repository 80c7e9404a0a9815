// Package inject orchestrates the controller input pipeline: once per
// host frame it polls the device, lets the active modal overlay (if
// any) consume the input, and otherwise maps physical input to host
// logical actions, emitting synthetic events into the host's queue.
package inject

import (
	"time"

	"padkit/host"
	"padkit/log"
	"padkit/overlay"
	"padkit/pad"
)

// A Pipeline owns every piece of per-process input state: the device,
// the three repeater channels and the two modal overlays. All of its
// work runs synchronously inside the host's per-frame input hook,
// before the host's own input processing.
type Pipeline struct {
	h   host.Host
	dev *pad.Device
	cfg pad.Config

	move   *pad.Repeater
	cursor *pad.Repeater
	browse *pad.Repeater

	browseUI *overlay.Browse
	walk     *overlay.WalkTarget

	lastFrame int64
	queued    []host.Event
}

// New builds a pipeline around the given host and device.
func New(h host.Host, dev *pad.Device, cfg pad.Config) *Pipeline {
	rep := cfg.Repeat
	return &Pipeline{
		h:         h,
		dev:       dev,
		cfg:       cfg,
		move:      pad.NewRepeater(time.Duration(rep.MoveDelay), time.Duration(rep.MoveInterval), rep),
		cursor:    pad.NewRepeater(time.Duration(rep.CursorDelay), time.Duration(rep.CursorInterval), rep),
		browse:    pad.NewRepeater(time.Duration(rep.MoveDelay), time.Duration(rep.MoveInterval), rep),
		browseUI:  overlay.NewBrowse(h),
		walk:      overlay.NewWalkTarget(h),
		lastFrame: -1,
	}
}

// Inject runs the full pipeline for the current host frame. Re-entrant
// calls within one frame are no-ops.
func (p *Pipeline) Inject() {
	if !p.begin() {
		return
	}

	p.queued = p.queued[:0]

	// Consistency pass: never leave a stale overlay behind when the
	// host changed mode or the preview was cleared under us.
	if p.browseUI.IsOpen() {
		if p.h.Mode() != host.ModeLevel || p.h.Targeter() == nil {
			p.browseUI.ForceClear()
		}
	}
	if p.walk.Active() && p.h.Mode() != host.ModeLevel {
		p.walk.Exit(false)
	}

	// Modal precedence, highest first.
	if p.walk.Active() {
		p.walkFrame()
		return
	}
	if p.browseUI.IsOpen() && p.h.Mode() == host.ModeLevel {
		p.browseFrame()
		return
	}

	if !p.buttons() {
		return
	}
	p.directions()
	p.flush()
}

// begin dedupes by frame number and makes sure a connected device has
// been polled. Returns false when there is nothing to do this frame.
func (p *Pipeline) begin() bool {
	frame := p.h.Frame()
	if p.lastFrame == int64(frame) {
		return false
	}
	p.lastFrame = int64(frame)

	if !p.dev.Connected() && !p.dev.Connect() {
		return false
	}
	if st := p.dev.Poll(frame); st != pad.StatusConnected {
		log.ModInject.DebugZ("poll failed").
			Stringer("status", st).
			Uint64("frame", frame).
			End()
		return false
	}
	return true
}

// walkFrame: the walk-target overlay exclusively consumes this frame.
func (p *Pipeline) walkFrame() {
	bt := p.cfg.Buttons

	// Releasing the aim-hold button commits the walk.
	if !p.dev.Held(bt.A) {
		p.walk.Exit(true)
		return
	}
	if p.dev.JustPressed(bt.B) {
		p.walk.Exit(false)
		return
	}

	d := p.dev.Direction()
	p.walk.Update(host.Pt(d.X, d.Y))
}

// browseFrame: the browse overlay exclusively consumes this frame.
func (p *Pipeline) browseFrame() {
	bt := p.cfg.Buttons

	switch {
	case p.dev.JustPressed(bt.A):
		p.browseUI.Confirm()
		return
	case p.dev.JustPressed(bt.B):
		p.browseUI.Cancel()
		return
	// The shoulder button that opened a browser also closes it.
	case p.dev.JustPressed(bt.RB) && p.browseUI.ActiveKind() == overlay.KindSpells:
		p.browseUI.Cancel()
		return
	case p.dev.JustPressed(bt.LB) && p.browseUI.ActiveKind() == overlay.KindItems:
		p.browseUI.Cancel()
		return
	}

	// D-pad / left stick cycles the list.
	if d, ok := p.browse.Update(p.dev.Direction()); ok {
		switch {
		case d.Y < 0:
			p.browseUI.Cycle(-1)
		case d.Y > 0:
			p.browseUI.Cycle(1)
		}
	}

	// The right stick still steers the host's targeting reticle.
	if d, ok := p.cursor.Update(p.dev.RightStick()); ok {
		if p.h.Targeter() != nil {
			if tgt, found := p.h.Target(); found {
				p.moveTarget(tgt, d)
			}
		}
	}
}

// buttons handles the normal-mode button table. Returns false when the
// frame was fully consumed (a modal overlay was entered).
func (p *Pipeline) buttons() bool {
	bt := p.cfg.Buttons
	level := p.h.Mode() == host.ModeLevel && p.h.Actor() != nil

	if p.dev.JustPressed(bt.A) {
		if p.canEnterWalkTarget() {
			p.walk.Enter()
			return false
		}
		p.pushAction(host.ActionConfirm)
	}
	if p.dev.JustPressed(bt.B) {
		p.pushAction(host.ActionAbort)
	}
	if p.dev.JustPressed(bt.X) {
		p.pushAction(host.ActionPass)
	}
	if p.dev.JustPressed(bt.Y) {
		p.pushAction(host.ActionCharSheet)
	}
	if p.dev.JustPressed(bt.Start) {
		p.pushAction(host.ActionAbort)
	}
	if p.dev.JustPressed(bt.Back) {
		p.pushAction(host.ActionHelp)
	}

	// RB: spell browser, or tab-target when targeting is in progress.
	if p.dev.JustPressed(bt.RB) {
		switch {
		case level && p.h.Targeter() != nil:
			p.pushAction(host.ActionTab)
		case level:
			if _, deploying := p.h.DeployTarget(); !deploying {
				p.browseUI.Open(overlay.KindSpells)
				return false
			}
		default:
			p.pushAction(host.ActionNextTarget)
		}
	}

	// LB: item browser, or previous examine target.
	if p.dev.JustPressed(bt.LB) {
		_, deploying := p.h.DeployTarget()
		if level && p.h.Targeter() == nil && !deploying {
			p.browseUI.Open(overlay.KindItems)
			return false
		}
		p.pushAction(host.ActionPrevTarget)
	}

	if p.dev.JustPressed(bt.LStick) && level {
		p.pushAction(host.ActionAutopickup)
	}
	if p.dev.JustPressed(bt.RStick) {
		p.pushAction(host.ActionThreat)
	}

	// Triggers: confirm the cast when a spell is targeting, interact
	// otherwise.
	if p.dev.TriggerJustPressed(pad.RightTrigger) && level {
		if p.h.Targeter() != nil {
			p.pushAction(host.ActionConfirm)
		} else {
			p.pushAction(host.ActionInteract)
		}
	}
	if p.dev.TriggerJustPressed(pad.LeftTrigger) && level {
		p.pushAction(host.ActionReroll)
	}

	return true
}

// directions drives the movement and cursor repeater channels.
func (p *Pipeline) directions() {
	// Movement: combined d-pad / left stick.
	if d, ok := p.move.Update(p.dev.Direction()); ok {
		if a := host.DirectionAction(d.X, d.Y); a != host.ActionNone {
			p.pushAction(a)
		}
	}

	// Cursor: right stick steers whichever reticle is relevant.
	if p.h.Mode() != host.ModeLevel || p.h.Actor() == nil {
		p.cursor.Update(pad.Neutral)
		return
	}
	d, ok := p.cursor.Update(p.dev.RightStick())
	if !ok {
		return
	}

	if p.h.Targeter() != nil {
		if tgt, found := p.h.Target(); found {
			p.moveTarget(tgt, d)
			return
		}
	}
	if tgt, deploying := p.h.DeployTarget(); deploying {
		next := tgt.Add(host.Pt(d.X, d.Y))
		if p.h.DeployInBounds(next) {
			p.h.SetDeployTarget(next)
			p.h.Examine(next)
		}
		return
	}
	// No reticle active: examine around the actor.
	next := p.h.Actor().Pos().Add(host.Pt(d.X, d.Y))
	if p.h.InBounds(next) {
		p.h.Examine(next)
	}
}

// moveTarget nudges the active spell target, clamped to map bounds.
func (p *Pipeline) moveTarget(tgt host.Point, d pad.Direction) {
	next := tgt.Add(host.Pt(d.X, d.Y))
	if p.h.InBounds(next) {
		p.h.SetTarget(next)
		p.h.Examine(next)
	}
}

// canEnterWalkTarget: in level mode with no spell previewed, no deploy
// target pending, and an actor allowed to act.
func (p *Pipeline) canEnterWalkTarget() bool {
	if p.h.Mode() != host.ModeLevel || p.h.Actor() == nil {
		return false
	}
	if p.h.Targeter() != nil {
		return false
	}
	if _, deploying := p.h.DeployTarget(); deploying {
		return false
	}
	return p.h.CanAct()
}

// pushAction queues a press event for the first key bound to the
// action. Unbound actions are dropped, like the host does for unbound
// keys.
func (p *Pipeline) pushAction(a host.Action) {
	key, ok := p.h.KeyFor(a)
	if !ok {
		return
	}
	p.queued = append(p.queued, host.Event{Action: a, Key: key, Pressed: true})
}

// flush emits the queued events in generation order.
func (p *Pipeline) flush() {
	for _, ev := range p.queued {
		p.h.Push(ev)
	}
	p.queued = p.queued[:0]
}

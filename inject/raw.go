package inject

import (
	"padkit/host"
	"padkit/pad"
)

// Direction offsets to raw keycodes, for host screens that navigate
// with arrow/keypad keys.
var rawDirKeys = map[pad.Direction]host.Keycode{
	{X: 0, Y: -1}:  host.KeyUp,
	{X: 0, Y: 1}:   host.KeyDown,
	{X: -1, Y: 0}:  host.KeyLeft,
	{X: 1, Y: 0}:   host.KeyRight,
	{X: 1, Y: -1}:  host.KeyKP9,
	{X: -1, Y: -1}: host.KeyKP7,
	{X: 1, Y: 1}:   host.KeyKP3,
	{X: -1, Y: 1}:  host.KeyKP1,
}

// InjectRaw is the reduced pipeline for host modes that accept only
// raw key codes (simple list-navigation screens): three core buttons
// plus the movement repeater, no modal overlays.
func (p *Pipeline) InjectRaw() {
	if !p.begin() {
		return
	}

	bt := p.cfg.Buttons
	if p.dev.JustPressed(bt.A) {
		p.h.Push(host.Event{Key: host.KeyReturn, Pressed: true})
	}
	if p.dev.JustPressed(bt.B) {
		p.h.Push(host.Event{Key: host.KeyEscape, Pressed: true})
	}
	if p.dev.JustPressed(bt.X) {
		p.h.Push(host.Event{Key: host.KeySpace, Pressed: true})
	}

	if d, ok := p.move.Update(p.dev.Direction()); ok {
		if key, found := rawDirKeys[d]; found {
			p.h.Push(host.Event{Key: key, Pressed: true})
		}
	}
}

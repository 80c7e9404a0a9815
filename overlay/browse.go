// Package overlay implements the two modal input overlays: the
// spell/item browser and the adjacent-tile walk-target aimer. While an
// overlay is active it owns input interpretation exclusively; the
// pipeline enforces that at most one of the two is active at a time.
package overlay

import (
	"padkit/host"
	"padkit/log"
)

// SoundAbort is the host feedback cue played when an overlay aborts.
const SoundAbort = "menu_abort"

// Kind selects which host-owned list a browse session cycles.
type Kind uint8

const (
	KindNone Kind = iota
	KindSpells
	KindItems
)

func (k Kind) String() string {
	switch k {
	case KindSpells:
		return "spells"
	case KindItems:
		return "items"
	}
	return "none"
}

// Browse cycles a host-owned selectable list, previewing each entry
// through the host's targeting state. The list itself always belongs
// to the host; the session only holds an index into it.
type Browse struct {
	h     host.Host
	kind  Kind
	index int
}

func NewBrowse(h host.Host) *Browse {
	return &Browse{h: h}
}

func (b *Browse) IsOpen() bool     { return b.kind != KindNone }
func (b *Browse) ActiveKind() Kind { return b.kind }

func (b *Browse) list() []host.Selectable {
	switch b.kind {
	case KindSpells:
		return b.h.Spells()
	case KindItems:
		return b.h.Items()
	}
	return nil
}

// Open starts a browse session on the given list, previewing its first
// entry. An empty list aborts with a single feedback cue and no
// session. Callers must not call Open while a session is open.
func (b *Browse) Open(kind Kind) bool {
	var lst []host.Selectable
	switch kind {
	case KindSpells:
		lst = b.h.Spells()
	case KindItems:
		lst = b.h.Items()
	}
	if len(lst) == 0 {
		b.h.PlaySound(SoundAbort)
		return false
	}

	b.kind = kind
	b.index = 0
	log.ModBrowse.DebugZ("open").
		Stringer("kind", kind).
		Int("entries", len(lst)).
		End()
	b.preview()
	return true
}

// preview installs the targeting capability of the current entry into
// the host's preview state.
func (b *Browse) preview() {
	lst := b.list()
	if len(lst) == 0 {
		return
	}
	b.index = min(max(b.index, 0), len(lst)-1)
	b.h.SetTargeter(lst[b.index].Targeter())
}

// Cycle moves the index by delta, wrapping in both directions, and
// re-previews the new entry.
func (b *Browse) Cycle(delta int) {
	lst := b.list()
	if len(lst) == 0 {
		return
	}
	b.index = ((b.index+delta)%len(lst) + len(lst)) % len(lst)
	b.preview()
}

// Confirm closes the session and injects a synthetic confirm action,
// so the host casts/uses the previewed entry on its next input cycle.
func (b *Browse) Confirm() {
	log.ModBrowse.DebugZ("confirm").
		Stringer("kind", b.kind).
		Int("index", b.index).
		End()
	b.kind = KindNone
	if key, ok := b.h.KeyFor(host.ActionConfirm); ok {
		b.h.Push(host.Event{Action: host.ActionConfirm, Key: key, Pressed: true})
	}
}

// Cancel closes the session and aborts whatever is previewed.
func (b *Browse) Cancel() {
	log.ModBrowse.DebugZ("cancel").Stringer("kind", b.kind).End()
	b.kind = KindNone
	if b.h.Targeter() != nil {
		b.h.AbortTargeter()
	}
}

// ForceClear silently resets the session with no host interaction.
// Called when the host left the relevant mode or the preview was
// cleared externally, so a stale overlay never survives.
func (b *Browse) ForceClear() {
	b.kind = KindNone
}

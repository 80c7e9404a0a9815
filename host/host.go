// Package host declares the contract between the controller input
// pipeline and the game it drives. The pipeline only ever talks to the
// game through these interfaces; it owns no game state and defines no
// wire format.
package host

// A Keycode is a raw key code as understood by the host's low-level
// screens (title, mode picking, ...). Values follow SDL keycodes.
type Keycode int32

// An Event is a synthetic input event appended to the host's outgoing
// queue. Exactly one of Action or Key is meaningful. Pressed marks the
// press edge; the pipeline never emits release events.
type Event struct {
	Action  Action
	Key     Keycode
	Pressed bool
}

// Mode is the host's coarse screen state. The pipeline only
// distinguishes ModeLevel (in-game, full pipeline) from everything else.
type Mode uint8

const (
	ModeTitle Mode = iota
	ModeLevel
	ModeOptions
	ModePickMode
	ModePickTrial
)

// A Targeter is the capability contract for anything that can preview
// targets on the map: real spells as well as the synthetic walk-target
// capability. Implementations not meant to be cast must make Cast a
// safe no-op.
type Targeter interface {
	// CanTarget reports whether the given cell is a legal target.
	CanTarget(p Point) bool
	// TargetableTiles returns the set of currently legal cells.
	TargetableTiles() []Point
	// Range is the targeting range in tiles.
	Range() int
	// RequiresLOS reports whether targeting needs line of sight.
	RequiresLOS() bool
	// Cast casts at the given cell.
	Cast(p Point)
}

// A Selectable is an entry of a host-owned browsable list. Spells
// return themselves; items return their wrapped spell.
type Selectable interface {
	Targeter() Targeter
}

// An Actor is the player-controlled entity.
type Actor interface {
	Pos() Point
}

// Host is the surface of the game consumed by the input pipeline.
// Every method must be safe to call on every frame; methods returning
// (value, bool) report absence through the bool.
type Host interface {
	Mode() Mode
	// Frame is a monotonic per-frame counter.
	Frame() uint64
	// CanAct reports whether the actor may take a turn right now.
	CanAct() bool
	// Actor returns the player, or nil outside a run.
	Actor() Actor

	Spells() []Selectable
	Items() []Selectable

	// Targeter returns the currently previewed targeting capability,
	// or nil. SetTargeter installs a capability into preview state
	// (nil clears it); the host derives its targeting display from the
	// capability itself. AbortTargeter aborts the current preview with
	// the host's own feedback.
	Targeter() Targeter
	SetTargeter(t Targeter)
	AbortTargeter()

	// Target is the active spell-target position; DeployTarget the
	// active deployment position.
	Target() (Point, bool)
	SetTarget(p Point)
	DeployTarget() (Point, bool)
	SetDeployTarget(p Point)

	// CanMoveTo applies the host's ordinary movement rules
	// (obstruction, hazards, occupant swap) for the actor.
	CanMoveTo(p Point) bool
	// Move moves the actor by the given offset, reporting success.
	Move(delta Point) bool
	// Examine runs the host's tile-examination action.
	Examine(p Point)

	// PlaySound plays a named feedback sound.
	PlaySound(name string)
	// Push appends a synthetic event to the host's outgoing queue.
	Push(ev Event)
	// KeyFor returns the first physical key bound to an action.
	KeyFor(a Action) (Keycode, bool)

	InBounds(p Point) bool
	DeployInBounds(p Point) bool
}

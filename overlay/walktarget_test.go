package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padkit/host"
)

func enteredWalkTarget(t *testing.T) (*fakeHost, *WalkTarget) {
	t.Helper()
	h := newFakeHost()
	w := NewWalkTarget(h)
	require.True(t, w.Enter())
	return h, w
}

func TestWalkTargetEnter(t *testing.T) {
	h, w := enteredWalkTarget(t)

	assert.True(t, w.Active())
	require.NotNil(t, h.targeter)
	assert.Same(t, w.step, h.targeter)
	got, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(5, 5), got, "target starts on the actor")
}

func TestWalkTargetEnterWithoutActor(t *testing.T) {
	h := newFakeHost()
	h.actor = nil
	w := NewWalkTarget(h)

	assert.False(t, w.Enter())
	assert.False(t, w.Active())
	assert.Nil(t, h.targeter)
}

func TestWalkTargetUpdateAims(t *testing.T) {
	h, w := enteredWalkTarget(t)

	w.Update(host.Pt(1, 0))
	got, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(6, 5), got)
	assert.Equal(t, []host.Point{{X: 6, Y: 5}}, h.examined)
}

func TestWalkTargetUpdateNeverAccumulates(t *testing.T) {
	h, w := enteredWalkTarget(t)

	// Many updates in the same direction must not walk the aim away
	// from the origin's neighborhood.
	for i := 0; i < 5; i++ {
		w.Update(host.Pt(1, 1))
	}
	got, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(6, 6), got)

	w.Update(host.Pt(-1, 0))
	got, ok = h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(4, 5), got, "aim is always origin plus offset")
}

func TestWalkTargetUpdateNeutralKeepsAim(t *testing.T) {
	h, w := enteredWalkTarget(t)

	w.Update(host.Pt(0, -1))
	h.examined = nil
	w.Update(host.Point{})

	got, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(5, 4), got)
	assert.Empty(t, h.examined, "neutral does not re-examine")
}

func TestWalkTargetUpdateOutOfBounds(t *testing.T) {
	h := newFakeHost()
	h.actor.pos = host.Pt(0, 0)
	w := NewWalkTarget(h)
	require.True(t, w.Enter())

	w.Update(host.Pt(-1, 0))

	got, ok := h.Target()
	require.True(t, ok)
	assert.Equal(t, host.Pt(0, 0), got, "aim unchanged off the map")
}

func TestWalkTargetCommitMoves(t *testing.T) {
	h, w := enteredWalkTarget(t)
	w.Update(host.Pt(1, -1))

	moved := w.Exit(true)

	assert.True(t, moved)
	require.Len(t, h.moves, 1)
	assert.Equal(t, host.Pt(1, -1), h.moves[0])
	assert.False(t, w.Active())
	assert.Nil(t, h.targeter)
	assert.Empty(t, h.sounds)
	// The synthetic capability must be gone before the host processes
	// the move, or its turn logic would see a live targeting session.
	require.Len(t, h.targeterAtMove, 1)
	assert.Nil(t, h.targeterAtMove[0])
}

func TestWalkTargetCommitWithoutAim(t *testing.T) {
	h, w := enteredWalkTarget(t)

	moved := w.Exit(true)

	assert.False(t, moved)
	assert.Empty(t, h.moves)
	assert.Empty(t, h.sounds, "untouched aim cancels silently")
	assert.False(t, w.Active())
	assert.Nil(t, h.targeter)
}

func TestWalkTargetCommitBlockedTile(t *testing.T) {
	h, w := enteredWalkTarget(t)
	w.Update(host.Pt(0, 1))
	h.blocked[host.Pt(5, 6)] = true

	moved := w.Exit(true)

	assert.False(t, moved)
	assert.Empty(t, h.moves)
	assert.Equal(t, []string{SoundAbort}, h.sounds, "exactly one abort cue")
	assert.False(t, w.Active())
	assert.Nil(t, h.targeter)
}

func TestWalkTargetCancel(t *testing.T) {
	h, w := enteredWalkTarget(t)
	w.Update(host.Pt(1, 0))

	moved := w.Exit(false)

	assert.False(t, moved)
	assert.Empty(t, h.moves)
	assert.Equal(t, []string{SoundAbort}, h.sounds)
	assert.False(t, w.Active())
	assert.Nil(t, h.targeter)
}

func TestWalkTargetExitInactive(t *testing.T) {
	h := newFakeHost()
	w := NewWalkTarget(h)

	assert.False(t, w.Exit(true))
	assert.Empty(t, h.sounds)
	assert.Empty(t, h.moves)
}

func TestWalkTargetExternalReplacementForceClears(t *testing.T) {
	h, w := enteredWalkTarget(t)

	// The host installed a real spell preview behind our back.
	spell := &fakeSpell{name: "bolt"}
	h.SetTargeter(spell)
	h.sounds = nil

	w.Update(host.Pt(1, 0))
	assert.False(t, w.Active(), "replacement detected on update")
	assert.Same(t, spell, h.targeter, "foreign preview left alone")
	assert.Empty(t, h.sounds)
	assert.Empty(t, h.moves)

	assert.False(t, w.Exit(true), "exit after force-clear is a no-op")
	assert.Same(t, spell, h.targeter)
}

func TestWalkTargetExternalClearForceClears(t *testing.T) {
	h, w := enteredWalkTarget(t)

	h.SetTargeter(nil)
	w.Update(host.Pt(0, 1))

	assert.False(t, w.Active())
	got, ok := h.Target()
	assert.False(t, ok, "no target re-installed, got %v", got)
}

func TestStepTargeterLegality(t *testing.T) {
	h := newFakeHost()
	h.blocked[host.Pt(6, 5)] = true
	s := &stepTargeter{h: h, origin: host.Pt(5, 5)}

	assert.False(t, s.CanTarget(host.Pt(5, 5)), "origin itself")
	assert.True(t, s.CanTarget(host.Pt(4, 4)))
	assert.False(t, s.CanTarget(host.Pt(6, 5)), "blocked neighbor")
	assert.False(t, s.CanTarget(host.Pt(7, 5)), "beyond one step")

	tiles := s.TargetableTiles()
	assert.Len(t, tiles, 7, "eight neighbors minus the blocked one")
	assert.NotContains(t, tiles, host.Pt(6, 5))
	assert.NotContains(t, tiles, host.Pt(5, 5))
}

func TestStepTargeterAtMapEdge(t *testing.T) {
	h := newFakeHost()
	s := &stepTargeter{h: h, origin: host.Pt(0, 0)}

	tiles := s.TargetableTiles()
	assert.Len(t, tiles, 3)
	assert.False(t, s.CanTarget(host.Pt(-1, 0)))
}

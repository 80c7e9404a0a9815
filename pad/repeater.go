package pad

import (
	"time"

	"padkit/log"
)

// A Repeater turns a raw per-frame direction signal into discrete fire
// events: an immediate event on a fresh press, then auto-repeat after
// an initial delay. A debounce window absorbs double-inputs caused by
// the stick bouncing through neutral on a quick tap, or by jitter
// between adjacent directions (e.g. right and down-right).
//
// Each independent input channel (movement, cursor, browse cycling)
// gets its own instance.
type Repeater struct {
	initialDelay   time.Duration
	repeatInterval time.Duration
	debounce       time.Duration
	now            func() time.Time

	active   Direction
	nextFire time.Time
	lastFire time.Time
	released time.Time
}

// NewRepeater returns a repeater with the given initial delay and
// repeat interval. The debounce window comes from the repeat config.
func NewRepeater(initialDelay, repeatInterval time.Duration, cfg RepeatConfig) *Repeater {
	return newRepeater(initialDelay, repeatInterval, time.Duration(cfg.Debounce), time.Now)
}

func newRepeater(initialDelay, repeatInterval, debounce time.Duration, now func() time.Time) *Repeater {
	return &Repeater{
		initialDelay:   initialDelay,
		repeatInterval: repeatInterval,
		debounce:       debounce,
		now:            now,
	}
}

// Update feeds the current direction, once per frame. It returns the
// direction to act on, if any. Two returned events are never closer
// together than the debounce window.
func (r *Repeater) Update(dir Direction) (Direction, bool) {
	now := r.now()

	if dir.IsNeutral() {
		if !r.active.IsNeutral() {
			r.released = now
		}
		r.active = Neutral
		return Neutral, false
	}

	// Standalone guard, checked before any transition: never fire
	// again too soon after the previous event.
	if now.Sub(r.lastFire) < r.debounce {
		return Neutral, false
	}

	if dir != r.active {
		// The stick only glanced through neutral (analog bounce):
		// switch the held direction silently, preserving the hold.
		if !r.released.IsZero() && now.Sub(r.released) < r.debounce {
			log.ModRepeat.DebugZ("bounce absorbed").
				Stringer("dir", dir).
				Duration("since_release", now.Sub(r.released)).
				End()
			r.active = dir
			r.nextFire = now.Add(r.initialDelay)
			return Neutral, false
		}

		// Genuine new press.
		r.active = dir
		r.nextFire = now.Add(r.initialDelay)
		r.lastFire = now
		return dir, true
	}

	if !now.Before(r.nextFire) {
		r.nextFire = now.Add(r.repeatInterval)
		r.lastFire = now
		return dir, true
	}

	return Neutral, false
}

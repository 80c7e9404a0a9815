package pad

import (
	"time"

	"padkit/log"
)

// Status is the result of a device poll.
type Status uint8

const (
	StatusDisconnected Status = iota
	StatusConnected
	StatusReadError
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusReadError:
		return "read error"
	}
	return "disconnected"
}

// How often to re-scan for newly connected devices while disconnected.
const rescanInterval = 2 * time.Second

const unmapped = -1

// axisMap holds the axis indices detected at connect time. Trigger axes
// rest at -1.0 (SDL/XInput convention), stick axes rest near 0; the
// classification is re-derived on every reconnect.
type axisMap struct {
	leftX, leftY   int
	rightX, rightY int
	lt, rt         int

	// triggers rest at -1 and need renormalization to [0, 1].
	triggerMinusOneRest bool
}

// A snapshot is the device state captured by one poll.
type snapshot struct {
	buttons map[int]bool
	lt, rt  bool
	hat     Direction
	left    Direction
	right   Direction
}

// A Device tracks the single connected game controller between frames,
// providing edge detection for buttons, triggers, sticks and d-pad.
// All methods are to be called from the single frame-processing path.
type Device struct {
	cfg     Config
	backend Backend
	now     func() time.Time

	joy       Joystick
	connected bool
	axes      axisMap

	lastScan      time.Time
	lastPollFrame int64

	curr, prev snapshot
}

// NewDevice returns a Device enumerating through the SDL joystick
// subsystem.
func NewDevice(cfg Config) *Device {
	return NewDeviceWith(cfg, SDLBackend{}, time.Now)
}

// NewDeviceWith returns a Device enumerating through a custom backend,
// with an explicit clock for the rescan throttle.
func NewDeviceWith(cfg Config, backend Backend, now func() time.Time) *Device {
	return &Device{
		cfg:           cfg,
		backend:       backend,
		now:           now,
		lastPollFrame: -1,
	}
}

func (d *Device) Connected() bool { return d.connected }

// Connect tries to find and open a joystick, auto-detecting the axis
// mapping from rest values. Re-scans are throttled so that calling it
// every frame while disconnected stays cheap. Returns true when a
// device is connected (already or newly).
func (d *Device) Connect() bool {
	if d.connected && d.joy != nil {
		return true
	}

	now := d.now()
	if now.Sub(d.lastScan) < rescanInterval {
		return false
	}
	d.lastScan = now

	n, err := d.backend.Rescan()
	if err != nil {
		log.ModPad.ErrorZ("joystick rescan failed").Error("err", err).End()
		d.connected = false
		return false
	}
	if n == 0 {
		d.connected = false
		return false
	}

	joy, err := d.backend.Open(0)
	if err != nil {
		log.ModPad.ErrorZ("failed to open joystick").Error("err", err).End()
		d.connected = false
		return false
	}

	d.joy = joy
	d.connected = true
	d.curr = snapshot{}
	d.prev = snapshot{}

	log.ModPad.InfoZ("controller connected").
		String("name", joy.Name()).
		Int("buttons", joy.NumButtons()).
		Int("axes", joy.NumAxes()).
		Int("hats", joy.NumHats()).
		End()

	d.detectAxes()
	return true
}

// detectAxes classifies each axis by its rest value and assigns stick
// and trigger indices.
func (d *Device) detectAxes() {
	var sticks, triggers []int
	for i := range d.joy.NumAxes() {
		v := d.joy.Axis(i)
		log.ModPad.DebugZ("axis rest value").
			Int("axis", i).
			Float("value", v).
			End()
		switch {
		case v < -0.8:
			triggers = append(triggers, i)
		case v > -0.5 && v < 0.5:
			sticks = append(sticks, i)
		}
	}

	d.axes = axisMap{
		leftX: unmapped, leftY: unmapped,
		rightX: unmapped, rightY: unmapped,
		lt: unmapped, rt: unmapped,
	}

	if len(sticks) >= 2 {
		d.axes.leftX = sticks[0]
		d.axes.leftY = sticks[1]
	}
	switch {
	case len(sticks) >= 4:
		d.axes.rightX = sticks[2]
		d.axes.rightY = sticks[3]
	case len(sticks) == 3:
		d.axes.rightX = sticks[2]
		log.ModPad.Warnf("only 3 stick axes detected, right stick Y unavailable")
	}

	if len(triggers) >= 1 {
		d.axes.lt = triggers[0]
		d.axes.triggerMinusOneRest = true
	}
	if len(triggers) >= 2 {
		d.axes.rt = triggers[1]
	}
	if len(triggers) == 0 {
		d.axes.triggerMinusOneRest = false
		log.ModPad.Warnf("no trigger axes detected, triggers will not work")
	}

	log.ModPad.InfoZ("axis mapping").
		Int("left.x", d.axes.leftX).Int("left.y", d.axes.leftY).
		Int("right.x", d.axes.rightX).Int("right.y", d.axes.rightY).
		Int("lt", d.axes.lt).Int("rt", d.axes.rt).
		End()
}

// Poll reads the current controller state. It is idempotent within one
// frame: a repeated call with the same frame number is a no-op.
func (d *Device) Poll(frame uint64) Status {
	if !d.connected || d.joy == nil {
		return StatusDisconnected
	}

	if d.lastPollFrame == int64(frame) {
		return StatusConnected
	}
	d.lastPollFrame = int64(frame)

	// Detect mid-session disconnects.
	n, err := d.backend.NumJoysticks()
	if err != nil {
		log.ModPad.WarnZ("joystick read failed").Error("err", err).End()
		d.disconnect()
		return StatusReadError
	}
	if n == 0 {
		d.disconnect()
		return StatusDisconnected
	}

	naxes := d.joy.NumAxes()

	d.prev = d.curr
	d.curr = snapshot{
		buttons: make(map[int]bool, d.joy.NumButtons()),
		lt:      d.readTrigger(d.axes.lt, naxes),
		rt:      d.readTrigger(d.axes.rt, naxes),
		left:    d.readStick(d.axes.leftX, d.axes.leftY, naxes),
		right:   d.readStick(d.axes.rightX, d.axes.rightY, naxes),
	}
	for i := range d.joy.NumButtons() {
		d.curr.buttons[i] = d.joy.Button(i)
	}
	if d.joy.NumHats() > 0 {
		dx, dy := d.joy.Hat(0)
		d.curr.hat = Direction{X: dx, Y: dy}
	}

	return StatusConnected
}

func (d *Device) disconnect() {
	if d.connected {
		log.ModPad.Warnf("controller disconnected")
	}
	if d.joy != nil {
		d.joy.Close()
	}
	d.connected = false
	d.joy = nil

	// Drop the last snapshots so every query reads neutral/false, even
	// if a button was held or a stick deflected at the disconnect.
	d.curr = snapshot{}
	d.prev = snapshot{}
}

func (d *Device) readTrigger(axis, naxes int) bool {
	if axis < 0 || axis >= naxes {
		return false
	}
	val := d.joy.Axis(axis)
	if d.axes.triggerMinusOneRest {
		val = (val + 1) / 2
	}
	return val > d.cfg.Trigger.Threshold
}

func (d *Device) readStick(ax, ay, naxes int) Direction {
	if ax < 0 || ay < 0 || ax >= naxes || ay >= naxes {
		return Neutral
	}
	x := d.joy.Axis(ax)
	y := d.joy.Axis(ay)
	return stickToDigital(x, y, d.cfg.Stick.Deadzone, d.cfg.Stick.DirectionThreshold)
}

// Button queries. All report false while disconnected.

// JustPressed reports whether the button transitioned from released to
// pressed on the last poll.
func (d *Device) JustPressed(btn int) bool {
	return d.curr.buttons[btn] && !d.prev.buttons[btn]
}

// Held reports whether the button is currently down.
func (d *Device) Held(btn int) bool {
	return d.curr.buttons[btn]
}

// JustReleased reports whether the button transitioned from pressed to
// released on the last poll.
func (d *Device) JustReleased(btn int) bool {
	return !d.curr.buttons[btn] && d.prev.buttons[btn]
}

// A Trigger identifies one of the two analog triggers.
type Trigger uint8

const (
	LeftTrigger Trigger = iota
	RightTrigger
)

func (d *Device) TriggerJustPressed(t Trigger) bool {
	if t == LeftTrigger {
		return d.curr.lt && !d.prev.lt
	}
	return d.curr.rt && !d.prev.rt
}

// DPad returns the current d-pad direction.
func (d *Device) DPad() Direction { return d.curr.hat }

// LeftStick and RightStick return the digitized stick directions.
func (d *Device) LeftStick() Direction  { return d.curr.left }
func (d *Device) RightStick() Direction { return d.curr.right }

// Direction returns the combined movement direction: d-pad if
// non-neutral, else the digitized left stick.
func (d *Device) Direction() Direction {
	if !d.curr.hat.IsNeutral() {
		return d.curr.hat
	}
	return d.curr.left
}

func (d *Device) dpadJustPressed() (Direction, bool) {
	if !d.curr.hat.IsNeutral() && d.curr.hat != d.prev.hat {
		return d.curr.hat, true
	}
	return Neutral, false
}

func (d *Device) leftJustPressed() (Direction, bool) {
	if !d.curr.left.IsNeutral() && d.curr.left != d.prev.left {
		return d.curr.left, true
	}
	return Neutral, false
}

// DirectionJustPressed returns the combined direction if it just became
// non-neutral or changed, with the same d-pad-wins precedence as
// Direction.
func (d *Device) DirectionJustPressed() (Direction, bool) {
	if dir, ok := d.dpadJustPressed(); ok {
		return dir, true
	}
	return d.leftJustPressed()
}

// Name returns the connected device name, or "".
func (d *Device) Name() string {
	if d.joy == nil {
		return ""
	}
	return d.joy.Name()
}

// A Mapping reports the axis indices detected at connect time.
// Unmapped axes are -1.
type Mapping struct {
	LeftX, LeftY              int
	RightX, RightY            int
	LeftTrigger, RightTrigger int
}

func (d *Device) Mapping() Mapping {
	return Mapping{
		LeftX: d.axes.leftX, LeftY: d.axes.leftY,
		RightX: d.axes.rightX, RightY: d.axes.rightY,
		LeftTrigger: d.axes.lt, RightTrigger: d.axes.rt,
	}
}

// Close releases the device handle.
func (d *Device) Close() {
	d.disconnect()
}

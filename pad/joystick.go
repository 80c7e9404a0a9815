package pad

// A Joystick is the minimal surface of an opened joystick device.
// Implemented by sdlJoystick in production and by test fakes.
type Joystick interface {
	Name() string
	NumAxes() int
	// Axis returns the axis value normalized to [-1, 1].
	Axis(i int) float64
	NumButtons() int
	Button(i int) bool
	NumHats() int
	// Hat returns the hat direction in screen coordinates (down = +y).
	Hat(i int) (dx, dy int)
	Close()
}

// A Backend enumerates joystick devices.
type Backend interface {
	// Rescan forces a full re-enumeration of the joystick subsystem
	// and returns the resulting device count. Required because some
	// platform joystick subsystems do not discover devices powered on
	// after initialization.
	Rescan() (int, error)
	// NumJoysticks returns the current live device count.
	NumJoysticks() (int, error)
	// Open opens the device at the given index.
	Open(index int) (Joystick, error)
}

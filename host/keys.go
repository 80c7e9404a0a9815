package host

// Keycodes for host screens that accept only raw low-level keys.
// Values follow the SDL keycode scheme: printable keys are their
// character value, others are the scancode with bit 30 set.
const scancodeMask Keycode = 1 << 30

const (
	KeyReturn Keycode = '\r'
	KeyEscape Keycode = '\x1b'
	KeySpace  Keycode = ' '

	KeyRight Keycode = scancodeMask | 0x4f
	KeyLeft  Keycode = scancodeMask | 0x50
	KeyDown  Keycode = scancodeMask | 0x51
	KeyUp    Keycode = scancodeMask | 0x52

	KeyKP1 Keycode = scancodeMask | 0x59
	KeyKP3 Keycode = scancodeMask | 0x5b
	KeyKP7 Keycode = scancodeMask | 0x5f
	KeyKP9 Keycode = scancodeMask | 0x61
)

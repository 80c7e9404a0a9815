package pad

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLBackend enumerates joysticks through the SDL joystick subsystem.
// The subsystem must have been initialized (sdl.Init with
// sdl.INIT_JOYSTICK) before use.
type SDLBackend struct{}

func (SDLBackend) Rescan() (int, error) {
	// SDL does not discover devices powered on after subsystem init
	// unless the event loop runs; quit + reinit forces a full
	// re-enumeration.
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return 0, fmt.Errorf("joystick subsystem reinit: %w", err)
	}
	return sdl.NumJoysticks(), nil
}

func (SDLBackend) NumJoysticks() (int, error) {
	sdl.JoystickUpdate()
	n := sdl.NumJoysticks()
	if n < 0 {
		return 0, fmt.Errorf("joystick count: %w", sdl.GetError())
	}
	return n, nil
}

func (SDLBackend) Open(index int) (Joystick, error) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		return nil, fmt.Errorf("open joystick %d: %w", index, sdl.GetError())
	}
	return &sdlJoystick{joy: joy}, nil
}

type sdlJoystick struct {
	joy *sdl.Joystick
}

func (s *sdlJoystick) Name() string    { return s.joy.Name() }
func (s *sdlJoystick) NumAxes() int    { return s.joy.NumAxes() }
func (s *sdlJoystick) NumButtons() int { return s.joy.NumButtons() }
func (s *sdlJoystick) NumHats() int    { return s.joy.NumHats() }
func (s *sdlJoystick) Close()          { s.joy.Close() }

// axes go from -32768 to 32767.
func (s *sdlJoystick) Axis(i int) float64 {
	return float64(s.joy.Axis(i)) / 32768.0
}

func (s *sdlJoystick) Button(i int) bool {
	return s.joy.Button(i) != 0
}

func (s *sdlJoystick) Hat(i int) (int, int) {
	h := sdl.JoystickHat(s.joy.Hat(sdl.JoystickHat(i)))
	var dx, dy int
	switch {
	case h&sdl.HAT_LEFT != 0:
		dx = -1
	case h&sdl.HAT_RIGHT != 0:
		dx = 1
	}
	switch {
	case h&sdl.HAT_UP != 0:
		dy = -1 // SDL hat: up bit set, screen coords want up = -1
	case h&sdl.HAT_DOWN != 0:
		dy = 1
	}
	return dx, dy
}

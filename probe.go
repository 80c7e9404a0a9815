package main

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"padkit/pad"
)

// runProbe connects to the first controller found and prints the
// auto-detected axis mapping.
func runProbe() error {
	if err := sdl.Init(sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("SDL init: %w", err)
	}
	defer sdl.Quit()

	dev := pad.NewDevice(pad.LoadConfigOrDefault())
	defer dev.Close()

	if !dev.Connect() {
		return errors.New("no controller found")
	}

	m := dev.Mapping()
	fmt.Println("controller:", dev.Name())
	fmt.Printf("  left stick   axes (%d,%d)\n", m.LeftX, m.LeftY)
	fmt.Printf("  right stick  axes (%d,%d)\n", m.RightX, m.RightY)
	fmt.Printf("  triggers     axes (%d,%d)\n", m.LeftTrigger, m.RightTrigger)
	return nil
}

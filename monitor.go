package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"padkit/pad"
)

// Button indices worth reporting; pads rarely expose more.
const maxButtons = 32

// runMonitor polls the controller at ~60Hz and prints every edge it
// sees, until interrupted.
func runMonitor() error {
	if err := sdl.Init(sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("SDL init: %w", err)
	}
	defer sdl.Quit()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := pad.LoadConfigOrDefault()
	dev := pad.NewDevice(cfg)
	defer dev.Close()

	fmt.Println("monitoring controller input, ctrl-c to quit")

	var g errgroup.Group
	g.Go(func() error {
		for frame := uint64(0); ; frame++ {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			if !dev.Connected() {
				dev.Connect()
			}
			if dev.Poll(frame) == pad.StatusConnected {
				report(dev)
			}
			sdl.Delay(16)
		}
	})
	return g.Wait()
}

func report(dev *pad.Device) {
	for i := range maxButtons {
		if dev.JustPressed(i) {
			fmt.Printf("button %d pressed\n", i)
		}
		if dev.JustReleased(i) {
			fmt.Printf("button %d released\n", i)
		}
	}
	if dev.TriggerJustPressed(pad.LeftTrigger) {
		fmt.Println("left trigger pressed")
	}
	if dev.TriggerJustPressed(pad.RightTrigger) {
		fmt.Println("right trigger pressed")
	}
	if d, ok := dev.DirectionJustPressed(); ok {
		fmt.Println("direction", d)
	}
}

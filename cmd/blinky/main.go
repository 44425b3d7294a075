// Blinky runs the heartbeat service on the selected board's LED. Pick the
// board with a build tag:
//
//	tinygo flash -target pico -tags "$(bspctl resolve rp-pico --tags)" ./cmd/blinky
package main

import (
	"context"
	"time"

	"github.com/danforbes/rp-hal/boards/selected"
	"github.com/danforbes/rp-hal/bus"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/services/heartbeat"
	"github.com/danforbes/rp-hal/x/conv"
)

const period = 500 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	b := selected.Board()
	var led platform.Pin
	if n := b.LED(); n >= 0 {
		p, err := platform.Output(platform.Default().Pins, n, false)
		if err != nil {
			println("Error: blinky:", err.Error())
			return
		}
		led = p
		println("Info: blinky:", b.Name(), "LED on GPIO", conv.Dec(n))
	} else {
		println("Info: blinky:", b.Name(), "has no plain LED, beating without one")
	}

	bb := bus.NewBus(4)
	if err := heartbeat.New(led, period).Start(ctx, bb.NewConnection("heartbeat")); err != nil {
		println("Error: blinky: heartbeat:", err.Error())
		return
	}

	for m := range bb.NewConnection("console").Subscribe(heartbeat.TopicBeat).Channel() {
		if n, ok := m.Payload.(uint32); ok && n%10 == 0 {
			println("Info: blinky: beat", conv.Dec(int(n)))
		}
	}
}

package main

import (
	"github.com/danforbes/rp-hal/bus"
	"github.com/danforbes/rp-hal/platform"
)

// TopicKeys carries one retained Event per key under keys/<name>.
var TopicKeys = bus.T("keys")

// Event is published on every key transition.
type Event struct {
	Key     string
	Pressed bool
}

type key struct {
	name string
	pin  platform.Pin
	down bool
}

// keypad polls active-low keys and lights the LED while any is held.
type keypad struct {
	keys []*key
	led  platform.Pin
}

type keySpec struct {
	name string
	gpio int
}

func newKeypad(f platform.PinFactory, ledGPIO int, specs []keySpec) (*keypad, error) {
	led, err := platform.Output(f, ledGPIO, false)
	if err != nil {
		return nil, err
	}
	k := &keypad{led: led}
	for _, s := range specs {
		p, err := platform.Input(f, s.gpio, platform.PullUp)
		if err != nil {
			return nil, err
		}
		k.keys = append(k.keys, &key{name: s.name, pin: p})
	}
	return k, nil
}

// poll samples every key once, publishes transitions and returns how many
// keys are held.
func (k *keypad) poll(conn *bus.Connection) int {
	held := 0
	for _, ky := range k.keys {
		down := !ky.pin.Get()
		if down {
			held++
		}
		if down == ky.down {
			continue
		}
		ky.down = down
		conn.Publish(conn.NewMessage(TopicKeys.Append(ky.name), Event{Key: ky.name, Pressed: down}, true))
	}
	k.led.Set(held > 0)
	return held
}

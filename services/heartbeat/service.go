// Package heartbeat toggles a status LED and publishes a beat counter on a
// fixed interval. The interval can be changed at runtime over the bus.
package heartbeat

import (
	"context"
	"time"

	"github.com/danforbes/rp-hal/bus"
	"github.com/danforbes/rp-hal/platform"
)

var (
	TopicConfig = bus.T("config", "heartbeat")
	TopicBeat   = bus.T("bsp", "heartbeat")
)

const DefaultInterval = time.Second

// Config is the payload accepted on TopicConfig.
type Config struct {
	Interval time.Duration
}

type Service struct {
	led      platform.Pin
	interval time.Duration
}

// New builds a heartbeat on led; led may be nil for boards without one.
func New(led platform.Pin, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{led: led, interval: interval}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, cfgSub *bus.Subscription) {
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	var beats uint32
	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			return
		case <-tick.C:
			beats++
			if s.led != nil {
				s.led.Toggle()
			}
			conn.Publish(conn.NewMessage(TopicBeat, beats, true))
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			c, ok := msg.Payload.(Config)
			if !ok || c.Interval <= 0 {
				println("Info: heartbeat ignoring config on", msg.Topic.String())
				continue
			}
			tick.Reset(c.Interval)
			println("Info: heartbeat interval set to", c.Interval.String())
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	cfgSub := conn.Subscribe(TopicConfig)
	go s.serviceLoop(ctx, conn, cfgSub)
	return nil
}

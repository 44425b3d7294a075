// Package boardinfo publishes the selected board's identity, features, pin
// table and default buses as retained bus messages, and answers pin lookups.
package boardinfo

import (
	"context"
	"errors"
	"strings"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/bus"
	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

var (
	TopicBoard    = bus.T("bsp", "board")
	TopicFeatures = bus.T("bsp", "features")
	TopicPins     = bus.T("bsp", "pins")
	TopicBuses    = bus.T("bsp", "buses")
	TopicPinGet   = bus.T("bsp", "pin", "get")
)

// Info is the payload of TopicBoard.
type Info struct {
	Name    string
	Version string
	Chip    string
	XOSCHz  uint32
	LED     int
}

// Reply is the payload answering a TopicPinGet request.
type Reply struct {
	Pin types.PinAlias
	Err error
}

type Service struct {
	board    boards.Board
	features []string
}

// New prepares the service for b with the given enabled features.
func New(b boards.Board, features []string) *Service {
	return &Service{board: b, features: append([]string(nil), features...)}
}

// Publish emits every retained message once.
func (s *Service) Publish(conn *bus.Connection) {
	m := s.board.Manifest
	conn.Publish(conn.NewMessage(TopicBoard, Info{
		Name:    m.Identity.Name,
		Version: m.Identity.Version,
		Chip:    m.Chip,
		XOSCHz:  m.XOSCHz,
		LED:     s.board.LED(),
	}, true))
	conn.Publish(conn.NewMessage(TopicFeatures, s.features, true))
	for _, p := range m.Pins {
		conn.Publish(conn.NewMessage(TopicPins.Append(p.Label), p, true))
	}
	for _, b := range m.Buses {
		conn.Publish(conn.NewMessage(TopicBuses.Append(b.ID), b, true))
	}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, req *bus.Subscription) {
	defer conn.Unsubscribe(req)

	for {
		select {
		case <-ctx.Done():
			println("Info: boardinfo service stopping")
			return
		case msg, ok := <-req.Channel():
			if !ok {
				return
			}
			label, _ := msg.Payload.(string)
			p, err := s.board.PinByLabel(strings.TrimSpace(label))
			conn.Reply(msg, Reply{Pin: p, Err: err}, false)
		}
	}
}

// Start publishes the board description and serves pin lookups until ctx ends.
// It publishes nothing if ctx is already done.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	if err := ctx.Err(); err != nil {
		return errcode.Wrap(errcode.Error, "boardinfo.Start", err)
	}
	s.Publish(conn)
	println("Info: boardinfo published", s.board.Name())
	req := conn.Subscribe(TopicPinGet)
	go s.serviceLoop(ctx, conn, req)
	return nil
}

// LookupPin asks a running service for label.
func LookupPin(ctx context.Context, conn *bus.Connection, label string) (types.PinAlias, error) {
	reply, err := conn.RequestWait(ctx, conn.NewMessage(TopicPinGet, label, false))
	if err != nil {
		return types.PinAlias{}, errcode.Wrap(errcode.Error, "boardinfo.LookupPin", err)
	}
	r, ok := reply.Payload.(Reply)
	if !ok {
		return types.PinAlias{}, errors.New("boardinfo: unexpected reply payload")
	}
	return r.Pin, r.Err
}

// Pins collects the retained pin table from the bus, keyed by label.
func Pins(b *bus.Bus) map[string]types.PinAlias {
	out := map[string]types.PinAlias{}
	for _, m := range b.Retained(TopicPins.Append(bus.SingleLevel)) {
		if p, ok := m.Payload.(types.PinAlias); ok {
			out[p.Label] = p
		}
	}
	return out
}

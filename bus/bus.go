// Package bus is an in-process pub/sub broker with retained messages,
// MQTT-style wildcards ("+" one level, "#" the rest) and request/reply.
package bus

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	SingleLevel = "+"
	MultiLevel  = "#"
)

// Topic is a path of levels.
type Topic []string

// T builds a topic from levels.
func T(levels ...string) Topic { return Topic(levels) }

// Parse splits "a/b/c" into a topic.
func Parse(s string) Topic {
	if s == "" {
		return nil
	}
	return Topic(strings.Split(s, "/"))
}

func (t Topic) String() string { return strings.Join(t, "/") }

// Append returns t extended by levels without aliasing t.
func (t Topic) Append(levels ...string) Topic {
	out := make(Topic, 0, len(t)+len(levels))
	return append(append(out, t...), levels...)
}

// Match reports whether the concrete topic t matches filter.
func (t Topic) Match(filter Topic) bool {
	for i, f := range filter {
		if f == MultiLevel {
			return true
		}
		if i >= len(t) {
			return false
		}
		if f != SingleLevel && f != t[i] {
			return false
		}
	}
	return len(t) == len(filter)
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
	ReplyTo  Topic
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	filter Topic
	ch     chan *Message
	conn   *Connection

	mu     sync.Mutex
	closed bool
}

func (s *Subscription) Topic() Topic             { return s.filter }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// deliver enqueues m, dropping the oldest queued message when full.
func (s *Subscription) deliver(m *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- m:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu       sync.RWMutex
	subs     map[*Subscription]struct{}
	retained map[string]*Message
	qLen     int
	nextID   atomic.Uint64
}

// NewBus creates a bus with the given per-subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		subs:     map[*Subscription]struct{}{},
		retained: map[string]*Message{},
		qLen:     queueLen,
	}
}

// NewMessage builds a message; Publish it on any connection.
func (b *Bus) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// Publish delivers msg to every matching subscription. A retained message
// replaces the stored one for its topic; a retained nil payload clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	if msg.Retained {
		key := msg.Topic.String()
		if msg.Payload == nil {
			delete(b.retained, key)
		} else {
			b.retained[key] = msg
		}
	}
	var targets []*Subscription
	for s := range b.subs {
		if msg.Topic.Match(s.filter) {
			targets = append(targets, s)
		}
	}
	b.mu.Unlock()

	if msg.Retained && msg.Payload == nil {
		return
	}
	for _, s := range targets {
		s.deliver(msg)
	}
}

// Retained returns the stored messages matching filter.
func (b *Bus) Retained(filter Topic) []*Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*Message
	for _, m := range b.retained {
		if m.Topic.Match(filter) {
			out = append(out, m)
		}
	}
	return out
}

func (b *Bus) add(s *Subscription) {
	b.mu.Lock()
	b.subs[s] = struct{}{}
	var backlog []*Message
	for _, m := range b.retained {
		if m.Topic.Match(s.filter) {
			backlog = append(backlog, m)
		}
	}
	b.mu.Unlock()
	for _, m := range backlog {
		s.deliver(m)
	}
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	delete(b.subs, s)
	b.mu.Unlock()
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

// NewConnection creates a connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(topic, payload, retained)
}

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// Subscribe registers a filter owned by this connection. Retained messages
// matching the filter are delivered first.
func (c *Connection) Subscribe(filter Topic) *Subscription {
	s := &Subscription{filter: filter, ch: make(chan *Message, c.bus.qLen), conn: c}
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()
	c.bus.add(s)
	return s
}

// Unsubscribe removes s and closes its channel. Safe to call twice.
func (c *Connection) Unsubscribe(s *Subscription) {
	c.mu.Lock()
	for i, x := range c.subs {
		if x == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.bus.remove(s)
	s.close()
}

// Disconnect closes every subscription.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, s := range subs {
		c.bus.remove(s)
		s.close()
	}
}

// Request subscribes to a fresh reply topic, stamps it on msg and publishes.
func (c *Connection) Request(msg *Message) *Subscription {
	n := c.bus.nextID.Add(1)
	msg.ReplyTo = T("_reply", c.id, strconv.FormatUint(n, 10))
	s := c.Subscribe(msg.ReplyTo)
	c.Publish(msg)
	return s
}

// RequestWait sends msg and waits for the first reply or ctx expiry.
func (c *Connection) RequestWait(ctx context.Context, msg *Message) (*Message, error) {
	s := c.Request(msg)
	defer c.Unsubscribe(s)
	select {
	case m := <-s.Channel():
		return m, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Reply answers req on its ReplyTo topic. Requests without one are ignored.
func (c *Connection) Reply(req *Message, payload any, retained bool) {
	if len(req.ReplyTo) == 0 {
		return
	}
	c.Publish(c.NewMessage(req.ReplyTo, payload, retained))
}

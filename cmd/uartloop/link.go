package main

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/x/conv"
)

const idlePoll = time.Millisecond

// link writes on one port and collects what arrives on another.
type link struct {
	tx  io.Writer
	rxq chan []byte
}

func newLink(tx io.Writer, rx io.Reader) *link {
	l := &link{tx: tx, rxq: make(chan []byte, 8)}
	go l.pump(rx)
	return l
}

func (l *link) pump(rx io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := rx.Read(buf)
		if n > 0 {
			l.rxq <- append([]byte(nil), buf[:n]...)
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			time.Sleep(idlePoll)
		default:
			println("Error: uartloop: read:", err.Error())
			return
		}
	}
}

// drain drops whatever arrived since the last ping, such as the tail of an
// echo that timed out.
func (l *link) drain() {
	for {
		select {
		case <-l.rxq:
		default:
			return
		}
	}
}

// ping sends msg and waits for the same bytes to come back.
func (l *link) ping(msg []byte, wait time.Duration) error {
	const op = "uartloop.ping"
	l.drain()
	if _, err := l.tx.Write(msg); err != nil {
		return errcode.Wrap(errcode.Error, op, err)
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	var got []byte
	for len(got) < len(msg) {
		select {
		case b := <-l.rxq:
			got = append(got, b...)
		case <-timer.C:
			return errcode.New(errcode.Error, op, "timeout after "+conv.Dec(len(got))+" of "+conv.Dec(len(msg))+" bytes")
		}
	}
	if !bytes.Equal(got[:len(msg)], msg) {
		return errcode.New(errcode.Error, op, "echo mismatch: "+string(got))
	}
	return nil
}

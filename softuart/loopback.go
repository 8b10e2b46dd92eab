//go:build !avr

package softuart

import (
	"context"
	"sync"

	"github.com/jangala-dev/tinygo-softuart/errcode"
	"github.com/jangala-dev/tinygo-softuart/timing"
)

// Frame is one transmitted byte with the delay it was sent with.
type Frame struct {
	Data  byte
	Delay uint8
}

// Loopback is a host stand-in for the timing primitives, wired TX to RX.
// Every transmitted byte is logged and queued for reception; Inject queues
// bytes from the far end. Delay arguments that differ from the expected
// Delays panic, since on hardware they would corrupt the bit timing.
type Loopback struct {
	want timing.Delays

	mu   sync.Mutex
	rx   ring
	sent []Frame

	notify chan struct{}
	closed chan struct{}
}

// NewLoopback returns a Loopback expecting the parameters derived in d.
func NewLoopback(d timing.Delays) *Loopback {
	return &Loopback{
		want:   d,
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// TxTimedByte logs b and queues it for reception.
func (l *Loopback) TxTimedByte(b byte, delay uint8) {
	if delay != l.want.TxParam() {
		panic(&errcode.E{C: errcode.InvalidConfig, Op: "softuart.TxTimedByte", Msg: "unexpected tx delay"})
	}
	l.mu.Lock()
	l.sent = append(l.sent, Frame{Data: b, Delay: delay})
	l.mu.Unlock()
	l.Inject(b)
}

// RxTimedByte blocks until a byte is queued. After Close it returns 0 once
// the queue is empty.
func (l *Loopback) RxTimedByte(startDelay, bitDelay uint8) byte {
	if startDelay != l.want.RxStartParam() || bitDelay != l.want.RxParam() {
		panic(&errcode.E{C: errcode.InvalidConfig, Op: "softuart.RxTimedByte", Msg: "unexpected rx delays"})
	}
	b, _ := l.next(context.Background())
	return b
}

// Inject queues b as if the far end had sent it.
func (l *Loopback) Inject(b byte) {
	l.mu.Lock()
	wasEmpty := l.rx.len() == 0
	l.rx.put(b)
	l.mu.Unlock()
	if wasEmpty {
		select {
		case l.notify <- struct{}{}:
		default:
		}
	}
}

// Sent returns a copy of the transmit log.
func (l *Loopback) Sent() []Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Frame, len(l.sent))
	copy(out, l.sent)
	return out
}

// Pending reports how many bytes are queued for reception.
func (l *Loopback) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rx.len()
}

// WaitReadable blocks until a byte is queued, the loopback is closed or ctx
// is done.
func (l *Loopback) WaitReadable(ctx context.Context) error {
	for {
		if l.Pending() > 0 {
			return nil
		}
		select {
		case <-l.notify:
			// coalesced; re-check
		case <-l.closed:
			return context.Canceled
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases blocked receivers.
func (l *Loopback) Close() error {
	select {
	case <-l.closed:
	default:
		close(l.closed)
	}
	return nil
}

func (l *Loopback) next(ctx context.Context) (byte, error) {
	for {
		l.mu.Lock()
		if l.rx.len() > 0 {
			b := l.rx.get()
			l.mu.Unlock()
			return b, nil
		}
		l.mu.Unlock()
		if err := l.WaitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

// -------- tiny ring buffer (bytes) --------

type ring struct {
	buf        [512]byte
	head, tail int
}

func (r *ring) len() int {
	if r.head >= r.tail {
		return r.head - r.tail
	}
	return len(r.buf) - r.tail + r.head
}

func (r *ring) put(b byte) {
	next := (r.head + 1) % len(r.buf)
	if next == r.tail {
		// drop oldest
		r.tail = (r.tail + 1) % len(r.buf)
	}
	r.buf[r.head] = b
	r.head = next
}

func (r *ring) get() byte {
	if r.len() == 0 {
		return 0
	}
	b := r.buf[r.tail]
	r.tail = (r.tail + 1) % len(r.buf)
	return b
}

// Package softuart wraps the cycle-timed transmit/receive primitives of a
// half-duplex bit-banged UART. The primitives busy-wait on the pin and must
// own the line (interrupts effectively suspended) while a byte is in flight;
// this package only supplies their delay parameters.
//
// The line is half-duplex and unbuffered: a byte is only received while
// Receive (or Read/ReadByte) is blocked in the primitive.
package softuart

import (
	"github.com/jangala-dev/tinygo-softuart/timing"
	"tinygo.org/x/drivers"
)

// Primitives is the calling convention of the external timing routines.
type Primitives interface {
	// TxTimedByte shifts b out, holding each bit for delay loop iterations.
	TxTimedByte(b byte, delay uint8)
	// RxTimedByte waits for a start bit, waits startDelay iterations to the
	// middle of bit 0, then samples every bitDelay iterations.
	RxTimedByte(startDelay, bitDelay uint8) byte
}

// UART sends and receives single bytes through Primitives with fixed delays.
type UART struct {
	prim   Primitives
	delays timing.Delays

	tx      uint8
	rxStart uint8
	rx      uint8

	stats Stats
}

var _ drivers.UART = (*UART)(nil)

// New validates cfg and returns a UART over p. A configuration the primitives
// cannot represent is an error; nothing is clamped.
func New(p Primitives, cfg timing.Config) (*UART, error) {
	d, err := timing.Compute(cfg)
	if err != nil {
		return nil, err
	}
	return newUART(p, d), nil
}

func newUART(p Primitives, d timing.Delays) *UART {
	return &UART{
		prim:    p,
		delays:  d,
		tx:      d.TxParam(),
		rxStart: d.RxStartParam(),
		rx:      d.RxParam(),
	}
}

// Delays returns the loop counts in use.
func (u *UART) Delays() timing.Delays { return u.delays }

// Send transmits one byte. It returns once the stop bit has been driven.
func (u *UART) Send(b byte) {
	u.prim.TxTimedByte(b, u.tx)
	u.dbgTx()
}

// Receive blocks in the primitive until a byte has been sampled.
func (u *UART) Receive() byte {
	b := u.prim.RxTimedByte(u.rxStart, u.rx)
	u.dbgRx()
	return b
}

// WriteByte is Send with the io.ByteWriter signature. It never fails.
func (u *UART) WriteByte(c byte) error {
	u.Send(c)
	return nil
}

// ReadByte is Receive with the io.ByteReader signature. It never fails.
func (u *UART) ReadByte() (byte, error) {
	return u.Receive(), nil
}

// Write implements io.Writer, sending p back to back.
func (u *UART) Write(p []byte) (int, error) {
	for _, b := range p {
		u.Send(b)
	}
	return len(p), nil
}

// Read implements io.Reader. It blocks for exactly one byte and returns 1;
// there is no buffer to drain further bytes into.
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = u.Receive()
	return 1, nil
}

// Buffered is always 0: the receiver has no buffer.
func (u *UART) Buffered() int { return 0 }

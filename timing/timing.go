// Package timing derives the delay-loop counts that parameterize the
// cycle-timed software UART primitives (TxTimedByte/RxTimedByte) from a CPU
// clock and a baud rate.
//
// The arithmetic reproduces the firmware's constant expressions exactly,
// including the fixed instruction-overhead terms of the assembly primitives
// and the +1.5/+2 rounding biases applied before truncating division by the
// three cycles each delay-loop iteration costs. Fractional terms are carried
// in scaled integers so results are exact and truncate toward zero, as the C
// double to char conversion at the call site does.
package timing

import (
	"strconv"

	"github.com/jangala-dev/tinygo-softuart/errcode"
	"github.com/jangala-dev/tinygo-softuart/internal/mathx"
)

// Fixed costs of the external primitives. Tied to the instruction count of
// TxTimedByte/RxTimedByte; do not tune.
const (
	TxOverheadCycles   = 7 // per-bit overhead outside the delay loop, transmit
	RxOverheadCycles   = 5 // per-bit overhead outside the delay loop, receive
	CyclesPerIteration = 3 // one delay-loop iteration

	// MaxRxRounded is the largest rounded receive delay the primitive accepts.
	// The 1.5-bit start delay derived from it must still fit a one-byte
	// loop counter.
	MaxRxRounded = 127

	// MinDelay is the smallest usable loop count; zero wraps the counter.
	MinDelay = 1
)

// Config is the explicit clock source and target rate. Nothing in this
// package reads a board-wide clock constant.
type Config struct {
	CPUFrequencyHz uint32
	BaudRate       uint32
}

// Delays holds the derived loop counts for one Config.
type Delays struct {
	CyclesPerBit int64 // CPUFrequencyHz / BaudRate, integer division
	TxDelay      int64 // transmit bit delay
	RxDelay      int64 // receive bit delay
	RxRounded    int64 // rounded receive delay; range check only
	RxStartDelay int64 // delay from the start-bit edge to the middle of bit 0
}

// derive applies the firmware expressions to a cycles-per-bit count.
//
//	TxDelay      = ((c - 7 + 1.5) / 3)             = (2c - 11) / 6
//	RxDelay      = ((c - 5 + 1.5) / 3)             = (2c - 7) / 6
//	RxRounded    =  (c - 5 + 2) / 3                  (integer maths)
//	RxStartDelay = ((c - 5 + 1.5) / 3) * 1.5 - 2.5 = (2c - 17) / 4
//
// RxStartDelay is built from the unrounded receive delay, as the RxByte
// macro expands it.
func derive(c int64) Delays {
	tx6 := 2*c - 2*TxOverheadCycles + 3 // 6 * unrounded TxDelay
	rx6 := 2*c - 2*RxOverheadCycles + 3 // 6 * unrounded RxDelay
	return Delays{
		CyclesPerBit: c,
		TxDelay:      mathx.TruncDiv(tx6, 2*CyclesPerIteration),
		RxDelay:      mathx.TruncDiv(rx6, 2*CyclesPerIteration),
		RxRounded:    mathx.TruncDiv(c-RxOverheadCycles+2, CyclesPerIteration),
		// rx6/6 * 3/2 - 5/2 = (rx6 - 10) / 4
		RxStartDelay: mathx.TruncDiv(rx6-10, 4),
	}
}

// Compute derives the delay counts for cfg and validates them.
//
// When the configuration is rejected for range reasons the derived Delays are
// still returned alongside the error so callers can report them. Values are
// never clamped.
func Compute(cfg Config) (Delays, error) {
	const op = "timing.Compute"
	if cfg.CPUFrequencyHz == 0 || cfg.BaudRate == 0 {
		return Delays{}, &errcode.E{C: errcode.InvalidConfig, Op: op,
			Msg: "cpu frequency and baud rate must be non-zero"}
	}

	d := derive(int64(cfg.CPUFrequencyHz / cfg.BaudRate))

	if d.RxRounded > MaxRxRounded {
		return d, &errcode.E{C: errcode.UnsupportedBaudRate, Op: op,
			Msg: "baud rate " + utoa(cfg.BaudRate) + " too low for " + utoa(cfg.CPUFrequencyHz) +
				" Hz clock (rx delay " + strconv.FormatInt(d.RxRounded, 10) + " > 127); use a higher baud rate"}
	}
	for _, v := range [...]int64{d.TxDelay, d.RxDelay, d.RxStartDelay} {
		if mathx.Between(v, MinDelay, 255) {
			continue
		}
		return d, &errcode.E{C: errcode.BaudRateTooHigh, Op: op,
			Msg: "baud rate " + utoa(cfg.BaudRate) + " too high for " + utoa(cfg.CPUFrequencyHz) +
				" Hz clock (" + strconv.FormatInt(d.CyclesPerBit, 10) + " cycles per bit)"}
	}
	return d, nil
}

// MustCompute is Compute for initialisation paths: it panics on a rejected
// configuration instead of running with wrong bit timing.
func MustCompute(cfg Config) Delays {
	d, err := Compute(cfg)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// TxParam is the delay argument for TxTimedByte.
func (d Delays) TxParam() uint8 { return uint8(d.TxDelay) }

// RxParam is the per-bit delay argument for RxTimedByte.
func (d Delays) RxParam() uint8 { return uint8(d.RxDelay) }

// RxStartParam is the 1.5-bit start delay argument for RxTimedByte.
func (d Delays) RxStartParam() uint8 { return uint8(d.RxStartDelay) }

// TxBitCycles is the bit period, in CPU cycles, the transmit primitive
// produces for d.TxDelay.
func (d Delays) TxBitCycles() int64 { return CyclesPerIteration*d.TxDelay + TxOverheadCycles }

// RxBitCycles is the sampling period, in CPU cycles, of the receive primitive.
func (d Delays) RxBitCycles() int64 { return CyclesPerIteration*d.RxDelay + RxOverheadCycles }

func utoa(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

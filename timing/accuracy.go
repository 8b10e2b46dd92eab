package timing

import "github.com/jangala-dev/tinygo-softuart/internal/mathx"

// ActualTxBaud is the bit rate the transmit primitive achieves with d.
func (c Config) ActualTxBaud(d Delays) uint32 {
	bc := d.TxBitCycles()
	if bc <= 0 {
		return 0
	}
	return uint32(int64(c.CPUFrequencyHz) / bc)
}

// TxErrorPPM is the transmit bit-rate error in parts per million; positive
// means faster than requested.
func (c Config) TxErrorPPM(d Delays) int64 { return c.errorPPM(d.TxBitCycles()) }

// RxErrorPPM is the receive sampling-rate error in parts per million.
func (c Config) RxErrorPPM(d Delays) int64 { return c.errorPPM(d.RxBitCycles()) }

func (c Config) errorPPM(bitCycles int64) int64 {
	if bitCycles <= 0 || c.BaudRate == 0 {
		return 0
	}
	const ppm = 1_000_000
	actual := int64(c.CPUFrequencyHz) * ppm / bitCycles // achieved rate, scaled by ppm
	return (actual - int64(c.BaudRate)*ppm) / int64(c.BaudRate)
}

// Within reports whether both directions are inside tolerancePPM of the
// requested rate. Asynchronous framing tolerates roughly 2% (20000 ppm)
// of accumulated error over a 10-bit character.
func (c Config) Within(d Delays, tolerancePPM int64) bool {
	return mathx.Abs(c.TxErrorPPM(d)) <= tolerancePPM &&
		mathx.Abs(c.RxErrorPPM(d)) <= tolerancePPM
}

// DefaultTolerancePPM is the 2% timing budget of the primitives.
const DefaultTolerancePPM = 20_000

// StandardBaudRates lists the common serial rates, highest first.
var StandardBaudRates = []uint32{
	230400, 115200, 76800, 57600, 38400, 28800, 19200, 14400, 9600, 4800, 2400, 1200,
}

// Row is one line of a rate table.
type Row struct {
	Config Config
	Delays Delays
	Err    error // nil when the configuration is accepted
}

// Table computes every standard rate for cpuHz.
func Table(cpuHz uint32) []Row {
	rows := make([]Row, 0, len(StandardBaudRates))
	for _, b := range StandardBaudRates {
		cfg := Config{CPUFrequencyHz: cpuHz, BaudRate: b}
		d, err := Compute(cfg)
		rows = append(rows, Row{Config: cfg, Delays: d, Err: err})
	}
	return rows
}

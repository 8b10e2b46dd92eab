package softuart

import "github.com/jangala-dev/tinygo-softuart/timing"

// CPUFrequencyHz is the clock the delay loops run at. It is fixed at 16 MHz
// rather than taken from the board: Digispark builds report 16.5 MHz for
// V-USB, but the UART runs with USB disconnected.
const CPUFrequencyHz = 16_000_000

// Build-time delay constants for BaudRate at CPUFrequencyHz.
const (
	CyclesPerBit = CPUFrequencyHz / BaudRate

	TxDelay      = (2*CyclesPerBit - 2*timing.TxOverheadCycles + 3) / (2 * timing.CyclesPerIteration)
	RxDelay      = (2*CyclesPerBit - 2*timing.RxOverheadCycles + 3) / (2 * timing.CyclesPerIteration)
	RxRounded    = (CyclesPerBit - timing.RxOverheadCycles + 2) / timing.CyclesPerIteration
	RxStartDelay = (2*CyclesPerBit - 2*timing.RxOverheadCycles + 3 - 10) / 4
)

// Low baud rates unsupported: the build stops here ("overflows uint8") when
// RxRounded exceeds 127. Select a higher BaudRate.
const _ uint8 = timing.MaxRxRounded - RxRounded

// Baud rate too high for the clock: stops the build when a delay drops
// below one iteration.
const (
	_ uint8 = TxDelay - timing.MinDelay
	_ uint8 = RxStartDelay - timing.MinDelay
)

// BuildConfig is the configuration the constants above were derived from.
func BuildConfig() timing.Config {
	return timing.Config{CPUFrequencyHz: CPUFrequencyHz, BaudRate: BaudRate}
}

// BuildDelays returns the build-time constants as timing.Delays.
func BuildDelays() timing.Delays {
	return timing.Delays{
		CyclesPerBit: CyclesPerBit,
		TxDelay:      TxDelay,
		RxDelay:      RxDelay,
		RxRounded:    RxRounded,
		RxStartDelay: RxStartDelay,
	}
}

//go:build !avr

package softuart

// Host shim: no pin to bit-bang, so Default runs over a Loopback that checks
// the delay arguments against the build-time constants.

// Default is the UART with the build-time delays over a fresh Loopback.
func Default() *UART {
	d := BuildDelays()
	return newUART(NewLoopback(d), d)
}

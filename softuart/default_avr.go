//go:build avr

package softuart

// Implemented in assembly alongside the firmware (BasicSerial3.S).
//
//export TxTimedByte
func txTimedByte(c byte, delay uint8)

//export RxTimedByte
func rxTimedByte(startDelay, bitDelay uint8) byte

type asmPrimitives struct{}

func (asmPrimitives) TxTimedByte(b byte, delay uint8) { txTimedByte(b, delay) }

func (asmPrimitives) RxTimedByte(startDelay, bitDelay uint8) byte {
	return rxTimedByte(startDelay, bitDelay)
}

// Default is the UART on the assembly primitives with the build-time delays.
func Default() *UART { return newUART(asmPrimitives{}, BuildDelays()) }

//go:build !softuart_baud115200 && !softuart_baud230400

package softuart

// BaudRate is the line rate. 57600 is the most reliable rate on Digispark
// boards; build with -tags softuart_baud115200 or softuart_baud230400 to
// change it.
const BaudRate = 57600

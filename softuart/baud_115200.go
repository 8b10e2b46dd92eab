//go:build softuart_baud115200 && !softuart_baud230400

package softuart

const BaudRate = 115200

//go:build softuart_baud230400

package softuart

const BaudRate = 230400

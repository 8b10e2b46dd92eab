//go:build !avr

// softuart_table prints the software UART delay constants for a clock.
//
//	softuart_table -cpu 16000000
//	softuart_table -cpu 8000000 -baud 38400
//
// With -baud it prints one configuration and exits 1 if it is rejected.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jangala-dev/tinygo-softuart/errcode"
	"github.com/jangala-dev/tinygo-softuart/timing"
)

func main() {
	cpu := flag.Uint("cpu", 16_000_000, "CPU clock the delay loops run at, Hz")
	baud := flag.Uint("baud", 0, "single baud rate to check (0 = standard table)")
	tol := flag.Int64("tol", timing.DefaultTolerancePPM, "bit-rate tolerance, ppm")
	flag.Parse()

	var rows []timing.Row
	if *baud != 0 {
		cfg := timing.Config{CPUFrequencyHz: uint32(*cpu), BaudRate: uint32(*baud)}
		d, err := timing.Compute(cfg)
		rows = []timing.Row{{Config: cfg, Delays: d, Err: err}}
	} else {
		rows = timing.Table(uint32(*cpu))
	}

	writeTable(os.Stdout, rows, *tol)

	if *baud != 0 && rows[0].Err != nil {
		fmt.Fprintln(os.Stderr, "error:", rows[0].Err)
		os.Exit(1)
	}
}

func writeTable(w io.Writer, rows []timing.Row, tol int64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "baud\tcycles/bit\ttx\trx\trx start\trx rounded\ttx err ppm\trx err ppm\tstatus\t")
	for _, r := range rows {
		status := "ok"
		switch {
		case r.Err != nil:
			status = string(errcode.Of(r.Err))
		case !r.Config.Within(r.Delays, tol):
			status = "out_of_tolerance"
		}
		if errcode.Of(r.Err) == errcode.InvalidConfig {
			fmt.Fprintf(tw, "%d\t-\t-\t-\t-\t-\t-\t-\t%s\t\n", r.Config.BaudRate, status)
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t\n",
			r.Config.BaudRate, r.Delays.CyclesPerBit,
			r.Delays.TxDelay, r.Delays.RxDelay, r.Delays.RxStartDelay, r.Delays.RxRounded,
			r.Config.TxErrorPPM(r.Delays), r.Config.RxErrorPPM(r.Delays), status)
	}
	tw.Flush()
}

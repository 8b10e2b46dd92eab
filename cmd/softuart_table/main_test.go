//go:build !avr

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jangala-dev/tinygo-softuart/timing"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, timing.Table(16_000_000), timing.DefaultTolerancePPM)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(timing.StandardBaudRates)+1 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for _, l := range lines[1:] {
		f := strings.Fields(l)
		switch f[0] {
		case "57600":
			if f[2] != "90" || f[3] != "91" || f[4] != "134" || f[len(f)-1] != "ok" {
				t.Fatalf("57600 row: %q", l)
			}
		case "9600":
			if f[len(f)-1] != "unsupported_baud_rate" {
				t.Fatalf("9600 row: %q", l)
			}
		}
	}
}

func TestWriteTable_InvalidRow(t *testing.T) {
	cfg := timing.Config{CPUFrequencyHz: 0, BaudRate: 9600}
	d, err := timing.Compute(cfg)
	var buf bytes.Buffer
	writeTable(&buf, []timing.Row{{Config: cfg, Delays: d, Err: err}}, timing.DefaultTolerancePPM)
	if !strings.Contains(buf.String(), "invalid_config") {
		t.Fatalf("output %q", buf.String())
	}
}

//go:build softuartdebug && !avr

package softuart

import "testing"

func TestDebugStats_CountsBytes(t *testing.T) {
	u := Default()
	u.Send('a')
	u.Send('b')
	_ = u.Receive()

	s := u.DebugStats()
	if s.TxBytes != 2 || s.RxBytes != 1 {
		t.Fatalf("stats %+v, want tx=2 rx=1", s)
	}
	u.DebugReset()
	if s := u.DebugStats(); s != (Stats{}) {
		t.Fatalf("after reset %+v", s)
	}
}

//go:build softuartdebug

package softuart

import "sync/atomic"

// Stats holds counters since the last reset.
type Stats struct {
	TxBytes uint32 // bytes handed to TxTimedByte
	RxBytes uint32 // bytes returned by RxTimedByte
}

func (u *UART) DebugReset() {
	atomic.StoreUint32(&u.stats.TxBytes, 0)
	atomic.StoreUint32(&u.stats.RxBytes, 0)
}

func (u *UART) DebugStats() Stats {
	return Stats{
		TxBytes: atomic.LoadUint32(&u.stats.TxBytes),
		RxBytes: atomic.LoadUint32(&u.stats.RxBytes),
	}
}

func (u *UART) dbgTx() { atomic.AddUint32(&u.stats.TxBytes, 1) }
func (u *UART) dbgRx() { atomic.AddUint32(&u.stats.RxBytes, 1) }

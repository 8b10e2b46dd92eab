//go:build !softuartdebug

package softuart

type Stats struct{}

func (u *UART) DebugReset()       {}
func (u *UART) DebugStats() Stats { return Stats{} }

func (u *UART) dbgTx() {}
func (u *UART) dbgRx() {}

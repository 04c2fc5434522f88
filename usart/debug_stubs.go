//go:build !usartdebug

package usart

type Stats struct{}

func (u *UART) dbgSpin()  {}
func (u *UART) dbgWrite() {}

func (u *UART) DebugReset()       {}
func (u *UART) DebugStats() Stats { return Stats{} }

type Regs struct{}

func (u *UART) DebugRegs() Regs { return Regs{} }

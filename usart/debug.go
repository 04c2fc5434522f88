//go:build usartdebug

package usart

import "sync/atomic"

// Stats holds counters since the last reset.
type Stats struct {
	BytesWritten uint32 // bytes written to TXDATAL
	ReadySpins   uint32 // STATUS polls that found DREIF clear
	MaxSpins     uint32 // longest single wait for DREIF, in polls

	spins uint32 // polls in the current wait
}

func (u *UART) dbgSpin() {
	atomic.AddUint32(&u.stats.ReadySpins, 1)
	atomic.AddUint32(&u.stats.spins, 1)
}

func (u *UART) dbgWrite() {
	atomic.AddUint32(&u.stats.BytesWritten, 1)
	n := atomic.SwapUint32(&u.stats.spins, 0)
	for {
		max := atomic.LoadUint32(&u.stats.MaxSpins)
		if n <= max {
			break
		}
		if atomic.CompareAndSwapUint32(&u.stats.MaxSpins, max, n) {
			break
		}
	}
}

func (u *UART) DebugReset() {
	u.stats = Stats{}
}

func (u *UART) DebugStats() Stats {
	return Stats{
		BytesWritten: atomic.LoadUint32(&u.stats.BytesWritten),
		ReadySpins:   atomic.LoadUint32(&u.stats.ReadySpins),
		MaxSpins:     atomic.LoadUint32(&u.stats.MaxSpins),
	}
}

// Regs is a snapshot of the transmitter's registers.
type Regs struct {
	STATUS      uint8
	CTRLB       uint8
	CTRLC       uint8
	BAUD        uint16
	DIR         [numPorts]uint8 // zero for ports the bus lacks
	USARTROUTEA uint8
}

func (u *UART) DebugRegs() Regs {
	r := Regs{
		STATUS:      u.Bus.STATUS.Get(),
		CTRLB:       u.Bus.CTRLB.Get(),
		CTRLC:       u.Bus.CTRLC.Get(),
		BAUD:        u.Bus.BAUD.Get(),
		USARTROUTEA: u.Bus.USARTROUTEA.Get(),
	}
	for p := range r.DIR {
		if port := u.Bus.Port(Port(p)); port != nil && port.DIR != nil {
			r.DIR[p] = port.DIR.Get()
		}
	}
	return r
}

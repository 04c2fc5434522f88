//go:build attiny1624 && usartdebug

// usart_probe pushes a burst through USART1 and reports the driver's debug
// counters over the same line.
package main

import (
	"time"

	"github.com/jangala-dev/tinygo-usart/usart"
)

const burst = 64

func main() {
	u := usart.UART1
	u.Init(usart.Config{Stdout: usart.Stdout})

	pattern := make([]byte, burst)
	for i := range pattern {
		pattern[i] = 'A' + byte(i%26)
	}

	for {
		u.DebugReset()
		_, _ = u.Write(pattern)
		_, _ = u.WriteString("\r\n")
		printStats(u)
		time.Sleep(time.Second)
	}
}

func printStats(u *usart.UART) {
	s := u.DebugStats()
	r := u.DebugRegs()
	out := usart.Stdout
	out.Printf("TX:    bytes=%d spins=%d maxspins=%d\r\n", s.BytesWritten, s.ReadySpins, s.MaxSpins)
	out.Printf("Regs:  STATUS=0x%02x CTRLB=0x%02x CTRLC=0x%02x BAUD=%d DIRA=0x%02x DIRB=0x%02x ROUTEA=0x%02x\r\n",
		r.STATUS, r.CTRLB, r.CTRLC, r.BAUD, r.DIR[usart.PortA], r.DIR[usart.PortB], r.USARTROUTEA)
}

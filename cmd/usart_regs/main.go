//go:build attiny1624

// usart_regs dumps the USART0 transmitter registers before and after Init.
// USART0 is configured first so the report itself has somewhere to go; the
// "before" column is captured ahead of that.
package main

import (
	"time"

	"github.com/jangala-dev/tinygo-usart/usart"
)

type regs struct {
	ctrlb, ctrlc, status, dirA, dirB, route uint8
	baud                                    uint16
}

func read(b *usart.Bus) regs {
	return regs{
		ctrlb:  b.CTRLB.Get(),
		ctrlc:  b.CTRLC.Get(),
		status: b.STATUS.Get(),
		dirA:   b.Port(usart.PortA).DIR.Get(),
		dirB:   b.Port(usart.PortB).DIR.Get(),
		route:  b.USARTROUTEA.Get(),
		baud:   b.BAUD.Get(),
	}
}

func main() {
	u := usart.UART0
	before := read(u.Bus)

	u.Init(usart.Config{Stdout: usart.Stdout})
	after := read(u.Bus)

	for {
		putln("Before Init:")
		report(before)
		putln("After Init:")
		report(after)
		time.Sleep(2 * time.Second)
	}
}

func putln(s string) {
	usart.Stdout.WriteString(s)
	usart.Stdout.WriteString("\r\n")
}

func report(r regs) {
	putln("-----------------------------")
	printHex("CTRLB      = 0x", uint16(r.ctrlb))
	printHex("CTRLC      = 0x", uint16(r.ctrlc))
	printHex("STATUS     = 0x", uint16(r.status))
	printHex("BAUD       = 0x", r.baud)
	printHex("PORTA.DIR  = 0x", uint16(r.dirA))
	printHex("PORTB.DIR  = 0x", uint16(r.dirB))
	printHex("USARTROUTEA= 0x", uint16(r.route))
}

func printHex(label string, v uint16) {
	const hexdigits = "0123456789abcdef"
	var b [4]byte
	for i := 0; i < 4; i++ {
		shift := uint(12 - 4*i)
		b[i] = hexdigits[(v>>shift)&0xF]
	}
	usart.Stdout.WriteString(label)
	putln(string(b[:]))
}

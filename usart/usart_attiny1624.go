// usart/usart_attiny1624.go

//go:build attiny1624

package usart

import "device/avr"

// USART instances on the ATtiny1624.
var (
	UART0 = New(NewBus(USART0), USART0)
	UART1 = New(NewBus(USART1), USART1)
)

// NewBus wires the device registers for inst. Both bonded-out ports are
// attached so Init can drive the TXD pin of either route; PORTC does not exist
// on the 14-pin package and stays nil.
func NewBus(inst Instance) *Bus {
	regs := avr.USART0
	if inst == USART1 {
		regs = avr.USART1
	}
	return &Bus{
		STATUS:  &regs.STATUS,
		CTRLB:   &regs.CTRLB,
		CTRLC:   &regs.CTRLC,
		BAUD:    &regs.BAUD,
		TXDATAL: &regs.TXDATAL,
		Ports: [numPorts]*PortRegs{
			PortA: {DIR: &avr.PORTA.DIR, DIRSET: &avr.PORTA.DIRSET},
			PortB: {DIR: &avr.PORTB.DIR, DIRSET: &avr.PORTB.DIRSET},
		},
		USARTROUTEA: &avr.PORTMUX.USARTROUTEA,
	}
}

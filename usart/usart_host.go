// usart/usart_host.go

//go:build !attiny1624

package usart

// Host shim: both instances run on simulators so code written against the
// package singletons builds and runs off-target.

var (
	Sim0 = NewSim()
	Sim1 = NewSim()

	UART0 = New(Sim0.Bus(), USART0)
	UART1 = New(Sim1.Bus(), USART1)
)

func init() {
	Sim0.AutoReady = true
	Sim1.AutoReady = true
}

//go:build attiny1624

// Firmware image: USART1 transmits 8N1 at 115200 on PA1 and stdout is bound
// to it. Interrupts stay masked; the driver is polled.
package main

import "github.com/jangala-dev/tinygo-usart/usart"

const (
	baudRate = 115200
	clkPer   = 3333333 // 20 MHz / 6
)

func main() {
	usart.UART1.Init(usart.Config{
		BaudRate: baudRate,
		ClockHz:  clkPer,
		Location: usart.LocationDefault,
		Stdout:   usart.Stdout,
	})

	for {
	}
}

// usart/registers.go

package usart

// Register8 is the method set of runtime/volatile.Register8. The hardware
// backend hands out *volatile.Register8 values directly; the simulator
// provides its own implementation.
type Register8 interface {
	Get() uint8
	Set(value uint8)
	SetBits(value uint8)
	ClearBits(value uint8)
	HasBits(value uint8) bool
}

// Register16 is the method set of runtime/volatile.Register16.
type Register16 interface {
	Get() uint16
	Set(value uint16)
	SetBits(value uint16)
	ClearBits(value uint16)
	HasBits(value uint16) bool
}

// PortRegs is the direction pair of one GPIO port.
type PortRegs struct {
	DIR    Register8
	DIRSET Register8
}

// Bus is the subset of the tinyAVR register map touched by the transmitter:
// one USART instance, the ports its TXD pin can be routed to and the USART
// route mux. Ports not bonded out on the package are nil.
type Bus struct {
	STATUS  Register8
	CTRLB   Register8
	CTRLC   Register8
	BAUD    Register16
	TXDATAL Register8

	Ports [numPorts]*PortRegs

	USARTROUTEA Register8
}

// Port returns the direction registers of p, or nil if the bus has none.
func (b *Bus) Port(p Port) *PortRegs {
	if int(p) >= len(b.Ports) {
		return nil
	}
	return b.Ports[p]
}

// USARTn.STATUS
const (
	STATUS_RXCIF = 0x80
	STATUS_TXCIF = 0x40
	STATUS_DREIF = 0x20
	STATUS_RXSIF = 0x10
	STATUS_ISFIF = 0x08
	STATUS_BDF   = 0x02
	STATUS_WFB   = 0x01
)

// USARTn.CTRLB
const (
	CTRLB_RXEN  = 0x80
	CTRLB_TXEN  = 0x40
	CTRLB_SFDEN = 0x10
	CTRLB_ODME  = 0x08
	CTRLB_MPCM  = 0x01
)

// USARTn.CTRLC (asynchronous mode layout)
const (
	CTRLC_CMODE_Msk      = 0xC0
	CTRLC_CMODE_ASYNC    = 0x00
	CTRLC_CMODE_SYNC     = 0x40
	CTRLC_CMODE_IRCOM    = 0x80
	CTRLC_CMODE_MSPI     = 0xC0
	CTRLC_PMODE_Msk      = 0x30
	CTRLC_PMODE_DISABLED = 0x00
	CTRLC_PMODE_EVEN     = 0x20
	CTRLC_PMODE_ODD      = 0x30
	CTRLC_SBMODE_Msk     = 0x08
	CTRLC_SBMODE_1BIT    = 0x00
	CTRLC_SBMODE_2BIT    = 0x08
	CTRLC_CHSIZE_Msk     = 0x07
	CTRLC_CHSIZE_5BIT    = 0x00
	CTRLC_CHSIZE_6BIT    = 0x01
	CTRLC_CHSIZE_7BIT    = 0x02
	CTRLC_CHSIZE_8BIT    = 0x03
	CTRLC_CHSIZE_9BITL   = 0x06
	CTRLC_CHSIZE_9BITH   = 0x07
)

const (
	ctrlcFormatMask = CTRLC_CMODE_Msk | CTRLC_PMODE_Msk | CTRLC_SBMODE_Msk | CTRLC_CHSIZE_Msk
	ctrlcAsync8N1   = CTRLC_CMODE_ASYNC | CTRLC_PMODE_DISABLED | CTRLC_SBMODE_1BIT | CTRLC_CHSIZE_8BIT
)

// PORTMUX.USARTROUTEA
const (
	ROUTEA_USART0_Msk  = 0x03
	ROUTEA_USART0_ALT1 = 0x01
	ROUTEA_USART0_NONE = 0x03
	ROUTEA_USART1_Msk  = 0x0C
	ROUTEA_USART1_ALT1 = 0x04
	ROUTEA_USART1_NONE = 0x0C
)

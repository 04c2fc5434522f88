// usart/pins.go

package usart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownInstance = errors.New("unknown USART instance")
	ErrUnknownLocation = errors.New("unknown USART location")
)

// Instance selects one of the two USART peripherals.
type Instance uint8

const (
	USART0 Instance = iota
	USART1
)

// Location selects the pin route of an instance (PORTMUX.USARTROUTEA).
type Location uint8

const (
	LocationDefault Location = iota
	LocationAlt1
)

// Port identifies a GPIO port.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC

	numPorts = 3
)

// Pin is a port/bit pair.
type Pin struct {
	Port Port
	Bit  uint8
}

// Mask returns the PINn_bm value for the pin.
func (p Pin) Mask() uint8 { return 1 << p.Bit }

func (p Pin) String() string {
	return fmt.Sprintf("P%c%d", 'A'+rune(p.Port), p.Bit)
}

// TXPin returns the TXD pin for an instance and route. USART1's alternate
// route (PC2) is not bonded out on the 14-pin package.
func TXPin(inst Instance, loc Location) Pin {
	switch {
	case inst == USART0 && loc == LocationAlt1:
		return Pin{PortA, 1}
	case inst == USART0:
		return Pin{PortB, 2}
	case inst == USART1 && loc == LocationAlt1:
		return Pin{PortC, 2}
	default:
		return Pin{PortA, 1}
	}
}

// route returns the USARTROUTEA field mask and value for an instance and location.
func route(inst Instance, loc Location) (mask, val uint8) {
	if inst == USART1 {
		mask = ROUTEA_USART1_Msk
		if loc == LocationAlt1 {
			val = ROUTEA_USART1_ALT1
		}
		return mask, val
	}
	mask = ROUTEA_USART0_Msk
	if loc == LocationAlt1 {
		val = ROUTEA_USART0_ALT1
	}
	return mask, val
}

func (i Instance) String() string {
	switch i {
	case USART0:
		return "USART0"
	case USART1:
		return "USART1"
	}
	return fmt.Sprintf("USART(%d)", uint8(i))
}

func (l Location) String() string {
	switch l {
	case LocationDefault:
		return "USART_LOCATION_DEFAULT"
	case LocationAlt1:
		return "USART_LOCATION_ALT1"
	}
	return fmt.Sprintf("USART_LOCATION(%d)", uint8(l))
}

// ParseInstance accepts "USART1", "usart1" or "1".
func ParseInstance(s string) (Instance, error) {
	switch strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "USART") {
	case "0":
		return USART0, nil
	case "1":
		return USART1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInstance, s)
}

// ParseLocation accepts the template names (USART_LOCATION_DEFAULT,
// USART_LOCATION_ALT1) or the short forms "default" and "alt1".
func ParseLocation(s string) (Location, error) {
	switch strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "USART_LOCATION_") {
	case "DEFAULT", "":
		return LocationDefault, nil
	case "ALT1", "ALT":
		return LocationAlt1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}

// usart/baud.go

package usart

import (
	"errors"
	"math"
)

const (
	// DefaultBaudRate is the nominal line rate of the firmware.
	DefaultBaudRate = 115200
	// DefaultClockHz is CLK_PER after reset: 20 MHz oscillator with the /6 prescaler.
	DefaultClockHz = 3333333

	// samplesPerBit is S in the datasheet formula for normal-speed async mode.
	samplesPerBit = 16
	// minBaud is the smallest BAUD value the peripheral accepts in normal mode.
	minBaud = 64
)

var (
	ErrZeroRate  = errors.New("clock and baud rate must be non-zero")
	ErrBaudRange = errors.New("baud register value out of range")
)

// BaudValue returns the fractional BAUD register value for the given CLK_PER
// and line rate: round(clock*64 / (16*rate)). Zero inputs are not checked.
func BaudValue(clockHz, baudRate uint32) uint32 {
	return uint32(baudQuotient(clockHz, baudRate) + 0.5)
}

func baudQuotient(clockHz, baudRate uint32) float64 {
	return float64(clockHz) * 64.0 / (samplesPerBit * float64(baudRate))
}

// CheckBaud computes BaudValue and reports whether it fits the 16-bit BAUD
// register and the normal-mode minimum.
func CheckBaud(clockHz, baudRate uint32) (uint16, error) {
	if clockHz == 0 || baudRate == 0 {
		return 0, ErrZeroRate
	}
	// Range-check before converting; a quotient past 2^32 has no defined
	// uint32 value.
	q := math.Round(baudQuotient(clockHz, baudRate))
	if q < minBaud || q > 0xFFFF {
		return 0, ErrBaudRange
	}
	return uint16(q), nil
}

// ActualRate returns the line rate produced by a BAUD register value.
func ActualRate(clockHz uint32, reg uint16) float64 {
	if reg == 0 {
		return 0
	}
	return float64(clockHz) * 64.0 / (samplesPerBit * float64(reg))
}

// RateError returns the relative deviation of the generated rate from the
// requested one, e.g. 0.0022 for +0.22%. It is 0 when CheckBaud rejects the
// pair.
func RateError(clockHz, baudRate uint32) float64 {
	reg, err := CheckBaud(clockHz, baudRate)
	if err != nil {
		return 0
	}
	actual := ActualRate(clockHz, reg)
	return (actual - float64(baudRate)) / float64(baudRate)
}

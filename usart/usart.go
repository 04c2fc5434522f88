// usart/usart.go

// Package usart is a polled, transmit-only driver for the tinyAVR 2-series
// USART (ATtiny1624). Init programs an asynchronous 8N1 frame, the baud divisor,
// the TX pin route and direction, enables the transmitter and binds a Stdio to
// the driver. WriteByte spins on DREIF and then writes the data register; there
// are no interrupts, buffers or timeouts.
//
// Registers are reached through a Bus so the same driver runs against the
// hardware (build tag attiny1624) or the Sim register model on a host.
package usart

// ByteSink accepts one byte at a time and blocks until it is taken.
type ByteSink interface {
	WriteByte(c byte) error
}

// Config holds the build-time parameters of a transmitter.
// Zero values select DefaultBaudRate, DefaultClockHz and LocationDefault.
type Config struct {
	BaudRate uint32
	ClockHz  uint32
	Location Location

	// Stdout is bound to the UART by Init. Nil leaves stdout untouched.
	Stdout *Stdio
}

// UART is a handle on one USART instance. It is owned by a single flow of
// control; nothing in it is safe for concurrent use.
type UART struct {
	Bus      *Bus
	Instance Instance

	cfg        Config
	configured bool
	stats      Stats
}

// New returns an unconfigured handle for inst on bus.
func New(bus *Bus, inst Instance) *UART {
	return &UART{Bus: bus, Instance: inst}
}

// Init configures the transmitter. It is a field-level rewrite of every
// register it touches, so repeating it yields the same state.
func (uart *UART) Init(cfg Config) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.ClockHz == 0 {
		cfg.ClockHz = DefaultClockHz
	}
	uart.cfg = cfg

	// 1) Frame format: async, no parity, 1 stop bit, 8 data bits.
	ctrlc := uart.Bus.CTRLC.Get()
	uart.Bus.CTRLC.Set(ctrlc&^ctrlcFormatMask | ctrlcAsync8N1)

	// 2) Baud divisor.
	uart.Bus.BAUD.Set(uint16(BaudValue(cfg.ClockHz, cfg.BaudRate)))

	// 3) Route TXD and make it an output. DIRSET is a strobe; only set bits act.
	mask, val := route(uart.Instance, cfg.Location)
	r := uart.Bus.USARTROUTEA.Get()
	uart.Bus.USARTROUTEA.Set(r&^mask | val)
	pin := TXPin(uart.Instance, cfg.Location)
	if port := uart.Bus.Port(pin.Port); port != nil && port.DIRSET != nil {
		port.DIRSET.Set(pin.Mask())
	}

	// 4) Transmitter on.
	uart.Bus.CTRLB.SetBits(CTRLB_TXEN)

	if cfg.Stdout != nil {
		cfg.Stdout.Bind(uart)
	}
	uart.configured = true
}

// Configured reports whether Init has run.
func (uart *UART) Configured() bool { return uart.configured }

// Config returns the configuration applied by the last Init, with defaults filled in.
func (uart *UART) Config() Config { return uart.cfg }

// WriteByte waits for the transmit data register to empty and writes c.
// There is no timeout: if DREIF never sets, WriteByte never returns.
func (uart *UART) WriteByte(c byte) error {
	for !uart.Bus.STATUS.HasBits(STATUS_DREIF) {
		uart.dbgSpin()
	}
	uart.Bus.TXDATAL.Set(c)
	uart.dbgWrite()
	return nil
}

// Write implements io.Writer on top of WriteByte.
func (uart *UART) Write(p []byte) (int, error) {
	for _, c := range p {
		_ = uart.WriteByte(c)
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (uart *UART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = uart.WriteByte(s[i])
	}
	return len(s), nil
}

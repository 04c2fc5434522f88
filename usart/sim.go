// usart/sim.go

package usart

import (
	"io"
	"sync"
	"sync/atomic"
)

// Sim is a register-level model of one USART transmitter, its TX port and
// PORTMUX. It stands in for the hardware on a host.
//
// TXDATAL writes are logged and clear DREIF. With AutoReady the byte is
// shifted out instantly: DREIF is set again and the byte is copied to Line.
// Without it, DREIF only changes through SetReady. The first error returned
// by Line is kept and reported by LineErr.
type Sim struct {
	AutoReady bool
	Line      io.Writer

	status  simStatus
	ctrlb   simReg8
	ctrlc   simReg8
	baud    simReg16
	txdata  simTxData
	dir     [numPorts]simReg8
	dirset  [numPorts]simDirSet
	ports   [numPorts]PortRegs
	routeA  simReg8
	bus     Bus
	mu      sync.Mutex
	written []byte
	lineErr error
}

// NewSim returns a simulator in its reset state with DREIF set, as the
// hardware comes out of reset with an empty data register.
func NewSim() *Sim {
	s := &Sim{}
	s.status.v.Store(STATUS_DREIF)
	s.txdata.sim = s
	s.bus = Bus{
		STATUS:      &s.status,
		CTRLB:       &s.ctrlb,
		CTRLC:       &s.ctrlc,
		BAUD:        &s.baud,
		TXDATAL:     &s.txdata,
		USARTROUTEA: &s.routeA,
	}
	for p := range s.ports {
		s.dirset[p].dir = &s.dir[p]
		s.ports[p] = PortRegs{DIR: &s.dir[p], DIRSET: &s.dirset[p]}
		s.bus.Ports[p] = &s.ports[p]
	}
	return s
}

// Dir returns the DIR register of port p.
func (s *Sim) Dir(p Port) uint8 { return s.dir[p].v }

// LineErr returns the first error Line returned, if any.
func (s *Sim) LineErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lineErr
}

// Bus returns the register block backed by the simulator.
func (s *Sim) Bus() *Bus { return &s.bus }

// SetReady sets or clears DREIF. It may be called from another goroutine
// while a writer spins.
func (s *Sim) SetReady(ready bool) {
	for {
		old := s.status.v.Load()
		nv := old &^ STATUS_DREIF
		if ready {
			nv |= STATUS_DREIF
		}
		if s.status.v.CompareAndSwap(old, nv) {
			return
		}
	}
}

// Ready reports DREIF.
func (s *Sim) Ready() bool { return s.status.HasBits(STATUS_DREIF) }

// Writes returns a copy of every byte written to TXDATAL, in order.
func (s *Sim) Writes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.written))
	copy(out, s.written)
	return out
}

// Reset clears the TX log and any recorded line error without touching
// registers.
func (s *Sim) Reset() {
	s.mu.Lock()
	s.written = s.written[:0]
	s.lineErr = nil
	s.mu.Unlock()
}

func (s *Sim) transmit(c byte) {
	s.mu.Lock()
	s.written = append(s.written, c)
	line := s.Line
	s.mu.Unlock()

	if !s.AutoReady {
		s.SetReady(false)
		return
	}
	if line != nil {
		if _, err := line.Write([]byte{c}); err != nil {
			s.mu.Lock()
			if s.lineErr == nil {
				s.lineErr = err
			}
			s.mu.Unlock()
		}
	}
	s.SetReady(true)
}

// ---- register models ----

type simReg8 struct{ v uint8 }

func (r *simReg8) Get() uint8           { return r.v }
func (r *simReg8) Set(v uint8)          { r.v = v }
func (r *simReg8) SetBits(v uint8)      { r.v |= v }
func (r *simReg8) ClearBits(v uint8)    { r.v &^= v }
func (r *simReg8) HasBits(v uint8) bool { return r.v&v != 0 }

type simReg16 struct{ v uint16 }

func (r *simReg16) Get() uint16           { return r.v }
func (r *simReg16) Set(v uint16)          { r.v = v }
func (r *simReg16) SetBits(v uint16)      { r.v |= v }
func (r *simReg16) ClearBits(v uint16)    { r.v &^= v }
func (r *simReg16) HasBits(v uint16) bool { return r.v&v != 0 }

// simStatus is read by a spinning writer while tests flip DREIF.
type simStatus struct{ v atomic.Uint32 }

func (r *simStatus) Get() uint8           { return uint8(r.v.Load()) }
func (r *simStatus) Set(v uint8)          { r.v.Store(uint32(v)) }
func (r *simStatus) SetBits(v uint8)      { r.v.Or(uint32(v)) }
func (r *simStatus) ClearBits(v uint8)    { r.v.And(^uint32(v)) }
func (r *simStatus) HasBits(v uint8) bool { return r.v.Load()&uint32(v) != 0 }

// simTxData forwards writes to the simulator; reads return the last byte.
type simTxData struct {
	sim  *Sim
	last uint8
}

func (r *simTxData) Get() uint8           { return r.last }
func (r *simTxData) Set(v uint8)          { r.last = v; r.sim.transmit(v) }
func (r *simTxData) SetBits(v uint8)      { r.Set(r.last | v) }
func (r *simTxData) ClearBits(v uint8)    { r.Set(r.last &^ v) }
func (r *simTxData) HasBits(v uint8) bool { return r.last&v != 0 }

// simDirSet is a strobe: written ones set DIR bits, reads return DIR.
type simDirSet struct{ dir *simReg8 }

func (r *simDirSet) Get() uint8           { return r.dir.v }
func (r *simDirSet) Set(v uint8)          { r.dir.v |= v }
func (r *simDirSet) SetBits(v uint8)      { r.dir.v |= v }
func (r *simDirSet) ClearBits(uint8)      {}
func (r *simDirSet) HasBits(v uint8) bool { return r.dir.v&v != 0 }

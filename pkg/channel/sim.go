package channel

import (
	"fmt"
	"strings"
	"sync"
)

// Sim is an in-memory channel implementing both Registers and Querier.
// It backs examples and tests: registers live in a map, queries are answered
// from scripted replies or from the last value sent for the same command stem.
//
// Per-address clamp ceilings model hardware that silently limits writes
// (e.g. a drive's configured maximum frequency).
type Sim struct {
	mu      sync.Mutex
	regs    map[uint16]int16
	ceil    map[uint16]int16
	replies map[string]string
	sent    map[string]string
	history []string
	closed  bool
}

// NewSim creates an empty simulated channel.
func NewSim() *Sim {
	return &Sim{
		regs:    make(map[uint16]int16),
		ceil:    make(map[uint16]int16),
		replies: make(map[string]string),
		sent:    make(map[string]string),
	}
}

// Preset sets a register value without going through WriteRegister
// (no clamping, no history).
func (s *Sim) Preset(addr uint16, value int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[addr] = value
}

// Clamp installs a ceiling for writes to addr.
func (s *Sim) Clamp(addr uint16, ceiling int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ceil[addr] = ceiling
}

// Reply scripts a fixed response for a query command.
func (s *Sim) Reply(cmd, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[cmd] = response
}

// History returns every command and register operation in order.
func (s *Sim) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// ReadRegister returns the current register value (zero if never written).
func (s *Sim) ReadRegister(addr uint16) (int16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, fmt.Errorf("sim: channel closed")
	}
	s.history = append(s.history, fmt.Sprintf("R %d", addr))
	return s.regs[addr], nil
}

// WriteRegister stores the value, applying any configured clamp ceiling.
func (s *Sim) WriteRegister(addr uint16, value int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sim: channel closed")
	}
	if ceiling, ok := s.ceil[addr]; ok && value > ceiling {
		value = ceiling
	}
	s.regs[addr] = value
	s.history = append(s.history, fmt.Sprintf("W %d %d", addr, value))
	return nil
}

// Query answers from scripted replies first, then from the last Send with
// the same command stem (so "FREQ 1000" followed by "FREQ?" yields "1000").
func (s *Sim) Query(cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("sim: channel closed")
	}
	s.history = append(s.history, cmd)
	if reply, ok := s.replies[cmd]; ok {
		return reply, nil
	}
	stem := strings.TrimSuffix(cmd, "?")
	if value, ok := s.sent[stem]; ok {
		return value, nil
	}
	return "", fmt.Errorf("sim: no reply for %q", cmd)
}

// Send records the command and remembers its argument for later queries.
func (s *Sim) Send(cmd string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sim: channel closed")
	}
	s.history = append(s.history, cmd)
	if i := strings.IndexByte(cmd, ' '); i > 0 {
		s.sent[cmd[:i]] = cmd[i+1:]
	}
	return nil
}

// Close marks the channel closed; subsequent operations fail.
func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ Registers = (*Sim)(nil)
	_ Querier   = (*Sim)(nil)
)

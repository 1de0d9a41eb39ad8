package channel

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// ModbusConfig configures a Modbus RTU serial link.
type ModbusConfig struct {
	// Port is the serial device path (e.g. "/dev/ttyUSB0").
	Port string

	// SlaveID is the Modbus unit identifier. Defaults to 1.
	SlaveID byte

	// BaudRate defaults to 19200.
	BaudRate int

	// Parity is "N", "E" or "O". Defaults to "E" (Modbus RTU default).
	Parity string

	// Timeout is the per-request timeout. Defaults to 1s.
	Timeout time.Duration
}

// ModbusRTU is a Registers channel over a Modbus RTU serial line.
// One feature maps to one holding register.
type ModbusRTU struct {
	handler *modbus.RTUClientHandler
	client  modbus.Client
}

// OpenModbusRTU opens the serial port and returns a connected channel.
func OpenModbusRTU(cfg ModbusConfig) (*ModbusRTU, error) {
	if cfg.Port == "" {
		return nil, fmt.Errorf("modbus: port is required")
	}
	if cfg.SlaveID == 0 {
		cfg.SlaveID = 1
	}
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 19200
	}
	if cfg.Parity == "" {
		cfg.Parity = "E"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}

	handler := modbus.NewRTUClientHandler(cfg.Port)
	handler.BaudRate = cfg.BaudRate
	handler.DataBits = 8
	handler.Parity = cfg.Parity
	handler.StopBits = 1
	handler.SlaveId = cfg.SlaveID
	handler.Timeout = cfg.Timeout

	if err := handler.Connect(); err != nil {
		return nil, err
	}

	return &ModbusRTU{
		handler: handler,
		client:  modbus.NewClient(handler),
	}, nil
}

// ReadRegister reads one holding register.
func (c *ModbusRTU) ReadRegister(addr uint16) (int16, error) {
	data, err := c.client.ReadHoldingRegisters(addr, 1)
	if err != nil {
		return 0, err
	}
	if len(data) < 2 {
		return 0, fmt.Errorf("modbus: short read at register %d: %d bytes", addr, len(data))
	}
	return int16(binary.BigEndian.Uint16(data)), nil
}

// WriteRegister writes one holding register.
func (c *ModbusRTU) WriteRegister(addr uint16, value int16) error {
	_, err := c.client.WriteSingleRegister(addr, uint16(value))
	return err
}

// Close closes the serial port.
func (c *ModbusRTU) Close() error {
	return c.handler.Close()
}

// Compile-time interface satisfaction check.
var _ Registers = (*ModbusRTU)(nil)

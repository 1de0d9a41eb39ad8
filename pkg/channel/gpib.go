package channel

import (
	"io"
	"strings"

	"github.com/gotmc/prologix"
	"github.com/gotmc/prologix/driver/vcp"
)

// GPIB is a Querier channel through a Prologix GPIB-USB controller on a
// virtual COM port.
type GPIB struct {
	port *vcp.VCP
	ctrl *prologix.Controller
}

// OpenGPIB opens the Prologix controller on the given serial port and
// addresses the instrument at the given GPIB address.
func OpenGPIB(serialPort string, gpibAddress int) (*GPIB, error) {
	port, err := vcp.NewVCP(serialPort)
	if err != nil {
		return nil, err
	}

	ctrl, err := prologix.NewController(port, gpibAddress, false)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return &GPIB{port: port, ctrl: ctrl}, nil
}

// Query sends a command and returns the instrument's reply without
// trailing line terminators. The controller reports io.EOF at the end of
// the reply; that is not an error.
func (c *GPIB) Query(cmd string) (string, error) {
	reply, err := c.ctrl.Query(cmd)
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(reply, "\r\n"), nil
}

// Send sends a command that produces no reply.
func (c *GPIB) Send(cmd string) error {
	return c.ctrl.Command(cmd)
}

// Close closes the serial port.
func (c *GPIB) Close() error {
	return c.port.Close()
}

// Compile-time interface satisfaction check.
var _ Querier = (*GPIB)(nil)

// Package channel defines the transport boundary between device models and
// physical links.
//
// The feature layer never interprets wire protocols; it only needs two
// capabilities, expressed as small interfaces:
//
//   - Registers: read/write a 16-bit register by address (Modbus-style)
//   - Querier: send a command string and read back a reply (SCPI-style)
//
// Two concrete channels are provided: ModbusRTU for serial register devices
// and GPIB for instruments behind a Prologix GPIB-USB controller. Sim is an
// in-memory channel for tests and examples.
//
// Channels are synchronous and carry a single request/response exchange at a
// time. A channel is owned by exactly one device instance; callers must not
// issue concurrent calls against the same device. Communication failures
// (timeouts, link errors) are returned unchanged to the caller - the feature
// layer does not wrap or retry them.
package channel

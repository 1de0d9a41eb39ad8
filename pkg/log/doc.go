// Package log provides structured event logging for instrument I/O.
//
// This package defines the Logger interface and Event types for capturing
// everything exchanged with an instrument: raw register reads and writes,
// command/query round trips, post-write verification mismatches, and state
// changes. It is separate from operational logging (slog) - event capture
// provides a complete machine-readable trace of an experiment run.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For experiments: write to binary file
//	logger, _ := log.NewFileLogger("run-2026-02-11.rlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// The logger is injected into a device with device.WithLogger; there is no
// global logging state.
//
// # Verification warnings
//
// When a device write is verified and the instrument reads back a different
// value (hardware clamped or rounded the write), the device emits a
// CategoryVerify event carrying the requested and actual values. This is the
// only signal for such mismatches; the Set call itself succeeds.
//
// # File Format
//
// Log files use CBOR encoding with one Event per record. The Reader type
// streams events back with optional filtering.
package log

// Package feature implements the feature abstraction for laboratory
// instruments: named, typed, addressable quantities exposed through a uniform
// get/set interface.
//
// # Descriptors and accessors
//
// A Descriptor declares one feature at device-model declaration time: its
// name, register coordinates or command stem, value-transform policy (linear
// scaling or a symbol table) and mode requirement. Descriptors are immutable
// and shared by every instance of a device model.
//
// An accessor (Value, Symbol or Text) is the live object bound to one device
// instance. It owns the transform and mode-check logic and talks to the
// channel; Set performs a post-write read-back and reports mismatches as
// non-fatal verification events.
//
// # Mode gating
//
// The same register address can mean different physical quantities in
// different hardware operating modes. Gated accessors therefore re-read the
// device's live mode before every access and fail with *ModeError on a
// mismatch, so the abstraction never silently reads or writes the wrong
// quantity. Mode changes happen on the instrument itself; this layer only
// observes.
//
// Accessors are bound by the device model builder in package device;
// applications use them via the device's named lookups or the typed wrappers
// in pkg/instruments.
package feature

// Package device turns a flat list of feature descriptors into a live,
// introspectable device object.
//
// # Model building
//
// BuildModel runs once per device type. It consumes the ordered descriptor
// list, rejects malformed declarations (duplicate names, missing register
// coordinates, broken symbol tables) with *feature.ConfigError, and records
// non-fatal findings such as register address aliases as warnings. Device
// packages declare their model in a package-level variable so configuration
// problems surface at program start, not at first hardware access.
//
// # Instances
//
// New binds one accessor per descriptor against a channel; each instance
// holds its own accessors but shares the model. The device implements
// feature.ModeSource by reading its own mode feature, which is itself an
// ordinary (ungated) feature of the model - self-referential but acyclic.
//
// Typed instrument wrappers (pkg/instruments) build on this package: they
// declare the descriptor list, name the accessors as struct fields, and add
// semantic operations composed of primitive Get/Set calls.
package device

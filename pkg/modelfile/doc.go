// Package modelfile loads device models from YAML files.
//
// A model file declares the same information as a descriptor list in code:
//
//	model: unidrive-sp
//	mode_feature: mode
//	features:
//	  - name: mode
//	    doc: The operating mode.
//	    menu: 0
//	    parameter: 48
//	    symbols:
//	      1: open_loop
//	      2: closed_loop
//	      3: servo
//	  - name: speed
//	    doc: Speed of rotation.
//	    menu: 0
//	    parameter: 24
//	    decimals: 1
//	  - name: rated_speed
//	    menu: 0
//	    parameter: 45
//	    mode: open_loop
//
// Command-style features carry a "command" stem instead of menu/parameter,
// with optional "kind: text" for raw string values.
//
// Parsing runs the full model-builder validation, so malformed files fail
// loudly at load time. Lint additionally reports non-fatal findings such as
// two features aliasing the same register address.
package modelfile

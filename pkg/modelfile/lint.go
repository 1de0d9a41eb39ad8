package modelfile

import (
	"fmt"

	"github.com/labrig/labrig-go/pkg/device"
)

// Finding is a non-fatal issue in a device model. Findings never block
// building or using the model.
type Finding struct {
	// Code identifies the finding type.
	Code string

	// Message is the human-readable description.
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Finding codes.
const (
	// CodeAliasedAddress flags two features sharing a register address.
	// Aliasing is legal (dual naming of the same physical location) but
	// usually deserves a comment in the model.
	CodeAliasedAddress = "ALIASED_ADDRESS"

	// CodeMissingDoc flags a feature without documentation.
	CodeMissingDoc = "MISSING_DOC"
)

// Lint reports non-fatal issues in a built model.
func Lint(m *device.Model) []Finding {
	var findings []Finding

	for _, w := range m.Warnings() {
		findings = append(findings, Finding{Code: CodeAliasedAddress, Message: w})
	}

	for _, d := range m.Descriptors() {
		if d.Doc == "" {
			findings = append(findings, Finding{
				Code:    CodeMissingDoc,
				Message: fmt.Sprintf("feature %q has no documentation", d.Name),
			})
		}
	}

	return findings
}

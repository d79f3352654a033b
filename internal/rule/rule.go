// Package rule describes the DisallowDbContextInController rule and the
// host-independent diagnostics it produces.
package rule

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Severity of a rule. go/analysis drivers treat every reported diagnostic
// as a failure, so only Error is used.
type Severity string

const Error Severity = "error"

// Descriptor is the fixed metadata of a rule.
type Descriptor struct {
	ID               string
	Title            string
	MessageFormat    string // one %s slot: the enclosing type's simple name
	Category         string
	Severity         Severity
	EnabledByDefault bool
	URL              string
}

// DisallowDbContextInController flags controllers that take a database
// context in their constructor.
var DisallowDbContextInController = Descriptor{
	ID:               "DisallowDbContextInController",
	Title:            "DbContext should not be injected into controllers",
	MessageFormat:    "DbContext should not be injected into controller '%s'",
	Category:         "Architecture",
	Severity:         Error,
	EnabledByDefault: true,
	URL:              "https://pkg.go.dev/github.com/spicycat/dbctxguard#hdr-DisallowDbContextInController",
}

// Diagnostic is a single violation: the span of the offending parameter and
// the simple name of the controller that declares the constructor.
type Diagnostic struct {
	Pos      token.Pos
	End      token.Pos
	TypeName string
}

// Message renders the descriptor's message for d.
func (d Descriptor) Message(diag Diagnostic) string {
	return fmt.Sprintf(d.MessageFormat, diag.TypeName)
}

// Analysis converts diag into the go/analysis representation.
func (d Descriptor) Analysis(diag Diagnostic) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      diag.Pos,
		End:      diag.End,
		Category: d.Category,
		URL:      d.URL,
		Message:  d.Message(diag),
	}
}

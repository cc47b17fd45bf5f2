package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes.
const (
	CodeShadowed    = "shadowed"
	CodeUnreachable = "unreachable"
	CodeOpaque      = "opaque"
)

// Diagnostics holds the findings of a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding.
	Code    string
	Message string
	// Transformation is the declaration concerned, if any.
	Transformation string
	// Transformer names the transformer concerned, if any.
	Transformer string
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) add(severity Severity, code, message, transformation, transformer string) {
	diag := Diagnostic{
		Severity:       severity,
		Code:           code,
		Message:        message,
		Transformation: transformation,
		Transformer:    transformer,
	}

	switch severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// All returns errors, warnings and infos in that order.
func (d Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

func (d Diagnostic) String() string {
	var prefix []string
	if d.Transformer != "" {
		prefix = append(prefix, d.Transformer)
	}

	if d.Transformation != "" {
		prefix = append(prefix, "["+d.Transformation+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

package codebase

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "uxml"

// Diagnostics converts the errors and lint warnings of f, in that order.
// Warnings with a suggested rewrite carry it as the diagnostic data.
func (f *FileInfo) Diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, err := range f.Errors() {
		diagnostics = append(diagnostics, newDiagnostic(
			f.lines.rangeOf(err.Start, err.End),
			protocol.DiagnosticSeverityError,
			err.Message,
			nil,
		))
	}

	for _, w := range f.Warnings {
		var data any
		if w.Suggestion != nil {
			data = *w.Suggestion
		}
		diagnostics = append(diagnostics, newDiagnostic(
			f.lines.rangeOf(w.Start, w.End),
			protocol.DiagnosticSeverityWarning,
			w.Message,
			data,
		))
	}

	return diagnostics
}

func newDiagnostic(rng protocol.Range, severity protocol.DiagnosticSeverity, message string, data any) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  message,
		Data:     data,
	}
}

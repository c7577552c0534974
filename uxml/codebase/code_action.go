package codebase

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const encodeActionTitle = "Encode Using Underscores"

// CodeActions offers a quick fix for every class-name warning of f that
// overlaps rng. The fix replaces the word with its escaped form.
func (f *FileInfo) CodeActions(uri protocol.DocumentUri, rng protocol.Range) []protocol.CodeAction {
	start, end := f.lines.offset(rng.Start), f.lines.offset(rng.End)
	actions := []protocol.CodeAction{}

	for _, w := range f.Warnings {
		if w.Suggestion == nil || w.End < start || w.Start > end {
			continue
		}

		wrng := f.lines.rangeOf(w.Start, w.End)
		diagnostic := newDiagnostic(wrng, protocol.DiagnosticSeverityWarning, w.Message, *w.Suggestion)
		kind := protocol.CodeActionKindQuickFix
		actions = append(actions, protocol.CodeAction{
			Title:       encodeActionTitle,
			Kind:        &kind,
			Diagnostics: []protocol.Diagnostic{diagnostic},
			IsPreferred: boolPtr(true),
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					uri: {{Range: wrng, NewText: w.Suggestion.Encoded}},
				},
			},
		})
	}

	return actions
}

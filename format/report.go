package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/uxmlls/uxml/codebase"
	"github.com/dhamidi/uxmlls/uxml/lint"
)

// ReportEncoder writes compiler-style problem lines for analyzed files:
//
//	Assets/Panel.uxml:3:12: error: message
type ReportEncoder struct {
	w        io.Writer
	warnings bool
}

// NewReportEncoder returns an encoder that reports errors and, when
// warnings is set, lint warnings.
func NewReportEncoder(w io.Writer, warnings bool) *ReportEncoder {
	return &ReportEncoder{w: w, warnings: warnings}
}

func (e *ReportEncoder) Encode(f *codebase.FileInfo) error {
	for _, perr := range f.Errors() {
		pos := f.Parsed.Position(perr.Start)
		if _, err := fmt.Fprintf(e.w, "%s: error: %s\n", pos, perr.Message); err != nil {
			return err
		}
	}
	if !e.warnings {
		return nil
	}
	return e.EncodeWarnings(f)
}

// EncodeWarnings writes only the lint warnings of f.
func (e *ReportEncoder) EncodeWarnings(f *codebase.FileInfo) error {
	for _, w := range f.Warnings {
		pos := f.Parsed.Position(w.Start)
		line := fmt.Sprintf("%s: warning: %s", pos, w.Message)
		if w.Suggestion != nil {
			line += fmt.Sprintf(" (%q -> %q)", w.Suggestion.Decoded, w.Suggestion.Encoded)
		}
		if _, err := fmt.Fprintln(e.w, line); err != nil {
			return err
		}
	}
	return nil
}

// ReportJSONEncoder writes one JSON object per file.
type ReportJSONEncoder struct {
	enc *json.Encoder
}

func NewReportJSONEncoder(w io.Writer) *ReportJSONEncoder {
	return &ReportJSONEncoder{enc: json.NewEncoder(w)}
}

type reportJSON struct {
	File     string          `json:"file"`
	Errors   []reportProblem `json:"errors"`
	Warnings []reportProblem `json:"warnings"`
}

type reportProblem struct {
	Message    string           `json:"message"`
	Line       int              `json:"line"`
	Column     int              `json:"column"`
	Start      int              `json:"start"`
	End        int              `json:"end"`
	Suggestion *lint.Suggestion `json:"suggestion,omitempty"`
}

func (e *ReportJSONEncoder) Encode(f *codebase.FileInfo) error {
	report := reportJSON{
		File:     f.Path,
		Errors:   []reportProblem{},
		Warnings: []reportProblem{},
	}
	for _, perr := range f.Errors() {
		pos := f.Parsed.Position(perr.Start)
		report.Errors = append(report.Errors, reportProblem{
			Message: perr.Message,
			Line:    pos.Line,
			Column:  pos.Column,
			Start:   perr.Start,
			End:     perr.End,
		})
	}
	for _, w := range f.Warnings {
		pos := f.Parsed.Position(w.Start)
		report.Warnings = append(report.Warnings, reportProblem{
			Message:    w.Message,
			Line:       pos.Line,
			Column:     pos.Column,
			Start:      w.Start,
			End:        w.End,
			Suggestion: w.Suggestion,
		})
	}
	return e.enc.Encode(report)
}

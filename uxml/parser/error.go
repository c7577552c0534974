package parser

import "fmt"

type ErrorKind int

const (
	// StructuralError: a required token or sequence is missing or of the
	// wrong kind, including an abrupt end of input.
	StructuralError ErrorKind = iota
	// SemanticError: well-formed input that breaks a document-level rule.
	SemanticError
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralError:
		return "structural"
	case SemanticError:
		return "semantic"
	}
	return "unknown"
}

// Error is a defect found while parsing, anchored to a byte range of the
// source. Start and End are offsets; End is exclusive.
type Error struct {
	Kind    ErrorKind
	Message string
	Start   int
	End     int
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, start, end int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Start:   start,
		End:     end,
	}
}

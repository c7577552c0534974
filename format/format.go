package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/uxmlls/uxml/parser"
)

// Encoder writes a rendering of one parse result.
type Encoder interface {
	Encode(p *parser.Parser) error
}

// NewTreeEncoder returns the tree encoder for name: "json" or "text".
func NewTreeEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewTreeJSONEncoder(w), nil
	case "text":
		return NewTreeTextEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

// NewTokenEncoder returns the token encoder for name: "json" or "text".
func NewTokenEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewTokenJSONEncoder(w), nil
	case "text":
		return NewTokenTextEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

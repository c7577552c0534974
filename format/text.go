package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/uxmlls/uxml/parser"
)

// TreeTextEncoder writes the indented outline of the tree followed by the
// list of errors, one per line.
type TreeTextEncoder struct {
	w io.Writer
}

func NewTreeTextEncoder(w io.Writer) *TreeTextEncoder {
	return &TreeTextEncoder{w: w}
}

func (e *TreeTextEncoder) Encode(p *parser.Parser) error {
	if prog := p.Program(); prog != nil {
		if _, err := io.WriteString(e.w, parser.Sprint(prog)); err != nil {
			return err
		}
	}
	for _, perr := range p.Errors() {
		if _, err := fmt.Fprintf(e.w, "%s: %s error: %s\n", p.Position(perr.Start), perr.Kind, perr.Message); err != nil {
			return err
		}
	}
	return nil
}

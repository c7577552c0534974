package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/uxmlls/uxml/parser"
)

type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(p *parser.Parser) error {
	text, err := e.MarshalText(p)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText(p *parser.Parser) ([]byte, error) {
	doc := treeJSONDocument{
		File:   p.File(),
		Errors: errorsToJSON(p, p.Errors()),
	}
	if prog := p.Program(); prog != nil {
		doc.Tree = nodeToJSON(p, prog)
	}
	return json.MarshalIndent(doc, "", "  ")
}

type treeJSONDocument struct {
	File   string          `json:"file,omitempty"`
	Errors []treeJSONError `json:"errors"`
	Tree   *treeJSONNode   `json:"tree"`
}

type treeJSONNode struct {
	Kind     string          `json:"kind"`
	Span     treeJSONSpan    `json:"span"`
	Text     string          `json:"text,omitempty"`
	Errors   []treeJSONError `json:"errors,omitempty"`
	Children []*treeJSONNode `json:"children,omitempty"`
}

type treeJSONSpan struct {
	Start treeJSONPosition `json:"start"`
	End   treeJSONPosition `json:"end"`
}

type treeJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type treeJSONError struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Span    treeJSONSpan `json:"span"`
}

func spanToJSON(p *parser.Parser, start, end int) treeJSONSpan {
	return treeJSONSpan{
		Start: positionToJSON(p.Position(start)),
		End:   positionToJSON(p.Position(end)),
	}
}

func positionToJSON(pos parser.Position) treeJSONPosition {
	return treeJSONPosition{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}

func errorsToJSON(p *parser.Parser, errs []*parser.Error) []treeJSONError {
	out := []treeJSONError{}
	for _, err := range errs {
		out = append(out, treeJSONError{
			Kind:    err.Kind.String(),
			Message: err.Message,
			Span:    spanToJSON(p, err.Start, err.End),
		})
	}
	return out
}

func nodeToJSON(p *parser.Parser, n parser.Node) *treeJSONNode {
	jn := &treeJSONNode{
		Kind: n.Kind().String(),
		Span: spanToJSON(p, n.Start(), n.End()),
	}

	switch n := n.(type) {
	case *parser.Name:
		jn.Text = n.Text
	case *parser.Namespace:
		jn.Text = n.Text
	case *parser.AttributeValue:
		jn.Text = n.Text
	case *parser.Comment:
		jn.Text = n.Body
	}

	if errs := n.Errors(); len(errs) > 0 {
		jn.Errors = errorsToJSON(p, errs)
	}

	for _, child := range n.Children() {
		jn.Children = append(jn.Children, nodeToJSON(p, child))
	}

	return jn
}

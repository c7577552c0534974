package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dhamidi/uxmlls/uxml/parser"
)

// TokenTextEncoder writes one aligned row per token.
type TokenTextEncoder struct {
	w io.Writer
}

func NewTokenTextEncoder(w io.Writer) *TokenTextEncoder {
	return &TokenTextEncoder{w: w}
}

func (e *TokenTextEncoder) Encode(p *parser.Parser) error {
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	src := p.Source()
	for _, tok := range p.Tokens() {
		pos := p.Position(tok.Offset)
		fmt.Fprintf(tw, "%d:%d\t%s\t%q\n", pos.Line, pos.Column, tok.Kind, src[tok.Offset:tok.End()])
	}
	return tw.Flush()
}

type TokenJSONEncoder struct {
	w io.Writer
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

type tokenJSON struct {
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

func (e *TokenJSONEncoder) Encode(p *parser.Parser) error {
	text, err := e.MarshalText(p)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *TokenJSONEncoder) MarshalText(p *parser.Parser) ([]byte, error) {
	src := p.Source()
	tokens := []tokenJSON{}
	for _, tok := range p.Tokens() {
		tokens = append(tokens, tokenJSON{
			Kind:   tok.Kind.String(),
			Offset: tok.Offset,
			Length: tok.Length,
			Text:   src[tok.Offset:tok.End()],
		})
	}
	return json.MarshalIndent(tokens, "", "  ")
}

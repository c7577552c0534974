package codebase

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/uxmlls/uxml/parser"
)

const (
	commentOpenLen  = len("<!--")
	commentCloseLen = len("-->")
)

// FoldingRanges returns a region for each element body and a comment fold
// for each comment body, skipping any that fit on one line.
func (f *FileInfo) FoldingRanges() []protocol.FoldingRange {
	folds := []protocol.FoldingRange{}
	program := f.Program()
	if program == nil {
		return folds
	}

	parser.Walk(program, func(n parser.Node) bool {
		switch n := n.(type) {
		case *parser.Element:
			if n.EndElement != nil {
				folds = f.appendFold(folds, n.StartElement.End(), n.EndElement.Start(), protocol.FoldingRangeKindRegion)
			}
		case *parser.Comment:
			folds = f.appendFold(folds, n.Start()+commentOpenLen, n.End()-commentCloseLen, protocol.FoldingRangeKindComment)
		}
		return true
	})
	return folds
}

func (f *FileInfo) appendFold(folds []protocol.FoldingRange, start, end int, kind protocol.FoldingRangeKind) []protocol.FoldingRange {
	rng := f.lines.rangeOf(start, end)
	if rng.End.Line <= rng.Start.Line {
		return folds
	}
	k := string(kind)
	return append(folds, protocol.FoldingRange{
		StartLine:      rng.Start.Line,
		StartCharacter: &rng.Start.Character,
		EndLine:        rng.End.Line,
		EndCharacter:   &rng.End.Character,
		Kind:           &k,
	})
}

package codebase

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex converts byte offsets into LSP positions, whose characters
// count UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

func (l *lineIndex) position(offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.content) {
		offset = len(l.content)
	}
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1

	character := 0
	for i := l.starts[line]; i < offset; {
		r, size := utf8.DecodeRuneInString(l.content[i:])
		if n := utf16.RuneLen(r); n > 0 {
			character += n
		} else {
			character++
		}
		i += size
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

func (l *lineIndex) rangeOf(start, end int) protocol.Range {
	return protocol.Range{
		Start: l.position(start),
		End:   l.position(end),
	}
}

// offset is the inverse of position. Characters past the end of a line
// resolve to the line end.
func (l *lineIndex) offset(pos protocol.Position) int {
	line := int(pos.Line)
	if line >= len(l.starts) {
		return len(l.content)
	}
	end := len(l.content)
	if line+1 < len(l.starts) {
		end = l.starts[line+1] - 1
	}
	if limit := l.position(end).Character; pos.Character > limit {
		pos.Character = limit
	}
	return pos.IndexIn(l.content)
}

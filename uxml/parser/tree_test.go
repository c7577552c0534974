package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kindsOf(nodes []Node) []NodeKind {
	var kinds []NodeKind
	for _, n := range nodes {
		kinds = append(kinds, n.Kind())
	}
	return kinds
}

func TestNodesEncasing(t *testing.T) {
	src := document(`<Box><Label name="x"/></Box>`)
	p := Parse(src)
	if len(p.Errors()) != 0 {
		t.Fatalf("Errors() = %v", errorMessages(p.Errors()))
	}

	tests := []struct {
		name   string
		offset int
		want   []NodeKind
	}{
		{
			name:   "inside leaf name",
			offset: strings.Index(src, "Label") + 2,
			want:   []NodeKind{KindName, KindLeafElement, KindElement, KindElement, KindProgram},
		},
		{
			name:   "attribute value",
			offset: strings.Index(src, `"x"`) + 1,
			want:   []NodeKind{KindAttributeValue, KindAttribute, KindLeafElement, KindElement, KindElement, KindProgram},
		},
		{
			name:   "end of name is inclusive",
			offset: strings.Index(src, "Label") + len("Label"),
			want:   []NodeKind{KindName, KindLeafElement, KindElement, KindElement, KindProgram},
		},
		{
			name:   "program start",
			offset: 0,
			want:   []NodeKind{KindStartElement, KindElement, KindProgram},
		},
		{
			name:   "past the end",
			offset: len(src) + 1,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, kindsOf(p.NodesEncasing(tt.offset))); diff != "" {
				t.Errorf("NodesEncasing(%d) mismatch (-want +got):\n%s", tt.offset, diff)
			}
		})
	}
}

func TestCollectErrorsPreOrder(t *testing.T) {
	src := `<?xml encoding="utf-8"?>` + document(`<Box></Boxx><!-- a--b -->`)
	p := Parse(src)

	want := []string{
		"Declarations require a 'version' attribute.",
		"'--' are not allowed in UXML comments.",
		"Closing tag 'Boxx' does not match opening tag 'Box'.",
	}
	if diff := cmp.Diff(want, errorMessages(p.Errors())); diff != "" {
		t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	p := Parse(document(`<Box><Label/></Box>`))

	var visited []NodeKind
	Walk(p.Program(), func(n Node) bool {
		visited = append(visited, n.Kind())
		return n.Kind() != KindStartElement
	})

	want := []NodeKind{
		KindProgram,
		KindElement,
		KindStartElement,
		KindElement,
		KindStartElement,
		KindLeafElement, KindName,
		KindEndElement, KindName,
		KindEndElement, KindName,
	}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestSprint(t *testing.T) {
	p := Parse(`<UXML><!--hi--></UXML>`)

	got := Sprint(p.Program())
	want := `Program [0,22) !The root element must declare the namespace 'UnityEngine.UIElements'.
  Element [0,22)
    StartElement [0,6)
      Name [1,5) "UXML"
    Comment [6,15) "hi"
    EndElement [15,22)
      Name [17,21) "UXML"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sprint() mismatch (-want +got):\n%s", diff)
	}
}

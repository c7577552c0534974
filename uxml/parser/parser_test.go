package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDocument = `<?xml version="1.0" encoding="utf-8"?>
<ui:UXML xmlns:ui="UnityEngine.UIElements" xmlns:uie="UnityEditor.UIElements">
    <!-- a comment -->
    <ui:VisualElement class="row">
        <ui:Label text="Hello" />
        <uie:ObjectField />
    </ui:VisualElement>
</ui:UXML>
`

const rootOpen = `<UXML xmlns="UnityEngine.UIElements" xmlns:uie="UnityEditor.UIElements">`

func document(body string) string {
	return rootOpen + body + "</UXML>"
}

func errorMessages(errs []*Error) []string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

func TestParseWellFormed(t *testing.T) {
	p := Parse(sampleDocument, WithFile("Sample.uxml"))

	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("Errors() = %v, want none", errorMessages(errs))
	}
	prog := p.Program()
	if prog == nil {
		t.Fatal("Program() = nil")
	}
	if prog.Start() != 0 {
		t.Errorf("Start() = %d, want 0", prog.Start())
	}
	if want := strings.LastIndex(sampleDocument, ">") + 1; prog.End() != want {
		t.Errorf("End() = %d, want %d", prog.End(), want)
	}
	if prog.Declaration == nil || prog.Declaration.Version == nil {
		t.Fatal("Declaration.Version = nil")
	}
	if got := prog.Declaration.Version.Value.Text; got != "1.0" {
		t.Errorf("version = %q, want %q", got, "1.0")
	}
	if got := prog.Declaration.Encoding.Value.Text; got != "utf-8" {
		t.Errorf("encoding = %q, want %q", got, "utf-8")
	}

	if got := prog.Root.Name().Text; got != "ui:UXML" {
		t.Errorf("root name = %q, want %q", got, "ui:UXML")
	}
	if prefix, ok := prog.EngineNamespacePrefix(); !ok || prefix != "ui" {
		t.Errorf("EngineNamespacePrefix() = %q, %v, want %q, true", prefix, ok, "ui")
	}
	if prefix, ok := prog.EditorNamespacePrefix(); !ok || prefix != "uie" {
		t.Errorf("EditorNamespacePrefix() = %q, %v, want %q, true", prefix, ok, "uie")
	}

	var kinds []NodeKind
	for _, c := range prog.Root.Content {
		kinds = append(kinds, c.Kind())
	}
	if diff := cmp.Diff([]NodeKind{KindComment, KindElement}, kinds); diff != "" {
		t.Errorf("root content mismatch (-want +got):\n%s", diff)
	}

	row := prog.Root.Content[1].(*Element)
	if attr := row.StartElement.Attribute("class"); attr == nil || attr.Value.Text != "row" {
		t.Errorf("class attribute = %v, want %q", attr, "row")
	}
	if len(row.Content) != 2 {
		t.Fatalf("len(row.Content) = %d, want 2", len(row.Content))
	}
	label := row.Content[0].(*LeafElement)
	if label.Name.Prefix() != "ui" || label.Name.Local != "Label" {
		t.Errorf("label name = %q:%q, want ui:Label", label.Name.Prefix(), label.Name.Local)
	}
	if got := prog.Root.Content[0].(*Comment).Body; got != " a comment " {
		t.Errorf("comment body = %q, want %q", got, " a comment ")
	}
}

func TestParseWithoutDeclaration(t *testing.T) {
	src := "\n  " + document("") + "\n"
	p := Parse(src)

	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("Errors() = %v, want none", errorMessages(errs))
	}
	prog := p.Program()
	if want := strings.Index(src, "<"); prog.Start() != want {
		t.Errorf("Start() = %d, want %d", prog.Start(), want)
	}
	if prog.Declaration != nil {
		t.Errorf("Declaration = %v, want nil", prog.Declaration)
	}
}

func TestParseTagMismatch(t *testing.T) {
	p := Parse(document("<Box></Boxx>"))

	prog := p.Program()
	if prog == nil {
		t.Fatal("Program() = nil, want a tree")
	}
	if got := prog.Root.Name().Text; got != "UXML" {
		t.Errorf("root name = %q, want UXML", got)
	}
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want 1 error", errorMessages(errs))
	}
	if !strings.Contains(errs[0].Message, "'Box'") || !strings.Contains(errs[0].Message, "'Boxx'") {
		t.Errorf("message = %q, want it to name Box and Boxx", errs[0].Message)
	}
	if errs[0].Kind != SemanticError {
		t.Errorf("Kind = %v, want %v", errs[0].Kind, SemanticError)
	}
}

func TestParseDeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want []string
	}{
		{
			name: "missing version",
			decl: `<?xml encoding="utf-8"?>`,
			want: []string{"Declarations require a 'version' attribute."},
		},
		{
			name: "duplicate version",
			decl: `<?xml version="1.0" version="1.1"?>`,
			want: []string{"Declarations may only have one 'version' attribute."},
		},
		{
			name: "unknown attribute",
			decl: `<?xml version="1.0" standalone="yes"?>`,
			want: []string{"Declarations do not recognize a 'standalone' attribute."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.decl + document(""))
			if diff := cmp.Diff(tt.want, errorMessages(p.Errors())); diff != "" {
				t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
			}
			for _, err := range p.Errors() {
				if err.Kind != SemanticError {
					t.Errorf("Kind = %v, want %v", err.Kind, SemanticError)
				}
			}
		})
	}
}

func TestParseBrokenDeclarationRecovers(t *testing.T) {
	p := Parse(`<?xml version="1.0">` + document(""))

	if p.Program() == nil {
		t.Fatal("Program() = nil, want a tree")
	}
	if p.Program().Declaration != nil {
		t.Errorf("Declaration = %v, want nil", p.Program().Declaration)
	}
	if errs := p.Errors(); len(errs) != 1 {
		t.Errorf("Errors() = %v, want 1 error", errorMessages(errs))
	}
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		comment string
		wantErr string
	}{
		{"<!--ok-->", ""},
		{"<!-- ok -->", ""},
		{"<!---->", ""},
		{"<!-- a--b -->", "'--' are not allowed in UXML comments."},
		{"<!---x -->", "Can not have a dash directly following the Comment Start indicator."},
		{"<!-- x--->", "Can not have a dash directly before the Comment End indicator."},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			p := Parse(document(tt.comment + "<Box/>"))
			errs := p.Errors()

			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Errors() = %v, want none", errorMessages(errs))
				}
				return
			}
			if diff := cmp.Diff([]string{tt.wantErr}, errorMessages(errs)); diff != "" {
				t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
			}
			if errs[0].Kind != SemanticError {
				t.Errorf("Kind = %v, want %v", errs[0].Kind, SemanticError)
			}
			// Recovery resumes after the comment end.
			if got := len(p.Program().Root.Content); got != 1 {
				t.Errorf("len(Content) = %d, want 1", got)
			}
		})
	}
}

func TestParseUnknownContentCoalesces(t *testing.T) {
	src := document("<Box/> stray text here <Box/>")
	p := Parse(src)

	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want exactly 1", errorMessages(errs))
	}
	err := errs[0]
	if !strings.HasPrefix(err.Message, "Unknown Contents") {
		t.Errorf("message = %q, want Unknown Contents", err.Message)
	}
	if got := src[err.Start:err.End]; got != "stray text here" {
		t.Errorf("span = %q, want %q", got, "stray text here")
	}
	if got := len(p.Program().Root.Content); got != 2 {
		t.Errorf("len(Content) = %d, want 2", got)
	}
}

func TestParseMalformedTagRecovers(t *testing.T) {
	p := Parse(document(`<Box name= /><Label/>`))

	prog := p.Program()
	if prog == nil {
		t.Fatal("Program() = nil, want a tree")
	}
	want := []string{"Token type not found! Was expecting Quote but found EndCloseAngle in '/>' instead."}
	if diff := cmp.Diff(want, errorMessages(p.Errors())); diff != "" {
		t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Box", "Label"}, contentNames(prog.Root)); diff != "" {
		t.Errorf("recovered content mismatch (-want +got):\n%s", diff)
	}
}

func contentNames(el *Element) []string {
	var names []string
	for _, c := range el.Content {
		switch c := c.(type) {
		case *LeafElement:
			names = append(names, c.Name.Text)
		case *Element:
			names = append(names, c.Name().Text)
		}
	}
	return names
}

// A failed match never swallows the tag boundary that recovery stops at,
// so half-typed attributes and tags keep the surrounding tree intact.
func TestParseIncompleteInputKeepsTags(t *testing.T) {
	const head = `<ui:UXML xmlns:ui="UnityEngine.UIElements" xmlns:uie="UnityEditor.UIElements"`

	tests := []struct {
		name        string
		input       string
		wantRoot    []string
		wantNested  []string
		wantErrText string
	}{
		{
			name:        "attribute name before root closer",
			input:       head + ` cla></ui:UXML>`,
			wantErrText: ">",
		},
		{
			name:        "attribute name before child closer",
			input:       head + ">\n<ui:Box cla>\n<ui:Label/>\n</ui:Box>\n</ui:UXML>",
			wantRoot:    []string{"ui:Box"},
			wantNested:  []string{"ui:Label"},
			wantErrText: ">",
		},
		{
			name:        "open angle before end tag",
			input:       head + ">\n  <ui:Label/>\n  <\n</ui:UXML>",
			wantRoot:    []string{"ui:Label"},
			wantErrText: "</",
		},
		{
			name:        "open angle before sibling",
			input:       head + ">\n  <\n  <ui:Label/>\n</ui:UXML>",
			wantRoot:    []string{"ui:Label"},
			wantErrText: "<",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.input)
			prog := p.Program()
			if prog == nil {
				t.Fatalf("Program() = nil, errors %v", errorMessages(p.Errors()))
			}

			errs := p.Errors()
			if len(errs) != 1 {
				t.Fatalf("Errors() = %v, want 1 error", errorMessages(errs))
			}
			if got := tt.input[errs[0].Start:errs[0].End]; got != tt.wantErrText {
				t.Errorf("error span = %q, want %q", got, tt.wantErrText)
			}

			if got := prog.Root.Name().Text; got != "ui:UXML" {
				t.Errorf("root = %q, want ui:UXML", got)
			}
			if got := prog.Root.EndElement.Name.Text; got != "ui:UXML" {
				t.Errorf("root end tag = %q, want ui:UXML", got)
			}
			if diff := cmp.Diff(tt.wantRoot, contentNames(prog.Root)); diff != "" {
				t.Errorf("root content mismatch (-want +got):\n%s", diff)
			}
			if tt.wantNested != nil {
				box := prog.Root.Content[0].(*Element)
				if diff := cmp.Diff(tt.wantNested, contentNames(box)); diff != "" {
					t.Errorf("nested content mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParseBadAttributeKeepsSiblings(t *testing.T) {
	p := Parse(document(`<Box a="1" !b="2" c="3"/>`))

	prog := p.Program()
	if prog == nil {
		t.Fatal("Program() = nil, want a tree")
	}
	if errs := p.Errors(); len(errs) != 1 {
		t.Errorf("Errors() = %v, want 1 error", errorMessages(errs))
	}
	box := prog.Root.Content[0].(*LeafElement)
	var names []string
	for _, a := range box.Attributes {
		names = append(names, a.Name.Text)
	}
	if diff := cmp.Diff([]string{"a", "c"}, names); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFatal(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed root", rootOpen},
		{"unclosed child", rootOpen + "<Box>"},
		{"text only", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.input)
			if p.Program() != nil {
				t.Errorf("Program() = %v, want nil", p.Program())
			}
			if errs := p.Errors(); len(errs) != 1 {
				t.Errorf("Errors() = %v, want exactly 1", errorMessages(errs))
			}
			if p.NodesEncasing(0) != nil {
				t.Error("NodesEncasing() on a failed parse should be nil")
			}
		})
	}
}

func TestParseTrailingContent(t *testing.T) {
	src := document("") + "\njunk here\n"
	p := Parse(src)

	if p.Program() == nil {
		t.Fatal("Program() = nil, want a tree")
	}
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want 1 error", errorMessages(errs))
	}
	if got := src[errs[0].Start:errs[0].End]; got != "junk here" {
		t.Errorf("span = %q, want %q", got, "junk here")
	}
}

func TestParsePosition(t *testing.T) {
	p := Parse("<a>\n  <b/>\n</a>", WithFile("x.uxml"))

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{File: "x.uxml", Offset: 0, Line: 1, Column: 1}},
		{6, Position{File: "x.uxml", Offset: 6, Line: 2, Column: 3}},
		{11, Position{File: "x.uxml", Offset: 11, Line: 3, Column: 1}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, p.Position(tt.offset)); diff != "" {
			t.Errorf("Position(%d) mismatch (-want +got):\n%s", tt.offset, diff)
		}
	}
	if got := p.Position(6).String(); got != "x.uxml:2:3" {
		t.Errorf("String() = %q, want %q", got, "x.uxml:2:3")
	}
}

func TestParsePointQueries(t *testing.T) {
	src := document(`<Box class="my-row_2"/>`)
	p := Parse(src)

	offset := strings.Index(src, "Box") + 1
	tok, ok := p.TokenAt(offset)
	if !ok || tok.Kind != TokenIdent || src[tok.Offset:tok.End()] != "Box" {
		t.Errorf("TokenAt(%d) = %v, %v, want Box identifier", offset, tok, ok)
	}
	if _, ok := p.TokenAt(len(src)); ok {
		t.Errorf("TokenAt(len) found a token, want none")
	}

	end := strings.Index(src, `_2"`) + 2
	if got := p.WordAt(end); got != "my-row_2" {
		t.Errorf("WordAt(%d) = %q, want %q", end, got, "my-row_2")
	}
	if got := p.WordAt(0); got != "" {
		t.Errorf("WordAt(0) = %q, want empty", got)
	}
}

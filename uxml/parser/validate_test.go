package parser

import "testing"

func TestValidateRootRules(t *testing.T) {
	const (
		engine = `xmlns:ui="UnityEngine.UIElements"`
		editor = `xmlns:uie="UnityEditor.UIElements"`
	)

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "valid prefixed",
			input: `<ui:UXML ` + engine + ` ` + editor + `></ui:UXML>`,
		},
		{
			name:  "valid default namespace",
			input: `<UXML xmlns="UnityEngine.UIElements" ` + editor + `></UXML>`,
		},
		{
			name:  "schema instance is optional",
			input: `<ui:UXML xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" ` + engine + ` ` + editor + `></ui:UXML>`,
		},
		{
			name:    "wrong root",
			input:   `<ui:Root ` + engine + ` ` + editor + `></ui:Root>`,
			wantErr: "The root element must be 'UXML', found 'Root'.",
		},
		{
			name:    "missing engine and editor",
			input:   `<UXML></UXML>`,
			wantErr: "The root element must declare the namespace 'UnityEngine.UIElements'.",
		},
		{
			name:    "missing engine only",
			input:   `<UXML ` + editor + `></UXML>`,
			wantErr: "The root element must declare the namespace 'UnityEngine.UIElements'.",
		},
		{
			name:    "missing editor",
			input:   `<ui:UXML ` + engine + `></ui:UXML>`,
			wantErr: "The root element must declare the namespace 'UnityEditor.UIElements'.",
		},
		{
			name:    "root prefix differs from engine alias",
			input:   `<UXML ` + engine + ` ` + editor + `></UXML>`,
			wantErr: "The root element must use the 'UnityEngine.UIElements' namespace prefix 'ui', found ''.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.input)
			if p.Program() == nil {
				t.Fatalf("Program() = nil, errors %v", errorMessages(p.Errors()))
			}
			errs := p.Errors()

			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Errors() = %v, want none", errorMessages(errs))
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Errors() = %v, want exactly 1", errorMessages(errs))
			}
			if errs[0].Message != tt.wantErr {
				t.Errorf("Message = %q, want %q", errs[0].Message, tt.wantErr)
			}
			name := p.Program().Root.Name()
			if errs[0].Start != name.Start() || errs[0].End != name.End() {
				t.Errorf("span = [%d,%d), want the root name [%d,%d)", errs[0].Start, errs[0].End, name.Start(), name.End())
			}
		})
	}
}

func TestBindNamespacesFirstWins(t *testing.T) {
	src := `<a:UXML xmlns:a="UnityEngine.UIElements" xmlns:b="UnityEngine.UIElements" xmlns:e="UnityEditor.UIElements" xmlns:x="http://www.w3.org/2001/XMLSchema-instance"></a:UXML>`
	prog := Parse(src).Program()

	if prefix, _ := prog.EngineNamespacePrefix(); prefix != "a" {
		t.Errorf("EngineNamespacePrefix() = %q, want %q", prefix, "a")
	}
	if !prog.SchemaInstance.Declared || prog.SchemaInstance.Prefix != "x" {
		t.Errorf("SchemaInstance = %+v, want prefix x", prog.SchemaInstance)
	}
	if got := prog.Engine.Attribute.Name.Text; got != "xmlns:a" {
		t.Errorf("Engine.Attribute = %q, want %q", got, "xmlns:a")
	}
	if prog.Editor.Prefix != "e" {
		t.Errorf("Editor.Prefix = %q, want %q", prog.Editor.Prefix, "e")
	}
}

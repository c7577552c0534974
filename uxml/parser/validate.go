package parser

const (
	RootKeyword        = "UXML"
	EngineNamespaceURI = "UnityEngine.UIElements"
	EditorNamespaceURI = "UnityEditor.UIElements"
	SchemaInstanceURI  = "http://www.w3.org/2001/XMLSchema-instance"

	xmlnsKeyword = "xmlns"
)

// validate binds the fixed namespaces declared on the root and checks the
// document-level rules in order. At most one error is recorded.
func validate(p *Program) {
	root := p.Root.StartElement
	bindNamespaces(p, root.Attributes)

	switch {
	case root.Name.Local != RootKeyword:
		p.addError(newError(SemanticError, root.Name.Start(), root.Name.End(),
			"The root element must be '%s', found '%s'.", RootKeyword, root.Name.Local))
	case !p.Engine.Declared:
		p.addError(newError(SemanticError, root.Name.Start(), root.Name.End(),
			"The root element must declare the namespace '%s'.", EngineNamespaceURI))
	case !p.Editor.Declared:
		p.addError(newError(SemanticError, root.Name.Start(), root.Name.End(),
			"The root element must declare the namespace '%s'.", EditorNamespaceURI))
	case root.Name.Prefix() != p.Engine.Prefix:
		p.addError(newError(SemanticError, root.Name.Start(), root.Name.End(),
			"The root element must use the '%s' namespace prefix '%s', found '%s'.",
			EngineNamespaceURI, p.Engine.Prefix, root.Name.Prefix()))
	}
}

// bindNamespaces records the prefix of the first xmlns attribute bound to
// each fixed URI. "xmlns" binds the empty prefix, "xmlns:p" binds p.
func bindNamespaces(p *Program, attrs []*Attribute) {
	for _, attr := range attrs {
		prefix, ok := namespacePrefix(attr.Name)
		if !ok {
			continue
		}
		var binding *NamespaceBinding
		switch attr.Value.Text {
		case EngineNamespaceURI:
			binding = &p.Engine
		case EditorNamespaceURI:
			binding = &p.Editor
		case SchemaInstanceURI:
			binding = &p.SchemaInstance
		default:
			continue
		}
		if binding.Declared {
			continue
		}
		*binding = NamespaceBinding{Prefix: prefix, Declared: true, Attribute: attr}
	}
}

func namespacePrefix(n *Name) (string, bool) {
	if n.Namespace == nil {
		return "", n.Text == xmlnsKeyword
	}
	if n.Namespace.Text == xmlnsKeyword {
		return n.Local, true
	}
	return "", false
}

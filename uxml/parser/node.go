package parser

type NodeKind int

const (
	KindProgram NodeKind = iota
	KindDeclaration
	KindElement
	KindComment
	KindLeafElement
	KindStartElement
	KindEndElement
	KindAttribute
	KindName
	KindNamespace
	KindAttributeValue
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:        "Program",
	KindDeclaration:    "Declaration",
	KindElement:        "Element",
	KindComment:        "Comment",
	KindLeafElement:    "LeafElement",
	KindStartElement:   "StartElement",
	KindEndElement:     "EndElement",
	KindAttribute:      "Attribute",
	KindName:           "Name",
	KindNamespace:      "Namespace",
	KindAttributeValue: "AttributeValue",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node. Start and End are byte
// offsets with Start <= End, and every child lies within its parent.
// Errors holds only the defects found while building this node, not those
// of its children.
type Node interface {
	Kind() NodeKind
	Start() int
	End() int
	Children() []Node
	Errors() []*Error
}

// Content is a node that may appear between an element's start and end tags.
type Content interface {
	Node
	content()
}

type base struct {
	start, end int
	errs       []*Error
}

func (b *base) Start() int       { return b.start }
func (b *base) End() int         { return b.end }
func (b *base) Errors() []*Error { return b.errs }

func (b *base) addError(err *Error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Program is the document: an optional declaration and the root element.
type Program struct {
	base
	Declaration *Declaration
	Root        *Element

	// Namespace aliases bound on the root start tag.
	Engine         NamespaceBinding
	Editor         NamespaceBinding
	SchemaInstance NamespaceBinding
}

func (*Program) Kind() NodeKind { return KindProgram }

func (p *Program) Children() []Node {
	var children []Node
	if p.Declaration != nil {
		children = append(children, p.Declaration)
	}
	if p.Root != nil {
		children = append(children, p.Root)
	}
	return children
}

// EngineNamespacePrefix returns the alias bound to EngineNamespaceURI.
func (p *Program) EngineNamespacePrefix() (string, bool) {
	return p.Engine.Prefix, p.Engine.Declared
}

// EditorNamespacePrefix returns the alias bound to EditorNamespaceURI.
func (p *Program) EditorNamespacePrefix() (string, bool) {
	return p.Editor.Prefix, p.Editor.Declared
}

// NamespaceBinding records an xmlns attribute that binds a fixed URI.
type NamespaceBinding struct {
	Prefix    string
	Declared  bool
	Attribute *Attribute
}

type Declaration struct {
	base
	Open       Token
	Attributes []*Attribute
	Version    *Attribute
	Encoding   *Attribute
	Close      Token
}

func (*Declaration) Kind() NodeKind { return KindDeclaration }

func (d *Declaration) Children() []Node {
	return attributeNodes(nil, d.Attributes)
}

type Element struct {
	base
	StartElement *StartElement
	Content      []Content
	EndElement   *EndElement
}

func (*Element) Kind() NodeKind { return KindElement }
func (*Element) content()       {}

func (e *Element) Children() []Node {
	children := []Node{e.StartElement}
	for _, c := range e.Content {
		children = append(children, c)
	}
	if e.EndElement != nil {
		children = append(children, e.EndElement)
	}
	return children
}

// Name returns the qualified tag name of the element.
func (e *Element) Name() *Name {
	return e.StartElement.Name
}

type Comment struct {
	base
	Open  Token
	Body  string
	Close Token
}

func (*Comment) Kind() NodeKind   { return KindComment }
func (*Comment) content()         {}
func (*Comment) Children() []Node { return nil }

type LeafElement struct {
	base
	Open       Token
	Name       *Name
	Attributes []*Attribute
	Close      Token
}

func (*LeafElement) Kind() NodeKind { return KindLeafElement }
func (*LeafElement) content()       {}

func (l *LeafElement) Children() []Node {
	return attributeNodes([]Node{l.Name}, l.Attributes)
}

func (l *LeafElement) Attribute(name string) *Attribute {
	return findAttribute(l.Attributes, name)
}

type StartElement struct {
	base
	Open       Token
	Name       *Name
	Attributes []*Attribute
	Close      Token
}

func (*StartElement) Kind() NodeKind { return KindStartElement }

func (s *StartElement) Children() []Node {
	return attributeNodes([]Node{s.Name}, s.Attributes)
}

func (s *StartElement) Attribute(name string) *Attribute {
	return findAttribute(s.Attributes, name)
}

type EndElement struct {
	base
	Open  Token
	Name  *Name
	Close Token
}

func (*EndElement) Kind() NodeKind     { return KindEndElement }
func (e *EndElement) Children() []Node { return []Node{e.Name} }

type Attribute struct {
	base
	Name  *Name
	Value *AttributeValue
}

func (*Attribute) Kind() NodeKind     { return KindAttribute }
func (a *Attribute) Children() []Node { return []Node{a.Name, a.Value} }

// Name is a possibly prefixed identifier. Local excludes the namespace
// prefix, Text is the full qualified name as written.
type Name struct {
	base
	Namespace *Namespace
	Local     string
	Text      string
}

func (*Name) Kind() NodeKind { return KindName }

func (n *Name) Children() []Node {
	if n.Namespace != nil {
		return []Node{n.Namespace}
	}
	return nil
}

// Prefix returns the namespace prefix, or "" when the name is unqualified.
func (n *Name) Prefix() string {
	if n.Namespace == nil {
		return ""
	}
	return n.Namespace.Text
}

type Namespace struct {
	base
	Text string
}

func (*Namespace) Kind() NodeKind   { return KindNamespace }
func (*Namespace) Children() []Node { return nil }

// AttributeValue is a quoted literal. Text excludes the quotes.
type AttributeValue struct {
	base
	OpenQuote  Token
	Text       string
	CloseQuote Token
}

func (*AttributeValue) Kind() NodeKind   { return KindAttributeValue }
func (*AttributeValue) Children() []Node { return nil }

func attributeNodes(nodes []Node, attrs []*Attribute) []Node {
	for _, a := range attrs {
		nodes = append(nodes, a)
	}
	return nodes
}

func findAttribute(attrs []*Attribute, name string) *Attribute {
	for _, a := range attrs {
		if a.Name.Text == name {
			return a
		}
	}
	return nil
}

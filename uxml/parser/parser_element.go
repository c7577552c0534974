package parser

var (
	commentResync = []Resync{
		Consume(TokenCommentEnd),
	}
	tagResync = []Resync{
		Consume(TokenCloseAngle),
		Consume(TokenEndCloseAngle),
		Peek(TokenOpenAngle),
		Peek(TokenEndOpenAngle),
		Peek(TokenCommentStart),
	}
	endTagResync = []Resync{
		Consume(TokenCloseAngle),
		Peek(TokenOpenAngle),
		Peek(TokenEndOpenAngle),
		Peek(TokenCommentStart),
	}
)

// parseElement parses StartElement (Comment | LeafElement | Element)* EndElement.
// Malformed content is recorded on the element and skipped; running out of
// input before the end tag fails the element.
func parseElement(s *Scanner) (*Element, error) {
	start, err := parseStartElement(s)
	if err != nil {
		return nil, err
	}

	el := &Element{StartElement: start}
	var unknown []Token

	flushUnknown := func() {
		if len(unknown) == 0 {
			return
		}
		el.addError(s.errorBetween(StructuralError, unknown[0], unknown[len(unknown)-1],
			"Unknown Contents: '%s'.", s.TextRange(unknown[0], unknown[len(unknown)-1])))
		unknown = nil
	}

	for {
		if s.IsEndOfFile() {
			return nil, s.errorAtOffset(len(s.src),
				"Reached end of file while expecting the closing tag '</%s>'.", start.Name.Text)
		}
		tok, _ := s.AheadTrimmed()

		switch tok.Kind {
		case TokenCommentStart:
			flushUnknown()
			node, perr := s.TryOrRecover(func() (Node, error) {
				return parseComment(s)
			}, commentResync...)
			if perr != nil {
				el.addError(perr)
				continue
			}
			el.Content = append(el.Content, node.(*Comment))

		case TokenOpenAngle:
			flushUnknown()
			node, perr := s.TryFirstOrRecover([]Attempt{
				func() (Node, error) { return parseLeafElement(s) },
				func() (Node, error) { return parseElement(s) },
			}, tagResync...)
			if perr != nil {
				el.addError(perr)
				continue
			}
			el.Content = append(el.Content, node.(Content))

		case TokenEndOpenAngle:
			flushUnknown()
			node, perr := s.TryOrRecover(func() (Node, error) {
				return parseEndElement(s)
			}, endTagResync...)
			if perr != nil {
				el.addError(perr)
				continue
			}
			end := node.(*EndElement)
			el.EndElement = end
			el.start, el.end = start.Start(), end.End()
			if end.Name.Text != start.Name.Text {
				el.addError(newError(SemanticError, end.Name.Start(), end.Name.End(),
					"Closing tag '%s' does not match opening tag '%s'.", end.Name.Text, start.Name.Text))
			}
			return el, nil

		default:
			s.Trim()
			t, _ := s.Next()
			unknown = append(unknown, t)
		}
	}
}

// parseLeafElement parses '<' Name Attribute* '/>'.
func parseLeafElement(s *Scanner) (*LeafElement, error) {
	open, err := s.NextMatch(TokenOpenAngle, TrimBoth)
	if err != nil {
		return nil, err
	}
	name, err := parseName(s)
	if err != nil {
		return nil, err
	}

	leaf := &LeafElement{Open: open, Name: name}
	attrs, closeTok, err := parseAttributeList(s, &leaf.base, TokenEndCloseAngle)
	if err != nil {
		return nil, err
	}
	leaf.Attributes = attrs
	leaf.Close = closeTok
	leaf.start, leaf.end = open.Offset, closeTok.End()
	return leaf, nil
}

// parseStartElement parses '<' Name Attribute* '>'.
func parseStartElement(s *Scanner) (*StartElement, error) {
	open, err := s.NextMatch(TokenOpenAngle, TrimBoth)
	if err != nil {
		return nil, err
	}
	name, err := parseName(s)
	if err != nil {
		return nil, err
	}

	start := &StartElement{Open: open, Name: name}
	attrs, closeTok, err := parseAttributeList(s, &start.base, TokenCloseAngle)
	if err != nil {
		return nil, err
	}
	start.Attributes = attrs
	start.Close = closeTok
	start.start, start.end = open.Offset, closeTok.End()
	return start, nil
}

// parseEndElement parses '</' Name '>'.
func parseEndElement(s *Scanner) (*EndElement, error) {
	open, err := s.NextMatch(TokenEndOpenAngle, TrimBoth)
	if err != nil {
		return nil, err
	}
	name, err := parseName(s)
	if err != nil {
		return nil, err
	}
	closeTok, err := s.NextMatch(TokenCloseAngle, TrimStart)
	if err != nil {
		return nil, err
	}
	return &EndElement{
		base:  base{start: open.Offset, end: closeTok.End()},
		Open:  open,
		Name:  name,
		Close: closeTok,
	}, nil
}

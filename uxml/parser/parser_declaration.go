package parser

// parseDeclaration parses '<?xml' Attribute* '?>'. Attribute-level
// problems are recorded on the declaration; only a missing '?>' fails it.
func parseDeclaration(s *Scanner) (*Declaration, error) {
	open, err := s.NextMatch(TokenDeclarationStart, TrimStart)
	if err != nil {
		return nil, err
	}

	d := &Declaration{Open: open}
	attrs, closeTok, err := parseAttributeList(s, &d.base, TokenDeclarationEnd)
	if err != nil {
		return nil, err
	}
	d.Attributes = attrs
	d.Close = closeTok
	d.start, d.end = open.Offset, closeTok.End()

	for _, attr := range attrs {
		switch attr.Name.Text {
		case "version":
			if d.Version != nil {
				d.addError(newError(SemanticError, attr.Start(), attr.End(),
					"Declarations may only have one 'version' attribute."))
				continue
			}
			d.Version = attr
		case "encoding":
			if d.Encoding != nil {
				d.addError(newError(SemanticError, attr.Start(), attr.End(),
					"Declarations may only have one 'encoding' attribute."))
				continue
			}
			d.Encoding = attr
		default:
			d.addError(newError(SemanticError, attr.Start(), attr.End(),
				"Declarations do not recognize a '%s' attribute.", attr.Name.Text))
		}
	}

	if d.Version == nil {
		d.addError(s.errorBetween(SemanticError, open, closeTok,
			"Declarations require a 'version' attribute."))
	}
	return d, nil
}

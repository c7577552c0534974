package parser

var (
	nameStartTokens = []TokenKind{TokenIdent, TokenUXML, TokenVersion, TokenEncoding, TokenXmlns}
	nameTokens      = append(append([]TokenKind{}, nameStartTokens...), TokenDash, TokenPeriod, TokenColon)

	// Resynchronization points for a malformed attribute: the next
	// separator, the end of the tag, or the start of another tag.
	attributeResync = []Resync{
		Peek(TokenWhitespace),
		Peek(TokenCloseAngle),
		Peek(TokenEndCloseAngle),
		Peek(TokenDeclarationEnd),
		Peek(TokenOpenAngle),
		Peek(TokenEndOpenAngle),
		Peek(TokenCommentStart),
	}

	// Tokens that end an attribute list whichever tag it belongs to.
	tagBoundaryTokens = []TokenKind{
		TokenCloseAngle,
		TokenEndCloseAngle,
		TokenDeclarationEnd,
		TokenOpenAngle,
		TokenEndOpenAngle,
		TokenCommentStart,
		TokenDeclarationStart,
	}
)

// parseName parses (Namespace ':')? IdentifierRun, where the run may
// continue with '-', '.' and further identifiers.
func parseName(s *Scanner) (*Name, error) {
	first, err := s.NextMatchSome(nameStartTokens...)
	if err != nil {
		return nil, err
	}

	n := &Name{}
	contents := []Token{first}

	for s.IsAheadSome(nameTokens...) {
		if s.IsAhead(TokenColon) && n.Namespace == nil {
			s.Next()
			n.Namespace = newNamespace(s, contents)
			tok, err := s.NextMatchSome(nameStartTokens...)
			if err != nil {
				return nil, err
			}
			contents = []Token{tok}
			continue
		}
		tok, _ := s.Next()
		contents = append(contents, tok)
	}

	last := contents[len(contents)-1]
	n.Local = s.TextRange(contents[0], last)
	n.Text = s.TextRange(first, last)
	n.start, n.end = first.Offset, last.End()
	return n, nil
}

func newNamespace(s *Scanner, contents []Token) *Namespace {
	first, last := contents[0], contents[len(contents)-1]
	return &Namespace{
		base: base{start: first.Offset, end: last.End()},
		Text: s.TextRange(first, last),
	}
}

// parseAttribute parses Name '=' AttributeValue.
func parseAttribute(s *Scanner) (*Attribute, error) {
	name, err := parseName(s)
	if err != nil {
		return nil, err
	}
	if _, err := s.NextMatch(TokenEquals, TrimBoth); err != nil {
		return nil, err
	}
	value, err := parseAttributeValue(s)
	if err != nil {
		return nil, err
	}
	return &Attribute{
		base:  base{start: name.Start(), end: value.End()},
		Name:  name,
		Value: value,
	}, nil
}

// parseAttributeValue parses '"' AnyTokenExceptQuote* '"'.
func parseAttributeValue(s *Scanner) (*AttributeValue, error) {
	open, err := s.NextMatch(TokenQuote, TrimNone)
	if err != nil {
		return nil, err
	}

	for {
		tok, err := s.Ahead()
		if err != nil {
			return nil, s.errorAtOffset(len(s.src), "Reached end of file while expecting `\"`.")
		}
		if tok.Kind == TokenQuote {
			break
		}
		s.Next()
	}

	closeQuote, err := s.NextMatch(TokenQuote, TrimNone)
	if err != nil {
		return nil, err
	}
	return &AttributeValue{
		base:       base{start: open.Offset, end: closeQuote.End()},
		OpenQuote:  open,
		Text:       s.src[open.End():closeQuote.Offset],
		CloseQuote: closeQuote,
	}, nil
}

// parseAttributeList parses whitespace-separated attributes up to and
// including closer. A malformed attribute is recorded on owner and skipped.
func parseAttributeList(s *Scanner, owner *base, closer TokenKind) ([]*Attribute, Token, error) {
	var attrs []*Attribute
	stop := append([]TokenKind{closer}, tagBoundaryTokens...)

	for !s.IsAheadSomeTrimmed(stop...) {
		if s.IsEndOfFile() {
			_, err := s.AheadTrimmed()
			return nil, Token{}, err
		}

		mark := s.pos
		node, perr := s.TryOrRecover(func() (Node, error) {
			if _, err := s.NextMatch(TokenWhitespace, TrimEnd); err != nil {
				return nil, err
			}
			return parseAttribute(s)
		}, attributeResync...)
		if perr != nil {
			owner.addError(perr)
			s.ensureProgress(mark)
			continue
		}
		attrs = append(attrs, node.(*Attribute))
	}

	// The boundary of another tag is left for the caller to resynchronize on.
	tok, _ := s.AheadTrimmed()
	if tok.Kind != closer {
		return nil, tok, s.errorAtToken(tok, "Token type not found! Was expecting %s but found %s in '%s' instead.",
			closer, tok.Kind, s.Text(tok))
	}
	closeTok, err := s.NextMatch(closer, TrimStart)
	if err != nil {
		return nil, closeTok, err
	}
	return attrs, closeTok, nil
}

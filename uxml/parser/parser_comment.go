package parser

// parseComment parses '<!--' Body '-->'. The body may not start or end with
// a dash and may not contain two dashes in a row.
func parseComment(s *Scanner) (*Comment, error) {
	open, err := s.NextMatch(TokenCommentStart, TrimStart)
	if err != nil {
		return nil, err
	}

	if !s.IsAhead(TokenCommentEnd) {
		first, err := s.Next()
		if err != nil {
			return nil, err
		}
		if first.Kind == TokenDash {
			return nil, s.errorBetween(SemanticError, open, first,
				"Can not have a dash directly following the Comment Start indicator.")
		}

		prev := first
		for !s.IsAhead(TokenCommentEnd) {
			tok, err := s.Next()
			if err != nil {
				return nil, s.errorAtOffset(len(s.src), "Reached end of file while expecting '-->'.")
			}
			if tok.Kind == TokenDash && prev.Kind == TokenDash {
				return nil, s.errorBetween(SemanticError, prev, tok,
					"'--' are not allowed in UXML comments.")
			}
			prev = tok
		}

		if prev.Kind == TokenDash {
			end, _ := s.Ahead()
			return nil, s.errorBetween(SemanticError, prev, end,
				"Can not have a dash directly before the Comment End indicator.")
		}
	}

	closeTok, err := s.NextMatch(TokenCommentEnd, TrimNone)
	if err != nil {
		return nil, err
	}
	return &Comment{
		base:  base{start: open.Offset, end: closeTok.End()},
		Open:  open,
		Body:  s.src[open.End():closeTok.Offset],
		Close: closeTok,
	}, nil
}

package parser

// Resync names a token kind that ends panic-mode skipping. A consuming entry
// swallows the matched token; a peeking entry leaves it for the caller.
type Resync struct {
	Kind TokenKind
	Peek bool
}

func Consume(kind TokenKind) Resync {
	return Resync{Kind: kind}
}

func Peek(kind TokenKind) Resync {
	return Resync{Kind: kind, Peek: true}
}

// Attempt is one grammar alternative. A non-nil error means the
// alternative does not apply at the cursor.
type Attempt func() (Node, error)

// TryFirst runs the attempts in order from the same cursor and returns the
// first success. When all fail the cursor is restored and the error that
// lies furthest into the input is returned; on equal offsets the earlier
// attempt's error is kept.
func (s *Scanner) TryFirst(attempts ...Attempt) (Node, error) {
	mark := s.pos
	var furthest *Error

	for _, attempt := range attempts {
		node, err := attempt()
		if err == nil {
			return node, nil
		}
		perr := s.asError(err)
		if furthest == nil || perr.Start > furthest.Start {
			furthest = perr
		}
		s.pos = mark
	}

	if furthest == nil {
		return nil, s.errorAtCursor("No alternative applies here.")
	}
	return nil, furthest
}

// TryOrRecover runs attempt and, if it fails, skips tokens until one of
// resync is found. A failing token that resync peeks at stays in place.
// The failure is returned as a value for the caller to record; the cursor
// is left at the recovery point.
func (s *Scanner) TryOrRecover(attempt Attempt, resync ...Resync) (Node, *Error) {
	node, perr, _ := s.tryOrRecover(attempt, resync)
	return node, perr
}

// TryFirstOrRecover runs each attempt under TryOrRecover from the same
// cursor. The first success wins. When all fail, the cursor is left at the
// recovery point of the attempt that got furthest before failing, and that
// attempt's error is returned. Ties keep the earlier attempt.
func (s *Scanner) TryFirstOrRecover(attempts []Attempt, resync ...Resync) (Node, *Error) {
	var best *Error
	bestFailedAt, bestRecovered := -1, s.pos

	recovering := make([]Attempt, len(attempts))
	for i, attempt := range attempts {
		recovering[i] = func() (Node, error) {
			node, perr, failedAt := s.tryOrRecover(attempt, resync)
			if perr == nil {
				return node, nil
			}
			if best == nil || failedAt > bestFailedAt {
				best, bestFailedAt, bestRecovered = perr, failedAt, s.pos
			}
			return nil, perr
		}
	}

	node, err := s.TryFirst(recovering...)
	if err == nil {
		return node, nil
	}
	if best == nil {
		return nil, s.asError(err)
	}
	s.pos = bestRecovered
	return nil, best
}

func (s *Scanner) tryOrRecover(attempt Attempt, resync []Resync) (Node, *Error, int) {
	mark := s.pos
	node, err := attempt()
	if err == nil {
		return node, nil, s.pos
	}
	perr := s.asError(err)
	failedAt := s.pos
	if !s.retreatToFailure(perr, mark, resync) {
		s.synchronize(resync)
	}
	return nil, perr, failedAt
}

// retreatToFailure puts back the token that caused perr when it is one the
// caller resynchronizes on without consuming. The token must lie after mark
// so that recovery still makes progress.
func (s *Scanner) retreatToFailure(perr *Error, mark int, resync []Resync) bool {
	tok, ok := s.TokenAt(perr.Start)
	if !ok || tok.Offset != perr.Start || !isPeekResync(resync, tok.Kind) {
		return false
	}
	i, ok := s.indexOf(tok)
	if !ok || i <= mark || i > s.pos {
		return false
	}
	return s.RetreatTo(tok)
}

func isPeekResync(resync []Resync, kind TokenKind) bool {
	for _, r := range resync {
		if r.Peek && r.Kind == kind {
			return true
		}
	}
	return false
}

// synchronize is panic mode: advance until a resync token or end of input.
func (s *Scanner) synchronize(resync []Resync) {
	for s.pos < len(s.tokens) {
		kind := s.tokens[s.pos].Kind
		for _, r := range resync {
			if r.Kind == kind {
				if !r.Peek {
					s.pos++
				}
				return
			}
		}
		s.pos++
	}
}

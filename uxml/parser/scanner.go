package parser

import (
	"errors"
	"sort"
	"strings"
)

// Trim selects which side of a matched token NextMatch skips whitespace on.
type Trim int

const (
	TrimNone Trim = iota
	TrimStart
	TrimEnd
	TrimBoth
)

// Scanner is a cursor over the tokens of one source text. It is owned by a
// single parse and never shared.
type Scanner struct {
	src    string
	tokens []Token
	pos    int
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src:    src,
		tokens: Tokenize(src),
	}
}

func (s *Scanner) Source() string {
	return s.src
}

func (s *Scanner) Tokens() []Token {
	return s.tokens
}

// Ahead returns the token at the cursor without consuming it.
func (s *Scanner) Ahead() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, s.errorAtCursor("Reached end of file while expecting another token ahead.")
	}
	return s.tokens[s.pos], nil
}

// AheadTrimmed returns the first non-whitespace token from the cursor
// without consuming anything.
func (s *Scanner) AheadTrimmed() (Token, error) {
	i := s.pos
	for i < len(s.tokens) && s.tokens[i].Kind == TokenWhitespace {
		i++
	}
	if i >= len(s.tokens) {
		return Token{}, s.errorAtOffset(len(s.src), "Reached end of file while expecting another token ahead.")
	}
	return s.tokens[i], nil
}

// IsAhead reports whether the token at the cursor is of kind. It reports
// false at the end of input.
func (s *Scanner) IsAhead(kind TokenKind) bool {
	tok, err := s.Ahead()
	return err == nil && tok.Kind == kind
}

func (s *Scanner) IsAheadSome(kinds ...TokenKind) bool {
	tok, err := s.Ahead()
	return err == nil && containsKind(kinds, tok.Kind)
}

func (s *Scanner) IsAheadTrimmed(kind TokenKind) bool {
	tok, err := s.AheadTrimmed()
	return err == nil && tok.Kind == kind
}

func (s *Scanner) IsAheadSomeTrimmed(kinds ...TokenKind) bool {
	tok, err := s.AheadTrimmed()
	return err == nil && containsKind(kinds, tok.Kind)
}

// Next consumes and returns the token at the cursor.
func (s *Scanner) Next() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, s.errorAtCursor("Reached end of file while expecting another token next.")
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// NextMatch consumes one token and fails if it is not of kind. The token is
// consumed even on a mismatch.
func (s *Scanner) NextMatch(kind TokenKind, trim Trim) (Token, error) {
	if trim == TrimStart || trim == TrimBoth {
		s.Trim()
	}
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, s.errorAtToken(tok, "Token type not found! Was expecting %s but found %s in '%s' instead.",
			kind, tok.Kind, s.Text(tok))
	}
	if trim == TrimEnd || trim == TrimBoth {
		s.Trim()
	}
	return tok, nil
}

// NextMatchSome is NextMatch against a set of kinds.
func (s *Scanner) NextMatchSome(kinds ...TokenKind) (Token, error) {
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	if !containsKind(kinds, tok.Kind) {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		return tok, s.errorAtToken(tok, "Token type not found! Was expecting any of [%s] but found %s in '%s' instead.",
			strings.Join(names, ", "), tok.Kind, s.Text(tok))
	}
	return tok, nil
}

// Trim consumes contiguous whitespace at the cursor.
func (s *Scanner) Trim() {
	for s.pos < len(s.tokens) && s.tokens[s.pos].Kind == TokenWhitespace {
		s.pos++
	}
}

// IsEndOfFile reports whether only whitespace, or nothing, remains.
func (s *Scanner) IsEndOfFile() bool {
	for i := s.pos; i < len(s.tokens); i++ {
		if s.tokens[i].Kind != TokenWhitespace {
			return false
		}
	}
	return true
}

// RetreatTo moves the cursor back onto tok, which must have been produced by
// this scanner. It reports whether the token was found.
func (s *Scanner) RetreatTo(tok Token) bool {
	i, ok := s.indexOf(tok)
	if !ok {
		return false
	}
	s.pos = i
	return true
}

func (s *Scanner) indexOf(tok Token) (int, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].Offset >= tok.Offset
	})
	if i < len(s.tokens) && s.tokens[i] == tok {
		return i, true
	}
	return 0, false
}

// ensureProgress advances past one token when the cursor has not moved
// since mark.
func (s *Scanner) ensureProgress(mark int) {
	if s.pos == mark && s.pos < len(s.tokens) {
		s.pos++
	}
}

// Text returns the source text of tok.
func (s *Scanner) Text(tok Token) string {
	return s.src[tok.Offset:tok.End()]
}

// TextRange returns the source text from the start of first to the end of last.
func (s *Scanner) TextRange(first, last Token) string {
	return s.src[first.Offset:last.End()]
}

// TokenAt returns the token covering offset.
func (s *Scanner) TokenAt(offset int) (Token, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].End() > offset
	})
	if i < len(s.tokens) && s.tokens[i].Contains(offset) {
		return s.tokens[i], true
	}
	return Token{}, false
}

// WordAt returns the longest run of [A-Za-z0-9-_] that ends exactly at offset.
func (s *Scanner) WordAt(offset int) string {
	if offset < 0 || offset > len(s.src) {
		return ""
	}
	i := offset
	for i > 0 && isWordChar(s.src[i-1]) {
		i--
	}
	return s.src[i:offset]
}

func isWordChar(ch byte) bool {
	return isWordByte(ch) || ch == '-'
}

func (s *Scanner) errorAtToken(tok Token, format string, args ...any) *Error {
	return newError(StructuralError, tok.Offset, tok.End(), format, args...)
}

func (s *Scanner) errorBetween(kind ErrorKind, first, last Token, format string, args ...any) *Error {
	return newError(kind, first.Offset, last.End(), format, args...)
}

func (s *Scanner) errorAtOffset(offset int, format string, args ...any) *Error {
	return newError(StructuralError, offset, offset, format, args...)
}

func (s *Scanner) errorAtCursor(format string, args ...any) *Error {
	offset := len(s.src)
	if s.pos < len(s.tokens) {
		offset = s.tokens[s.pos].Offset
	}
	return s.errorAtOffset(offset, format, args...)
}

// asError converts any failure into an *Error anchored at the cursor.
func (s *Scanner) asError(err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return s.errorAtCursor("[Unexpected] %v", err)
}

func containsKind(kinds []TokenKind, kind TokenKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

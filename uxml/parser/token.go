package parser

import "strconv"

// Position is a resolved, one-based line/column location. Column counts bytes.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.File != "" {
		return p.File + ":" + s
	}
	return s
}

type TokenKind int

const (
	TokenUndefined TokenKind = iota
	TokenDeclarationStart
	TokenDeclarationEnd
	TokenOpenAngle
	TokenCloseAngle
	TokenEndOpenAngle
	TokenEndCloseAngle
	TokenIdent
	TokenColon
	TokenWhitespace
	TokenPeriod
	TokenEquals
	TokenQuote
	TokenEscapedQuote
	TokenSlash
	TokenBackslash
	TokenEscapedBackslash
	TokenDash
	TokenCommentStart
	TokenCommentEnd

	// Reserved words
	TokenVersion
	TokenEncoding
	TokenXmlns
	TokenUXML
)

var tokenKindNames = map[TokenKind]string{
	TokenUndefined:        "Undefined",
	TokenDeclarationStart: "DeclarationStart",
	TokenDeclarationEnd:   "DeclarationEnd",
	TokenOpenAngle:        "OpenAngle",
	TokenCloseAngle:       "CloseAngle",
	TokenEndOpenAngle:     "EndOpenAngle",
	TokenEndCloseAngle:    "EndCloseAngle",
	TokenIdent:            "Identifier",
	TokenColon:            "Colon",
	TokenWhitespace:       "Whitespace",
	TokenPeriod:           "Period",
	TokenEquals:           "Equals",
	TokenQuote:            "Quote",
	TokenEscapedQuote:     "EscapedQuote",
	TokenSlash:            "Slash",
	TokenBackslash:        "Backslash",
	TokenEscapedBackslash: "EscapedBackslash",
	TokenDash:             "Dash",
	TokenCommentStart:     "CommentStart",
	TokenCommentEnd:       "CommentEnd",
	TokenVersion:          "version",
	TokenEncoding:         "encoding",
	TokenXmlns:            "xmlns",
	TokenUXML:             "UXML",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a classified span of source text. Offset and Length are in bytes.
type Token struct {
	Kind       TokenKind
	Offset     int
	Length     int
	Precedence int
}

// End returns the offset one past the last byte of the token.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Contains reports whether offset falls inside the token (end exclusive).
func (t Token) Contains(offset int) bool {
	return t.Offset <= offset && offset < t.End()
}

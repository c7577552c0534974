package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A matcher reports the length of the text it recognizes at src[at:], or 0.
type matcher func(src string, at int) int

type tokenDef struct {
	kind       TokenKind
	match      matcher
	precedence int
}

// Reserved words are a subset of identifiers, so they carry a higher
// precedence and win whenever they match at the same position.
var tokenDefs = []tokenDef{
	{TokenDeclarationStart, keywordPrefix("<?xml"), 0},
	{TokenDeclarationEnd, literal("?>"), 0},
	{TokenOpenAngle, literal("<"), 0},
	{TokenCloseAngle, literal(">"), 0},
	{TokenEndOpenAngle, literal("</"), 0},
	{TokenEndCloseAngle, literal("/>"), 0},
	{TokenIdent, identifier, 0},
	{TokenColon, literal(":"), 0},
	{TokenWhitespace, whitespace, 0},
	{TokenPeriod, literal("."), 0},
	{TokenEquals, literal("="), 0},
	{TokenQuote, literal(`"`), 0},
	{TokenEscapedQuote, literal(`\"`), 0},
	{TokenSlash, literal("/"), 0},
	{TokenBackslash, literal(`\`), 0},
	{TokenEscapedBackslash, literal(`\\`), 0},
	{TokenDash, literal("-"), 0},
	{TokenCommentStart, literal("<!--"), 0},
	{TokenCommentEnd, literal("-->"), 0},
	{TokenVersion, keyword("version"), 1},
	{TokenEncoding, keyword("encoding"), 1},
	{TokenXmlns, keyword("xmlns"), 1},
	{TokenUXML, keyword("UXML"), 1},
}

// Tokenize splits src into a gap-free sequence of tokens. Input that no
// pattern recognizes is folded into TokenUndefined spans.
func Tokenize(src string) []Token {
	var tokens []Token
	undefinedStart := 0
	pos := 0

	for pos < len(src) {
		tok, ok := matchAt(src, pos)
		if !ok {
			pos++
			continue
		}
		if pos > undefinedStart {
			tokens = append(tokens, Token{
				Kind:   TokenUndefined,
				Offset: undefinedStart,
				Length: pos - undefinedStart,
			})
		}
		tokens = append(tokens, tok)
		pos += tok.Length
		undefinedStart = pos
	}

	if pos > undefinedStart {
		tokens = append(tokens, Token{
			Kind:   TokenUndefined,
			Offset: undefinedStart,
			Length: pos - undefinedStart,
		})
	}
	return tokens
}

// matchAt tries every definition anchored at pos. A candidate replaces the
// current best only with strictly higher precedence, or equal precedence and
// strictly longer text; otherwise the earlier definition wins.
func matchAt(src string, pos int) (Token, bool) {
	var best Token
	found := false
	for _, def := range tokenDefs {
		n := def.match(src, pos)
		if n <= 0 {
			continue
		}
		if !found ||
			def.precedence > best.Precedence ||
			(def.precedence == best.Precedence && n > best.Length) {
			best = Token{Kind: def.kind, Offset: pos, Length: n, Precedence: def.precedence}
			found = true
		}
	}
	return best, found
}

func literal(s string) matcher {
	return func(src string, at int) int {
		if strings.HasPrefix(src[at:], s) {
			return len(s)
		}
		return 0
	}
}

// keywordPrefix matches s when it is not followed by a word character.
func keywordPrefix(s string) matcher {
	return func(src string, at int) int {
		if !strings.HasPrefix(src[at:], s) {
			return 0
		}
		end := at + len(s)
		if end < len(src) && isWordByte(src[end]) {
			return 0
		}
		return len(s)
	}
}

// keyword matches s only as a whole word.
func keyword(s string) matcher {
	prefix := keywordPrefix(s)
	return func(src string, at int) int {
		if at > 0 && isWordByte(src[at-1]) {
			return 0
		}
		return prefix(src, at)
	}
}

func identifier(src string, at int) int {
	if !isLetter(src[at]) {
		return 0
	}
	i := at + 1
	for i < len(src) && isWordByte(src[i]) {
		i++
	}
	return i - at
}

func whitespace(src string, at int) int {
	i := at
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError || !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i - at
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordByte(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

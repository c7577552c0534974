// Package underscore implements the escaping used for UXML class names:
// every byte outside [A-Za-z0-9-] and whitespace is written as '_' followed
// by two upper-case hex digits.
package underscore

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Encode escapes every disallowed character of s. Multi-byte characters
// are escaped one UTF-8 byte at a time so that Decode restores them exactly.
func Encode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && isPlain(r) {
			sb.WriteString(s[i : i+size])
			i += size
			continue
		}
		for _, b := range []byte(s[i : i+size]) {
			sb.WriteByte('_')
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0x0F])
		}
		i += size
	}
	return sb.String()
}

// Decode replaces every '_' followed by two hex digits with the byte they
// encode. Stray underscores are kept as they are.
func Decode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// IsEncodingSafe reports whether s needs no escaping. With
// allowStrayUnderscores any '_' is accepted; otherwise each '_' must start
// a two-digit hex escape.
func IsEncodingSafe(s string, allowStrayUnderscores bool) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r != utf8.RuneError && isPlain(r):
			i += size
		case r != '_':
			return false
		case allowStrayUnderscores:
			i++
		case i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			i += 3
		default:
			return false
		}
	}
	return true
}

func isPlain(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' ||
		unicode.IsSpace(r)
}

func isHex(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func unhex(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	}
	return ch - 'A' + 10
}

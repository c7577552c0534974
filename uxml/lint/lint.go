// Package lint reports style problems in a parsed UXML tree that do not
// affect its validity.
package lint

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/uxmlls/uxml/parser"
	"github.com/dhamidi/uxmlls/uxml/underscore"
)

// PreEncodedSuffix marks files whose class names are already escaped.
const PreEncodedSuffix = ".uxml_"

const classNameMessage = "Class names in UXML may only consist of A-Z, a-z, 0-9, -, and _."

// Suggestion is the replacement offered for a class name.
type Suggestion struct {
	Decoded string `json:"decoded"`
	Encoded string `json:"encoded"`
}

// Warning is a non-fatal observation anchored to a byte range of the source.
type Warning struct {
	Message    string
	Start      int
	End        int
	Suggestion *Suggestion
}

// IsPreEncoded reports whether the named file is exempt from class-name checks.
func IsPreEncoded(name string) bool {
	return strings.HasSuffix(name, PreEncodedSuffix)
}

// Lint checks every class attribute of program. Each word of the value that
// would need escaping produces one warning with the escaped rewrite.
func Lint(program *parser.Program) []Warning {
	if program == nil {
		return nil
	}

	var warnings []Warning
	parser.Walk(program, func(n parser.Node) bool {
		attr, ok := n.(*parser.Attribute)
		if !ok {
			return true
		}
		if attr.Name.Text == "class" {
			warnings = append(warnings, lintClassValue(attr.Value)...)
		}
		return false
	})
	return warnings
}

// File lints program unless name marks the document as pre-encoded.
func File(name string, program *parser.Program) []Warning {
	if IsPreEncoded(name) {
		return nil
	}
	return Lint(program)
}

func lintClassValue(value *parser.AttributeValue) []Warning {
	var warnings []Warning
	base := value.OpenQuote.End()

	for _, w := range words(value.Text) {
		if underscore.IsEncodingSafe(w.text, false) {
			continue
		}
		start := base + w.offset
		warnings = append(warnings, Warning{
			Message: classNameMessage,
			Start:   start,
			End:     start + len(w.text),
			Suggestion: &Suggestion{
				Decoded: w.text,
				Encoded: underscore.Encode(w.text),
			},
		})
	}
	return warnings
}

type word struct {
	text   string
	offset int
}

// words splits s on whitespace, keeping the byte offset of each word.
func words(s string) []word {
	var out []word
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, word{s[start:i], start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		out = append(out, word{s[start:], start})
	}
	return out
}

// Fix applies every suggestion in warnings to src. Warnings must refer to
// non-overlapping ranges of src, as produced by Lint.
func Fix(src string, warnings []Warning) string {
	fixes := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		if w.Suggestion != nil {
			fixes = append(fixes, w)
		}
	}
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Start > fixes[j].Start })

	for _, w := range fixes {
		src = src[:w.Start] + w.Suggestion.Encoded + src[w.End:]
	}
	return src
}

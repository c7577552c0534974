package parser

import (
	"strings"
)

// Option configures a parse.
type Option func(*Parser)

// WithFile sets the file name reported in positions.
func WithFile(name string) Option {
	return func(p *Parser) {
		p.file = name
	}
}

// Parser holds the result of parsing one source text: the tree, if one
// could be built, and the scanner used to build it for point queries.
type Parser struct {
	file    string
	scanner *Scanner
	program *Program
	fatal   *Error
	lines   []int
}

// Parse tokenizes and parses src. It never fails: a document that cannot
// be turned into a tree has a nil Program and exactly one error.
func Parse(src string, opts ...Option) *Parser {
	p := &Parser{scanner: NewScanner(src)}
	for _, opt := range opts {
		opt(p)
	}

	program, err := parseProgram(p.scanner)
	if err != nil {
		p.fatal = p.scanner.asError(err)
		return p
	}
	validate(program)
	p.program = program
	return p
}

// Program returns the syntax tree, or nil when parsing failed outright.
func (p *Parser) Program() *Program {
	return p.program
}

// Errors returns every recorded error in pre-order: a node's own errors
// come before those of its children, siblings in source order.
func (p *Parser) Errors() []*Error {
	if p.fatal != nil {
		return []*Error{p.fatal}
	}
	return CollectErrors(p.program)
}

func (p *Parser) File() string {
	return p.file
}

func (p *Parser) Source() string {
	return p.scanner.Source()
}

func (p *Parser) Tokens() []Token {
	return p.scanner.Tokens()
}

func (p *Parser) TokenAt(offset int) (Token, bool) {
	return p.scanner.TokenAt(offset)
}

func (p *Parser) WordAt(offset int) string {
	return p.scanner.WordAt(offset)
}

// NodesEncasing returns the nodes whose span contains offset, innermost
// first. It returns nil when there is no tree.
func (p *Parser) NodesEncasing(offset int) []Node {
	if p.program == nil {
		return nil
	}
	return NodesEncasing(p.program, offset)
}

// Position converts a byte offset into a 1-based line and column.
func (p *Parser) Position(offset int) Position {
	if p.lines == nil {
		p.lines = lineStarts(p.scanner.Source())
	}
	line := 0
	for line+1 < len(p.lines) && p.lines[line+1] <= offset {
		line++
	}
	return Position{
		File:   p.file,
		Offset: offset,
		Line:   line + 1,
		Column: offset - p.lines[line] + 1,
	}
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// parseProgram parses Declaration? Element. A broken declaration is
// recorded and skipped; a root element that cannot be closed fails the
// whole parse.
func parseProgram(s *Scanner) (*Program, error) {
	p := &Program{}

	if s.IsAheadTrimmed(TokenDeclarationStart) {
		node, perr := s.TryOrRecover(func() (Node, error) {
			return parseDeclaration(s)
		}, Consume(TokenDeclarationEnd), Peek(TokenOpenAngle))
		if perr != nil {
			p.addError(perr)
		} else {
			p.Declaration = node.(*Declaration)
		}
	}

	root, err := parseElement(s)
	if err != nil {
		return nil, err
	}
	p.Root = root

	p.start, p.end = root.Start(), root.End()
	if p.Declaration != nil {
		p.start = p.Declaration.Start()
	}

	if !s.IsEndOfFile() {
		s.Trim()
		first, _ := s.Ahead()
		last := s.tokens[len(s.tokens)-1]
		text := strings.TrimSpace(s.TextRange(first, last))
		p.addError(newError(StructuralError, first.Offset, first.Offset+len(text),
			"Unexpected content after the root element: '%s'.", text))
	}
	return p, nil
}

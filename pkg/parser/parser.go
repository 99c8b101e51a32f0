// pkg/parser/parser.go
package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/NivBraz/vocabdeck/pkg/vocab"
)

const (
	DefaultMinTermLength = 3
	DefaultSectionMarker = "Words"
)

var (
	punctuation = regexp.MustCompile(`[.!?]`)
	capitals    = regexp.MustCompile(`[A-Z]`)
)

// Parser turns vocabulary list text into entries. Each clause is expected to
// look like "term lowercase definition Example sentence", and the list is
// divided into difficulty sections by a marker word.
type Parser struct {
	minTermLength int
	sectionMarker string
}

type Option func(*Parser)

// WithMinTermLength sets the shortest term (in characters) that is kept.
func WithMinTermLength(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.minTermLength = n
		}
	}
}

// WithSectionMarker sets the literal token that separates difficulty sections.
func WithSectionMarker(marker string) Option {
	return func(p *Parser) {
		if marker != "" {
			p.sectionMarker = marker
		}
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		minTermLength: DefaultMinTermLength,
		sectionMarker: DefaultSectionMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseEntries extracts entries from content in source order. Malformed
// clauses are dropped silently.
func (p *Parser) ParseEntries(content []byte) []vocab.Entry {
	var entries []vocab.Entry

	for i, section := range strings.Split(string(content), p.sectionMarker) {
		difficulty := vocab.DifficultyForSection(i)
		for _, line := range SplitLines(section) {
			if entry, ok := p.ParseLine(line, difficulty); ok {
				entries = append(entries, entry)
			}
		}
	}

	return entries
}

// SplitLines breaks a section into clauses on '.', '!' and '?'. Empty
// clauses are kept so that callers see every terminator.
func SplitLines(section string) []string {
	return punctuation.Split(section, -1)
}

// ParseLine applies the term/definition/example heuristic to one clause.
//
// Offsets are character offsets into the original clause: the definition is
// cut from the text after the term, but the example starts at
// len(term)+len(definition)+1 of the clause itself, so leading whitespace
// shifts the example boundary. Whitespace-only fields still count as present.
func (p *Parser) ParseLine(line string, difficulty vocab.Difficulty) (vocab.Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return vocab.Entry{}, false
	}

	term := fields[0]
	termLen := utf8.RuneCountInString(term)
	if termLen < p.minTermLength {
		return vocab.Entry{}, false
	}

	rest := sliceFrom(line, termLen+1)
	definition := rest
	if loc := capitals.FindStringIndex(rest); loc != nil {
		definition = rest[:loc[0]]
	}
	example := sliceFrom(line, termLen+utf8.RuneCountInString(definition)+1)

	if term == "" || definition == "" || example == "" {
		return vocab.Entry{}, false
	}
	return vocab.NewEntry(term, definition, example, difficulty), true
}

// sliceFrom returns s from its n-th character on. Invalid UTF-8 bytes count
// as one character each and are kept as they are.
func sliceFrom(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	if n > 0 {
		return ""
	}
	return s[i:]
}

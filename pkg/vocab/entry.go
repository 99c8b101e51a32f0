// pkg/vocab/entry.go
package vocab

import (
	"fmt"
	"strings"
)

// Difficulty is the tier a vocabulary word was listed under.
type Difficulty int

const (
	Unknown Difficulty = iota
	Common
	Basic
	Advanced
)

var difficultyNames = [...]string{
	Unknown:  "Unknown",
	Common:   "Common",
	Basic:    "Basic",
	Advanced: "Advanced",
}

// sectionDifficulties maps the Nth "Words" section of a source file to a tier.
// The leading section is whatever precedes the first marker.
var sectionDifficulties = [...]Difficulty{Unknown, Common, Basic, Advanced, Unknown}

// textEscaper escapes only the characters that can break element text.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return difficultyNames[Unknown]
	}
	return difficultyNames[d]
}

// DifficultyForSection returns the tier for a 0-based section index.
// Indices outside the section table are Unknown.
func DifficultyForSection(i int) Difficulty {
	if i < 0 || i >= len(sectionDifficulties) {
		return Unknown
	}
	return sectionDifficulties[i]
}

// Entry is a single vocabulary word. It is immutable once built.
type Entry struct {
	term       string
	definition string
	example    string
	difficulty Difficulty
}

// NewEntry builds an Entry. No validation is done here; the parser decides
// what counts as a usable line.
func NewEntry(term, definition, example string, difficulty Difficulty) Entry {
	return Entry{
		term:       term,
		definition: definition,
		example:    example,
		difficulty: difficulty,
	}
}

func (e Entry) Term() string {
	return e.term
}

func (e Entry) Definition() string {
	return e.definition
}

func (e Entry) Example() string {
	return e.example
}

func (e Entry) Difficulty() Difficulty {
	return e.difficulty
}

// Less orders entries by term.
func (e Entry) Less(other Entry) bool {
	return e.term < other.term
}

// SameWord reports whether both entries describe the same term.
func (e Entry) SameWord(other Entry) bool {
	return e.term == other.term
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.term, e.difficulty)
}

// HTML renders the entry as a flash-card <article> fragment.
func (e Entry) HTML() string {
	term := textEscaper.Replace(e.term)
	difficulty := e.difficulty.String()
	definition := textEscaper.Replace(e.definition)
	example := textEscaper.Replace(e.example)

	var s strings.Builder
	s.Grow(len(term) + len(difficulty) + len(definition) + len(example) + 220)

	s.WriteString(`<article><div class="vocab-word"><div class="header"><h3 class="word">`)
	s.WriteString(term)
	s.WriteString(`:</h3><h5 class="difficulty"><sup>`)
	s.WriteString(difficulty)
	s.WriteString(`</sup></h5></div><h5 class="definition">`)
	s.WriteString(definition)
	s.WriteString(`</h5><p class="example">`)
	s.WriteString(example)
	s.WriteString(`.</p></div></article>`)

	return s.String()
}

// pkg/blacklist/blacklist.go
package blacklist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Blacklist holds terms that must never enter a deck, typically words
// that have already been mastered. Not safe for concurrent use.
type Blacklist struct {
	words []string
	index map[string]struct{}
}

func New(words ...string) *Blacklist {
	b := &Blacklist{
		index: make(map[string]struct{}),
	}
	b.Add(words...)
	return b
}

// Add appends words, keeping order and duplicates.
func (b *Blacklist) Add(words ...string) {
	for _, word := range words {
		b.words = append(b.words, word)
		b.index[word] = struct{}{}
	}
}

// Load appends every whitespace-separated token of the file at path.
// A missing file leaves the blacklist untouched and is not an error.
func (b *Blacklist) Load(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading blacklist file: %w", err)
	}

	b.Add(strings.Fields(string(content))...)
	return nil
}

// Contains reports an exact, case-sensitive match.
func (b *Blacklist) Contains(term string) bool {
	if b == nil {
		return false
	}
	_, exists := b.index[term]
	return exists
}

// Words returns a copy of the loaded tokens in load order.
func (b *Blacklist) Words() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.words...)
}

// Len counts tokens, duplicates included.
func (b *Blacklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}

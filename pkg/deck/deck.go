// pkg/deck/deck.go
package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/NivBraz/vocabdeck/pkg/blacklist"
	"github.com/NivBraz/vocabdeck/pkg/parser"
	"github.com/NivBraz/vocabdeck/pkg/vocab"
)

// ErrNotFound is returned by Remove when no entry has the requested term.
var ErrNotFound = errors.New("entry not found")

// Options configure a Deck. AllowDuplicates is fixed for the deck's lifetime.
type Options struct {
	AllowDuplicates bool
	Blacklist       *blacklist.Blacklist
	Parser          *parser.Parser
	Logger          *slog.Logger
}

// Deck is a deduplicating collection of vocabulary entries.
//
// Entries are stored once, in insertion order; the sorted view is derived
// on demand. A Deck is not safe for concurrent use.
type Deck struct {
	entries         []vocab.Entry
	terms           map[string]int
	allowDuplicates bool
	blacklist       *blacklist.Blacklist
	parser          *parser.Parser
	logger          *slog.Logger
}

func New(opts Options) *Deck {
	d := &Deck{
		terms:           make(map[string]int),
		allowDuplicates: opts.AllowDuplicates,
		blacklist:       opts.Blacklist,
		parser:          opts.Parser,
		logger:          opts.Logger,
	}
	if d.blacklist == nil {
		d.blacklist = blacklist.New()
	}
	if d.parser == nil {
		d.parser = parser.New()
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Open creates a deck, loads blacklistFile into its blacklist and then adds
// every entry of filename. Either path may be empty.
func Open(filename, blacklistFile string, opts Options) (*Deck, error) {
	d := New(opts)
	if blacklistFile != "" {
		if err := d.blacklist.Load(blacklistFile); err != nil {
			return nil, err
		}
	}
	if filename != "" {
		if _, err := d.AddFromFile(filename); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Insert adds e unless its term is blacklisted or, without AllowDuplicates,
// already present. It reports whether the deck changed.
func (d *Deck) Insert(e vocab.Entry) bool {
	if (!d.allowDuplicates && d.Contains(e.Term())) || d.blacklist.Contains(e.Term()) {
		return false
	}
	d.entries = append(d.entries, e)
	d.terms[e.Term()]++
	return true
}

// InsertAll inserts each entry independently; rejected entries are ignored.
func (d *Deck) InsertAll(entries []vocab.Entry) {
	for _, e := range entries {
		d.Insert(e)
	}
}

// Remove drops the first entry, in sorted order, whose term matches.
func (d *Deck) Remove(term string) error {
	i := slices.IndexFunc(d.entries, func(e vocab.Entry) bool {
		return e.Term() == term
	})
	if i < 0 {
		return fmt.Errorf("remove %q: %w", term, ErrNotFound)
	}

	d.entries = slices.Delete(d.entries, i, i+1)
	if d.terms[term]--; d.terms[term] == 0 {
		delete(d.terms, term)
	}
	return nil
}

func (d *Deck) Size() int {
	return len(d.entries)
}

func (d *Deck) Contains(term string) bool {
	return d.terms[term] > 0
}

// AddFromText parses content and inserts every candidate entry, returning
// how many were accepted.
func (d *Deck) AddFromText(content []byte) int {
	candidates := d.parser.ParseEntries(content)

	added := 0
	for _, e := range candidates {
		if d.Insert(e) {
			added++
		}
	}

	d.logger.Debug("parsed vocabulary text",
		slog.Int("candidates", len(candidates)),
		slog.Int("added", added),
		slog.Int("rejected", len(candidates)-added))

	return added
}

// AddFromFile reads the whole file before parsing it with AddFromText.
func (d *Deck) AddFromFile(filename string) (int, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("error reading vocabulary file: %w", err)
	}
	added := d.AddFromText(content)
	d.logger.Info("added words to dictionary", slog.String("file", filename), slog.Int("added", added))
	return added, nil
}

// Sorted returns the entries ordered by term. Entries sharing a term keep
// their insertion order.
func (d *Deck) Sorted() []vocab.Entry {
	sorted := slices.Clone(d.entries)
	slices.SortStableFunc(sorted, func(a, b vocab.Entry) int {
		return strings.Compare(a.Term(), b.Term())
	})
	return sorted
}

// Entries returns the unordered view. Callers must not rely on its order.
func (d *Deck) Entries() []vocab.Entry {
	return slices.Clone(d.entries)
}

func (d *Deck) Blacklist() *blacklist.Blacklist {
	return d.blacklist
}

func (d *Deck) AllowsDuplicates() bool {
	return d.allowDuplicates
}

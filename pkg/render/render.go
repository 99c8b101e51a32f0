// pkg/render/render.go
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/NivBraz/vocabdeck/pkg/deck"
	"github.com/NivBraz/vocabdeck/pkg/vocab"
)

const DefaultStylesheet = "card_grid_stylesheet.css"

// Renderer writes decks as static HTML flash-card pages.
type Renderer struct {
	stylesheet string
	rnd        *rand.Rand
	logger     *slog.Logger
}

type Option func(*Renderer)

func WithStylesheet(href string) Option {
	return func(r *Renderer) {
		if href != "" {
			r.stylesheet = href
		}
	}
}

// WithSeed fixes the shuffle used for random order output.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.rnd = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		stylesheet: DefaultStylesheet,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes a complete document with one card per entry, in the order given.
func (r *Renderer) Render(w io.Writer, entries []vocab.Entry) error {
	if _, err := fmt.Fprintf(w, `<html><head><link rel="stylesheet" href="%s"></head><body>`, html.EscapeString(r.stylesheet)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div id="content">`); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, e.HTML()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</div></body></html>`); err != nil {
		return err
	}
	return nil
}

// WriteFile renders d to path, shuffled when random is set and sorted by
// term otherwise. Any existing file at path is replaced.
func (r *Renderer) WriteFile(path string, d *deck.Deck, random bool) error {
	// An existing target is read once before being overwritten.
	if previous, err := os.ReadFile(path); err == nil {
		r.logger.Debug("overwriting existing output", slog.String("file", path), slog.Int("bytes", len(previous)))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading existing output: %w", err)
	}

	entries := d.Sorted()
	if random {
		entries = d.Entries()
		r.rnd.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, entries); err != nil {
		return fmt.Errorf("error rendering document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	r.logger.Info("wrote study set", slog.String("file", path), slog.Int("cards", len(entries)), slog.Bool("random", random))
	return nil
}

// CountCards parses a rendered page and counts its flash cards.
func CountCards(rd io.Reader) (int, error) {
	doc, err := goquery.NewDocumentFromReader(rd)
	if err != nil {
		return 0, fmt.Errorf("error parsing document: %w", err)
	}
	return doc.Find("#content > article").Length(), nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/NivBraz/vocabdeck/internal/config"
	"github.com/NivBraz/vocabdeck/internal/models"
	"github.com/NivBraz/vocabdeck/pkg/blacklist"
	"github.com/NivBraz/vocabdeck/pkg/deck"
	"github.com/NivBraz/vocabdeck/pkg/parser"
	"github.com/NivBraz/vocabdeck/pkg/render"
	"github.com/schollz/progressbar/v3"
)

// App represents the main application
type App struct {
	config   *config.Config
	deck     *deck.Deck
	renderer *render.Renderer
	logger   *slog.Logger
	progress io.Writer
	sources  []models.SourceResult
}

// New builds the deck from the blacklist and primary vocabulary file.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	bl := blacklist.New()
	if cfg.Input.BlacklistFile != "" {
		if err := bl.Load(cfg.Input.BlacklistFile); err != nil {
			return nil, fmt.Errorf("failed to load blacklist: %w", err)
		}
		logger.Debug("blacklist loaded", slog.String("file", cfg.Input.BlacklistFile), slog.Int("words", bl.Len()))
	}

	p := parser.New(
		parser.WithMinTermLength(cfg.WordProcessing.MinWordLength),
		parser.WithSectionMarker(cfg.WordProcessing.SectionMarker),
	)

	d := deck.New(deck.Options{
		AllowDuplicates: cfg.Deck.AllowDuplicates,
		Blacklist:       bl,
		Parser:          p,
		Logger:          logger,
	})

	rendererOpts := []render.Option{
		render.WithStylesheet(cfg.Output.Stylesheet),
		render.WithLogger(logger),
	}
	if cfg.Output.Seed != 0 {
		rendererOpts = append(rendererOpts, render.WithSeed(cfg.Output.Seed))
	}

	a := &App{
		config:   cfg,
		deck:     d,
		renderer: render.New(rendererOpts...),
		logger:   logger,
		progress: io.Discard,
	}
	if cfg.Output.ShowProgress {
		a.progress = os.Stderr
	}

	if cfg.Input.PrimaryFile != "" {
		if err := a.addSource(cfg.Input.PrimaryFile); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Run merges the remaining vocabulary files and writes the study set.
func (a *App) Run(ctx context.Context) (*models.Result, error) {
	startTime := time.Now()

	if err := a.mergeSources(ctx); err != nil {
		return nil, err
	}

	output := a.config.Output.File
	if err := a.renderer.WriteFile(output, a.deck, a.config.Output.RandomOrder); err != nil {
		return nil, fmt.Errorf("failed to write study set: %w", err)
	}

	cards, err := countCards(output)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		Sources: a.sources,
		Output:  output,
	}
	result.Stats.TotalWords = a.deck.Size()
	result.Stats.Blacklisted = a.deck.Blacklist().Len()
	result.Stats.Cards = cards
	result.Stats.TimeElapsed = int(time.Since(startTime).Milliseconds())

	if cards != result.Stats.TotalWords {
		a.logger.Warn("card count does not match deck size", slog.Int("cards", cards), slog.Int("words", result.Stats.TotalWords))
	}

	return result, nil
}

// Deck exposes the collection built so far.
func (a *App) Deck() *deck.Deck {
	return a.deck
}

func (a *App) mergeSources(ctx context.Context) error {
	if len(a.config.Input.MergeFiles) == 0 {
		return nil
	}

	bar := progressbar.NewOptions(len(a.config.Input.MergeFiles),
		progressbar.OptionSetWriter(a.progress),
		progressbar.OptionSetDescription("Merging vocabulary files..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, file := range a.config.Input.MergeFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.addSource(file); err != nil {
			return err
		}
		bar.Add(1)
	}
	return bar.Finish()
}

func (a *App) addSource(file string) error {
	added, err := a.deck.AddFromFile(file)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", file, err)
	}
	a.sources = append(a.sources, models.SourceResult{File: file, Added: added})
	return nil
}

func countCards(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to reopen study set: %w", err)
	}
	defer f.Close()
	return render.CountCards(f)
}

// WriteSummary prints the per-file and blacklist summary lines.
func WriteSummary(w io.Writer, result *models.Result) {
	for _, src := range result.Sources {
		fmt.Fprintf(w, "added %d words to dictionary\n", src.Added)
	}
	fmt.Fprintf(w, "disregarded %d blacklisted words.\n", result.Stats.Blacklisted)
}

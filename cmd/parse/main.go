// Command parse reads an item copied from the game client and prints the
// recognised mods as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/config"
	"github.com/antonguzun/lazy-crafter/internal/craft"
	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/estimation"
	"github.com/antonguzun/lazy-crafter/internal/gamedata"
	"github.com/antonguzun/lazy-crafter/internal/parser"
	"github.com/antonguzun/lazy-crafter/internal/translation"
)

// maxInputBytes bounds a single item text; real items are a few hundred bytes
const maxInputBytes = 64 << 10

type options struct {
	dataDir  string
	input    string
	estimate bool
	summary  bool
	level    string
}

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}

	opts := options{}
	flag.StringVar(&opts.dataDir, "data", cfg.DataDir, "directory holding the game data tables")
	flag.BoolVar(&opts.estimate, "estimate", false, "estimate the chance of rolling the recognised mods")
	flag.StringVar(&opts.level, "level", "", "item level cap for the estimate, defaults to the item's own level")
	flag.BoolVar(&opts.summary, "summary", false, "print a readable summary instead of JSON")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: parse [flags] [item.txt]")
		fmt.Fprintln(flag.CommandLine.Output(), "Reads the item from stdin when no file is given.")
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.input = flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

// report is what the command prints in JSON mode
type report struct {
	Item             *domain.ParsedItem `json:"item"`
	Estimation       *domain.Estimation `json:"estimation,omitempty"`
	ExpectedAttempts float64            `json:"expected_attempts,omitempty"`
}

func run(ctx context.Context, opts options, stdin io.Reader, out io.Writer) error {
	text, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	svc, err := buildService(ctx, opts.dataDir)
	if err != nil {
		return err
	}

	item, err := svc.ParseItem(ctx, text)
	if err != nil {
		return err
	}

	rep := report{Item: item}
	if opts.estimate {
		est, err := estimateItem(ctx, svc, item, opts.level)
		if err != nil {
			return err
		}
		rep.Estimation = est
		rep.ExpectedAttempts = est.ExpectedAttempts()
	}

	if opts.summary {
		return writeSummary(out, rep)
	}
	return writeJSON(out, rep)
}

func readInput(path string, stdin io.Reader) (string, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open item file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read item: %w", err)
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("%w: item text is larger than %d bytes", domain.ErrInvalidInput, maxInputBytes)
	}
	if len(data) == 0 {
		return "", errors.New("no item text given")
	}
	return string(data), nil
}

func buildService(ctx context.Context, dataDir string) (craft.Service, error) {
	tables, err := gamedata.NewLoader(gamedata.FilesIn(dataDir)).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game data: %w", err)
	}
	cat, err := catalog.New(tables, translation.NewResolver(tables.Translations))
	if err != nil {
		return nil, err
	}
	p, err := parser.New(cat)
	if err != nil {
		return nil, err
	}
	return craft.NewService(cat, p, estimation.New(cat), nil), nil
}

// estimateItem treats every recognised mod as a target on the item's own base
func estimateItem(ctx context.Context, svc craft.Service, item *domain.ParsedItem, rawLevel string) (*domain.Estimation, error) {
	q := domain.ModsQuery{ItemBase: item.ItemBaseName, ItemLevelCap: item.ItemLevel}
	if rawLevel != "" {
		level, err := craft.ParseItemLevel(rawLevel)
		if err != nil {
			return nil, err
		}
		q.ItemLevelCap = level
	}

	pool, err := svc.FindMods(ctx, q)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]domain.ModItem, len(pool))
	for _, it := range pool {
		byKey[it.ModKey] = it
	}

	targets := make([]domain.ModItem, 0, len(item.Mods))
	for _, key := range item.Mods {
		it, ok := byKey[key]
		if !ok {
			// Mods outside the pool (essences, fractured) cannot be rolled by chaos orbs
			PrintWarning("skipping %s: it does not roll on %s at level %d", key, q.ItemBase, q.ItemLevelCap)
			continue
		}
		targets = append(targets, it)
	}
	return svc.Estimate(ctx, q, targets)
}

package ordering

import (
	"context"
	"math/rand/v2"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	"github.com/alexisbeaulieu97/rto/internal/logger"
	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

// DefaultBatchSize is the number of shuffles tried before the search gives up.
const DefaultBatchSize = 1000

// Result is an accepted ordering.
type Result struct {
	Ordering []catalog.Item
	// Attempts counts every shuffle tried, including the accepted one.
	Attempts int
}

// Generator searches for a valid ordering by repeated uniform shuffling.
// A single batch is tried; running out of attempts is a terminal failure.
type Generator struct {
	batchSize int
	rng       *rand.Rand
	log       *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBatchSize sets the attempt budget. Values below 1 are ignored.
func WithBatchSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.batchSize = n
		}
	}
}

// WithRand injects the random source, typically a seeded one in tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed makes the search reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger attaches a logger for search progress.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// NewGenerator builds a Generator with a non-deterministic source and the
// default batch size unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		batchSize: DefaultBatchSize,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BatchSize returns the configured attempt budget.
func (g *Generator) BatchSize() int {
	return g.batchSize
}

// Search shuffles a private copy of items until IsValid accepts it or the
// batch is spent. Cancellation is honoured between trials, never inside one.
func (g *Generator) Search(ctx context.Context, items []catalog.Item) (*Result, error) {
	if len(items) == 0 {
		return nil, rtoerrors.ErrCatalogEmpty
	}

	log := g.log.WithFields(map[string]any{"items": len(items), "budget": g.batchSize})
	log.Debug("searching for a valid ordering")

	ordering := append([]catalog.Item(nil), items...)
	for attempt := 1; attempt <= g.batchSize; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g.Shuffle(ordering)
		if IsValid(ordering) {
			log.WithFields(map[string]any{"attempts": attempt}).Debug("valid ordering found")
			return &Result{Ordering: ordering, Attempts: attempt}, nil
		}
	}

	log.Warn("attempt budget exhausted")
	return nil, rtoerrors.NewSearchExhaustedError(g.batchSize)
}

// Shuffle permutes items in place with a Fisher-Yates shuffle.
func (g *Generator) Shuffle(items []catalog.Item) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

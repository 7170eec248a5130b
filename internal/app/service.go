// Package app wires catalog loading, the ordering search, the report and the
// splits writer into the operations exposed by the command line.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	"github.com/alexisbeaulieu97/rto/internal/config"
	"github.com/alexisbeaulieu97/rto/internal/logger"
	"github.com/alexisbeaulieu97/rto/internal/ordering"
	"github.com/alexisbeaulieu97/rto/internal/report"
	"github.com/alexisbeaulieu97/rto/internal/splits"
	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

// Service runs generation and catalog checks.
type Service struct {
	log *logger.Logger
}

// NewService constructs a Service. A nil logger discards output.
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{log: log}
}

// GenerateRequest configures one generation run.
type GenerateRequest struct {
	Settings config.Settings
	Out      io.Writer
	Color    bool
	// Options are appended after the ones derived from Settings, so tests can
	// inject a random source.
	Options []ordering.Option
}

// GenerateOutcome describes a successful run.
type GenerateOutcome struct {
	Result *ordering.Result
	// Path is empty for dry runs.
	Path string
}

// Generate loads the catalog, searches for a valid ordering, prints the
// ordering with its explanations and writes the splits file.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateOutcome, error) {
	cat, err := s.loadCatalog(req.Settings.Catalog)
	if err != nil {
		return nil, err
	}

	opts := []ordering.Option{
		ordering.WithBatchSize(req.Settings.BatchSize),
		ordering.WithLogger(s.log),
	}
	if req.Settings.Seed != 0 {
		opts = append(opts, ordering.WithSeed(req.Settings.Seed))
	}
	opts = append(opts, req.Options...)

	result, err := ordering.NewGenerator(opts...).Search(ctx, cat.Items())
	if err != nil {
		var exhausted *rtoerrors.SearchExhaustedError
		if errors.As(err, &exhausted) {
			s.diagnose(cat)
		}
		return nil, err
	}

	printer := report.NewPrinter(req.Out, req.Color)
	printer.Ordering(result.Ordering)
	printer.Explanations(ordering.Explain(result.Ordering, printer.Style))

	outcome := &GenerateOutcome{Result: result}
	if req.Settings.DryRun {
		printer.TotalCost(result.Ordering)
		return outcome, nil
	}

	path, err := splits.Write(req.Settings.OutputDir, result.Ordering, req.Settings.SplitsOptions())
	if err != nil {
		s.log.Error(err, "failed to write splits file")
		return nil, err
	}
	s.log.WithFields(map[string]any{"path": path, "attempts": result.Attempts}).Info("splits file written")

	printer.Written(path)
	outcome.Path = path
	return outcome, nil
}

// CheckRequest configures a satisfiability check.
type CheckRequest struct {
	CatalogPath string
	Out         io.Writer
	Color       bool
}

// Check reports whether any ordering of the catalog satisfies every formula.
// An unsatisfiable catalog yields ErrUnsatisfiable after the report is printed.
func (s *Service) Check(ctx context.Context, req CheckRequest) (*ordering.Feasibility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cat, err := s.loadCatalog(req.CatalogPath)
	if err != nil {
		return nil, err
	}

	result, err := ordering.CheckFeasible(cat.Items())
	if err != nil {
		return nil, err
	}

	printer := report.NewPrinter(req.Out, req.Color)
	printer.Feasibility(result)
	printer.UnknownReferences(cat.UnknownReferences())

	if !result.Satisfiable {
		return result, rtoerrors.ErrUnsatisfiable
	}
	return result, nil
}

func (s *Service) loadCatalog(path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	for _, ref := range cat.UnknownReferences() {
		s.log.WithFields(map[string]any{"item": ref.Item, "target": ref.Target}).
			Warn("prerequisite references an item missing from the catalog")
	}
	return cat, nil
}

// diagnose tells apart an unlucky search from a catalog no ordering can satisfy.
func (s *Service) diagnose(cat *catalog.Catalog) {
	if cat.Len() > ordering.MaxFeasibilityItems {
		return
	}

	result, err := ordering.CheckFeasible(cat.Items())
	if err != nil {
		s.log.Error(err, "feasibility check failed")
		return
	}
	if result.Satisfiable {
		s.log.Info("a valid ordering exists; running again may succeed")
		return
	}
	s.log.Warn("no ordering can satisfy every prerequisite; check the catalog for contradictions")
}

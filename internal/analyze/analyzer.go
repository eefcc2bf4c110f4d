// Package analyze runs normalization over many relations at once.
package analyze

import (
	"context"
	"fmt"
	"runtime"

	"github.com/tordrt/fdnorm/internal/fd"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of normalizing one relation
type Report struct {
	Relation fd.Relation
	Cover    fd.FDSet
	Key      fd.AttributeSet
	// Decomposition holds the synthesized children, named <relation>_<n>
	Decomposition []fd.Relation
}

// AlreadyNormalized reports whether synthesis kept the relation whole
func (r Report) AlreadyNormalized() bool {
	return len(r.Decomposition) == 1 &&
		r.Decomposition[0].Schema.Attributes().Equal(r.Relation.Schema.Attributes())
}

// Analyzer normalizes relations concurrently. Relations share no state, so
// each one is handled by an independent goroutine.
type Analyzer struct {
	logger  *zap.Logger
	workers int
}

// NewAnalyzer creates an analyzer. A nil logger disables logging and a
// non-positive worker count means one worker per CPU.
func NewAnalyzer(logger *zap.Logger, workers int) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Analyzer{logger: logger, workers: workers}
}

// Analyze returns one report per relation, in input order
func (a *Analyzer) Analyze(ctx context.Context, relations []fd.Relation) ([]Report, error) {
	reports := make([]Report, len(relations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, rel := range relations {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := a.AnalyzeRelation(rel)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Info("analysis complete", zap.Int("relations", len(relations)))
	return reports, nil
}

// AnalyzeRelation computes the cover, a candidate key and the synthesized
// decomposition of one relation
func (a *Analyzer) AnalyzeRelation(rel fd.Relation) (Report, error) {
	cover := rel.Schema.MinimalCover()
	key := fd.MinimalKey(rel.Schema.Attributes(), cover)

	children, err := fd.DecomposeRelation(rel)
	if err != nil {
		return Report{}, fmt.Errorf("failed to decompose: %w", err)
	}
	for i := range children {
		children[i].Name = fmt.Sprintf("%s_%d", rel.Name, i+1)
	}

	a.logger.Debug("relation analyzed",
		zap.String("relation", rel.Name),
		zap.Int("attributes", rel.Schema.Attributes().Len()),
		zap.Int("dependencies", rel.Schema.Dependencies().Len()),
		zap.Int("cover", cover.Len()),
		zap.Stringer("key", key),
		zap.Int("children", len(children)),
	)

	return Report{
		Relation:      rel,
		Cover:         cover,
		Key:           key,
		Decomposition: children,
	}, nil
}

package projection

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vanshika/finsight/backend/internal/domain"
)

// Engine computes the three projections for a profile snapshot. The zero
// value is ready to use.
type Engine struct{}

// NewEngine returns an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compute runs the retirement, investment and risk calculators concurrently.
// The profile is passed by value so no calculator can observe another's work.
// It only fails when ctx is done before the calculators finish.
func (e *Engine) Compute(ctx context.Context, p domain.Profile) (domain.Projections, error) {
	var out domain.Projections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Retirement = Retirement(p)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Investment = Investment(p)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Risk = Risk(p)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Projections{}, err
	}
	return out, nil
}

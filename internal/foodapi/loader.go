package foodapi

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/logging"
)

// LoadCatalog fetches the catalog and projects it into selectable summaries.
// Failures are logged and yield an empty, non-nil slice.
func LoadCatalog(ctx context.Context, src CatalogSource) []food.Summary {
	log := logging.FromContext(ctx)

	records, err := src.ListFoods(ctx)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "catalog").
			Err(err).
			Msg("failed to load food catalog")
		return []food.Summary{}
	}

	summaries := food.Summarize(records)
	log.Debug().
		Ctx(ctx).
		Str("component", "catalog").
		Int("count", len(summaries)).
		Msg("food catalog loaded")
	return summaries
}

// LoadDetail fetches a single food. Failures are logged and yield nil.
func LoadDetail(ctx context.Context, src DetailSource, identifier string) *food.Record {
	log := logging.FromContext(ctx)

	record, err := src.GetFood(ctx, identifier)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "detail").
			Str("identifier", identifier).
			Err(err).
			Msg("failed to load food")
		return nil
	}
	return record
}

// FetchResult is the outcome of one fetch issued by FetchMany.
type FetchResult struct {
	Identifier string
	Record     *food.Record
	Err        error
}

// FetchMany fetches several foods concurrently, at most limit at a time
// (runtime.NumCPU when limit <= 0). Results are returned in identifier order
// and a failure for one identifier never cancels the others.
func FetchMany(ctx context.Context, src DetailSource, identifiers []string, limit int) []FetchResult {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]FetchResult, len(identifiers))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range identifiers {
		g.Go(func() error {
			record, err := src.GetFood(gCtx, id)
			results[i] = FetchResult{Identifier: id, Record: record, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

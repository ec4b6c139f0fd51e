// Package cache serves ambient AI content for cities, avoiding redundant
// model calls with a 24-hour freshness window. Storage is an append-only log
// of timestamped artifacts with freshest-wins reads: two concurrent misses
// may both generate and both write, and either result is an acceptable
// answer once written. That race is tolerated, never serialized.
package cache

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geocities-ai/backend/internal/ai"
	"github.com/geocities-ai/backend/internal/models"
	"github.com/geocities-ai/backend/internal/prompt"
)

// Number of recent pages sampled into ambient prompts, per kind.
const (
	publicSquareSample = 10
	newsletterSample   = 20
)

// ArtifactStore is the slice of the document store the cache needs.
type ArtifactStore interface {
	LatestArtifact(ctx context.Context, cityID, kind string) (*models.Artifact, error)
	InsertArtifact(ctx context.Context, cityID, kind, content string) (*models.Artifact, error)
}

// PageSampler supplies recent pages for prompt assembly.
type PageSampler interface {
	RecentPageSummaries(ctx context.Context, cityID string, limit int) ([]models.PageSummary, error)
}

// Generator answers ambient-content requests from cache when possible and
// from the language model otherwise.
type Generator struct {
	artifacts ArtifactStore
	pages     PageSampler
	model     ai.TextGenerator
	logger    *zap.Logger
}

func NewGenerator(artifacts ArtifactStore, pages PageSampler, model ai.TextGenerator, logger *zap.Logger) *Generator {
	return &Generator{
		artifacts: artifacts,
		pages:     pages,
		model:     model,
		logger:    logger,
	}
}

// Generate returns the ambient content of the given kind for a city and
// whether it was served from cache. A cache lookup failure is treated as a
// miss, not an error: generation is the fallback. A write-back failure is
// logged and the fresh text is still returned; failed attempts never poison
// the cache because only successful generations are stored.
func (g *Generator) Generate(ctx context.Context, kind string, city *models.City) (string, bool, error) {
	cached, err := g.getCached(ctx, city.ID, kind)
	if err == nil && cached != "" {
		return cached, true, nil
	}

	recent, err := g.sampleForKind(ctx, city.ID, kind)
	if err != nil {
		return "", false, err
	}

	text, err := g.model.Generate(ctx, prompt.ForKind(kind, city, recent))
	if err != nil {
		return "", false, &models.GenerationError{Op: kind, Err: err}
	}

	if _, err := g.artifacts.InsertArtifact(ctx, city.ID, kind, text); err != nil {
		g.logger.Warn("failed to cache generation",
			zap.String("city_id", city.ID),
			zap.String("kind", kind),
			zap.Error(err))
	}

	return text, false, nil
}

// Snapshot is the read-only view over all three kinds, used by the
// presentation layer to avoid triggering generation. The kinds are fetched
// concurrently; a lookup failure shows up as absent.
type Snapshot struct {
	PublicSquare *string `json:"publicSquare"`
	Newsletter   *string `json:"newsletter"`
	Radio        *string `json:"radio"`
}

func (g *Generator) GetCachedArtifacts(ctx context.Context, cityID string) Snapshot {
	var snap Snapshot
	targets := map[string]**string{
		models.KindPublicSquare: &snap.PublicSquare,
		models.KindNewsletter:   &snap.Newsletter,
		models.KindRadio:        &snap.Radio,
	}

	eg, ctx := errgroup.WithContext(ctx)
	for kind, target := range targets {
		eg.Go(func() error {
			content, err := g.getCached(ctx, cityID, kind)
			if err == nil && content != "" {
				*target = &content
			}
			return nil
		})
	}
	eg.Wait()

	return snap
}

func (g *Generator) getCached(ctx context.Context, cityID, kind string) (string, error) {
	artifact, err := g.artifacts.LatestArtifact(ctx, cityID, kind)
	if err != nil {
		g.logger.Warn("cache lookup failed, falling through to generation",
			zap.String("city_id", cityID),
			zap.String("kind", kind),
			zap.Error(err))
		return "", err
	}
	if artifact == nil {
		return "", nil
	}
	return artifact.Content, nil
}

func (g *Generator) sampleForKind(ctx context.Context, cityID, kind string) ([]models.PageSummary, error) {
	switch kind {
	case models.KindPublicSquare:
		return g.pages.RecentPageSummaries(ctx, cityID, publicSquareSample)
	case models.KindNewsletter:
		return g.pages.RecentPageSummaries(ctx, cityID, newsletterSample)
	default:
		// Radio prompts are built from the city vibe alone.
		return nil, nil
	}
}

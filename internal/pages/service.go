// Package pages owns the page lifecycle: creation, update, and the
// asynchronous provenance-tagging pipeline. A self-written page is visible
// immediately in the pending state; classification runs out of band and its
// only observable effect is a later tag mutation. The creating request never
// waits on it.
package pages

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/ai"
	"github.com/geocities-ai/backend/internal/classify"
	"github.com/geocities-ai/backend/internal/models"
	"github.com/geocities-ai/backend/internal/prompt"
	"github.com/geocities-ai/backend/internal/slug"
)

const (
	maxPagesPerCity = 100

	// tagWriteTimeout bounds the verdict write that follows classification.
	tagWriteTimeout = 10 * time.Second
)

// Store is the slice of the document store the lifecycle needs.
type Store interface {
	GetCityByID(ctx context.Context, id string) (*models.City, error)
	InsertPage(ctx context.Context, page *models.Page) error
	GetPage(ctx context.Context, cityID, pageID string) (*models.Page, error)
	ListPages(ctx context.Context, cityID string, limit int) ([]models.Page, error)
	CountPages(ctx context.Context, cityID string) (int, error)
	PageSlugExists(ctx context.Context, cityID, titleSlug string) (bool, error)
	SetPageTag(ctx context.Context, cityID, pageID, tag string, confidence *float64) error
	UpdatePage(ctx context.Context, page *models.Page) error
	DeletePage(ctx context.Context, cityID, pageID string) error
}

// Classifier produces a provenance verdict for submitted content.
type Classifier interface {
	Classify(ctx context.Context, content string) (classify.Verdict, error)
}

type Service struct {
	store           Store
	model           ai.TextGenerator
	detector        Classifier
	logger          *zap.Logger
	classifyTimeout time.Duration

	detections sync.WaitGroup
}

func NewService(store Store, model ai.TextGenerator, detector Classifier, classifyTimeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:           store,
		model:           model,
		detector:        detector,
		logger:          logger,
		classifyTimeout: classifyTimeout,
	}
}

type CreatePageInput struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	ContentMode string `json:"content_mode"`
	Prompt      string `json:"prompt"`
	Content     string `json:"content"`
}

// CreatePage validates and persists a new page.
//
// In ai-generate mode the body is generated synchronously before anything is
// stored: there is no page to show until generation succeeds, and the tag is
// ai-generated from the first write with no pending state ever observable.
//
// In write-myself mode the literal payload is stored immediately with the
// pending tag, the page is returned, and classification is scheduled in the
// background.
func (s *Service) CreatePage(ctx context.Context, cityID string, in CreatePageInput) (*models.Page, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	city, err := s.store.GetCityByID(ctx, cityID)
	if err != nil {
		return nil, err
	}

	titleSlug := slug.Make(in.Title)
	exists, err := s.store.PageSlugExists(ctx, cityID, titleSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateTitle
	}

	// Check-then-insert: not atomic with the insert below. Accepted; the
	// unique index on (city_id, title_slug) backstops duplicate titles.
	count, err := s.store.CountPages(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if count >= maxPagesPerCity {
		return nil, models.ErrPageLimit
	}

	page := &models.Page{
		CityID:      cityID,
		Title:       in.Title,
		TitleSlug:   titleSlug,
		Type:        in.Type,
		ContentMode: in.ContentMode,
	}

	if in.ContentMode == models.ModeAIGenerate {
		content, err := s.model.Generate(ctx, prompt.PageContent(city, in.Title, in.Type, in.Prompt))
		if err != nil {
			return nil, &models.GenerationError{Op: "page content", Err: err}
		}
		originalPrompt := in.Prompt
		page.Content = content
		page.ContentTag = models.TagAIGenerated
		page.OriginalPrompt = &originalPrompt
	} else {
		page.Content = in.Content
		page.ContentTag = models.TagPending
	}

	if err := s.store.InsertPage(ctx, page); err != nil {
		return nil, err
	}

	if page.ContentMode == models.ModeWriteMyself {
		s.detections.Add(1)
		go s.runDetection(page.CityID, page.ID, page.Content)
	}

	return page, nil
}

// runDetection classifies content and records the verdict. Failures are
// absorbed: the verdict downgrades to user-written with no confidence, and
// nothing propagates past this goroutine. A page deleted before the verdict
// lands makes the tag update a silent no-op.
func (s *Service) runDetection(cityID, pageID, content string) {
	defer s.detections.Done()

	classifyCtx, cancel := context.WithTimeout(context.Background(), s.classifyTimeout)
	defer cancel()

	verdict, err := s.detector.Classify(classifyCtx, content)
	if err != nil {
		s.logger.Warn("AI detection failed, defaulting to user-written",
			zap.String("page_id", pageID),
			zap.Error(err))
		verdict = classify.DefaultVerdict()
	}

	// The classify deadline may already have fired; the verdict write gets
	// its own context so a timed-out classification still leaves the page
	// tagged user-written instead of stuck pending.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), tagWriteTimeout)
	defer cancelWrite()

	if err := s.store.SetPageTag(writeCtx, cityID, pageID, verdict.Tag, verdict.Confidence); err != nil {
		s.logger.Warn("failed to record detection verdict",
			zap.String("page_id", pageID),
			zap.Error(err))
		return
	}

	s.logger.Info("page provenance resolved",
		zap.String("page_id", pageID),
		zap.String("tag", verdict.Tag),
		zap.Float64p("confidence", verdict.Confidence))
}

// Drain blocks until all scheduled classifications have resolved. Called on
// shutdown so in-flight verdicts are not lost with the process.
func (s *Service) Drain() {
	s.detections.Wait()
}

type UpdatePageInput struct {
	Title  *string `json:"title"`
	Prompt *string `json:"prompt"`
}

// UpdatePage renames a page and/or regenerates its body from a new
// instruction. Content mode is fixed at creation: regeneration is only valid
// for ai-generate pages and leaves the ai-generated tag in place.
func (s *Service) UpdatePage(ctx context.Context, cityID, pageID string, in UpdatePageInput) (*models.Page, error) {
	page, err := s.store.GetPage(ctx, cityID, pageID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		newSlug := slug.Make(*in.Title)
		if newSlug != page.TitleSlug {
			exists, err := s.store.PageSlugExists(ctx, cityID, newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, models.ErrDuplicateTitle
			}
		}
		page.Title = *in.Title
		page.TitleSlug = newSlug
	}

	if in.Prompt != nil {
		if page.ContentMode != models.ModeAIGenerate {
			return nil, &models.ValidationError{Field: "prompt", Reason: "content can only be regenerated for AI-generated pages"}
		}
		if err := validatePrompt(*in.Prompt); err != nil {
			return nil, err
		}

		city, err := s.store.GetCityByID(ctx, cityID)
		if err != nil {
			return nil, err
		}

		content, err := s.model.Generate(ctx, prompt.PageContent(city, page.Title, page.Type, *in.Prompt))
		if err != nil {
			return nil, &models.GenerationError{Op: "page content", Err: err}
		}

		page.Content = content
		page.OriginalPrompt = in.Prompt
	}

	if err := s.store.UpdatePage(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *Service) GetPage(ctx context.Context, cityID, pageID string) (*models.Page, error) {
	return s.store.GetPage(ctx, cityID, pageID)
}

// ListPages returns a city's pages, newest first, capped at the page limit.
func (s *Service) ListPages(ctx context.Context, cityID string) ([]models.Page, error) {
	if _, err := s.store.GetCityByID(ctx, cityID); err != nil {
		return nil, err
	}
	return s.store.ListPages(ctx, cityID, maxPagesPerCity)
}

func (s *Service) DeletePage(ctx context.Context, cityID, pageID string) error {
	return s.store.DeletePage(ctx, cityID, pageID)
}

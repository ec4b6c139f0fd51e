// Package cities manages the tenant namespaces that own pages and cached
// generations.
package cities

import (
	"context"
	"fmt"
	"regexp"

	"github.com/geocities-ai/backend/internal/models"
	"github.com/geocities-ai/backend/internal/slug"
)

// Store is the slice of the document store the city service needs.
type Store interface {
	CreateCity(ctx context.Context, city *models.City) error
	ListCities(ctx context.Context) ([]models.City, error)
	GetCityByID(ctx context.Context, id string) (*models.City, error)
	UpdateCity(ctx context.Context, city *models.City) error
	DeleteCity(ctx context.Context, id string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CityInput struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
	Vibe  string `json:"vibe"`
}

func (s *Service) Create(ctx context.Context, in CityInput) (*models.City, error) {
	if err := validateCity(in); err != nil {
		return nil, err
	}

	city := &models.City{
		Name:     in.Name,
		NameSlug: slug.Make(in.Name),
		Theme:    in.Theme,
		Vibe:     in.Vibe,
	}

	if err := s.store.CreateCity(ctx, city); err != nil {
		return nil, err
	}

	return city, nil
}

func (s *Service) List(ctx context.Context) ([]models.City, error) {
	return s.store.ListCities(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.City, error) {
	return s.store.GetCityByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in CityInput) (*models.City, error) {
	if err := validateCity(in); err != nil {
		return nil, err
	}

	city, err := s.store.GetCityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	city.Name = in.Name
	city.NameSlug = slug.Make(in.Name)
	city.Theme = in.Theme
	city.Vibe = in.Vibe

	if err := s.store.UpdateCity(ctx, city); err != nil {
		return nil, err
	}

	return city, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteCity(ctx, id)
}

var unsafeMarkup = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onclick=|onload=`)

func validateCity(in CityInput) error {
	if err := validateField("name", in.Name, 3, 50); err != nil {
		return err
	}
	if err := validateField("theme", in.Theme, 3, 30); err != nil {
		return err
	}
	if err := validateField("vibe", in.Vibe, 3, 30); err != nil {
		return err
	}

	if unsafeMarkup.MatchString(in.Name) || unsafeMarkup.MatchString(in.Theme) || unsafeMarkup.MatchString(in.Vibe) {
		return &models.ValidationError{Field: "input", Reason: "invalid characters detected in input"}
	}

	return nil
}

func validateField(field, value string, minLen, maxLen int) error {
	if len(value) < minLen || len(value) > maxLen {
		return &models.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%s must be between %d and %d characters", field, minLen, maxLen),
		}
	}
	return nil
}

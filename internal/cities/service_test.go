package cities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocities-ai/backend/internal/models"
)

type memStore struct {
	cities map[string]*models.City
	nextID int
}

func newMemStore() *memStore {
	return &memStore{cities: map[string]*models.City{}}
}

func (s *memStore) CreateCity(_ context.Context, city *models.City) error {
	for _, c := range s.cities {
		if c.NameSlug == city.NameSlug {
			return models.ErrDuplicateCity
		}
	}
	s.nextID++
	city.ID = string(rune('a' + s.nextID))
	copied := *city
	s.cities[city.ID] = &copied
	return nil
}

func (s *memStore) ListCities(context.Context) ([]models.City, error) {
	out := []models.City{}
	for _, c := range s.cities {
		out = append(out, *c)
	}
	return out, nil
}

func (s *memStore) GetCityByID(_ context.Context, id string) (*models.City, error) {
	c, ok := s.cities[id]
	if !ok {
		return nil, models.ErrCityNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *memStore) UpdateCity(_ context.Context, city *models.City) error {
	if _, ok := s.cities[city.ID]; !ok {
		return models.ErrCityNotFound
	}
	copied := *city
	s.cities[city.ID] = &copied
	return nil
}

func (s *memStore) DeleteCity(_ context.Context, id string) error {
	if _, ok := s.cities[id]; !ok {
		return models.ErrCityNotFound
	}
	delete(s.cities, id)
	return nil
}

func TestCreateCity(t *testing.T) {
	svc := NewService(newMemStore())

	city, err := svc.Create(context.Background(), CityInput{
		Name:  "Silicon Valley",
		Theme: "tech",
		Vibe:  "futuristic",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, city.ID)
	assert.Equal(t, "silicon-valley", city.NameSlug)
}

func TestCreateCityDuplicateNormalizedName(t *testing.T) {
	svc := NewService(newMemStore())

	_, err := svc.Create(context.Background(), CityInput{Name: "Silicon Valley", Theme: "tech", Vibe: "futuristic"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CityInput{Name: "silicon-valley!", Theme: "tech", Vibe: "calm"})
	assert.ErrorIs(t, err, models.ErrDuplicateCity)
}

func TestCityValidation(t *testing.T) {
	tests := []struct {
		name string
		in   CityInput
	}{
		{"name too short", CityInput{Name: "ab", Theme: "tech", Vibe: "futuristic"}},
		{"name too long", CityInput{Name: string(make([]byte, 51)), Theme: "tech", Vibe: "futuristic"}},
		{"theme too short", CityInput{Name: "Valid Name", Theme: "ab", Vibe: "futuristic"}},
		{"vibe too long", CityInput{Name: "Valid Name", Theme: "tech", Vibe: string(make([]byte, 31))}},
		{"script tag in name", CityInput{Name: "x<script>alert(1)", Theme: "tech", Vibe: "futuristic"}},
		{"event handler in vibe", CityInput{Name: "Valid Name", Theme: "tech", Vibe: "x onerror=hack"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemStore())
			_, err := svc.Create(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err), "want validation error, got %v", err)
		})
	}
}

func TestUpdateCity(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	city, err := svc.Create(context.Background(), CityInput{Name: "Silicon Valley", Theme: "tech", Vibe: "futuristic"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), city.ID, CityInput{Name: "Sunset Boulevard", Theme: "art", Vibe: "creative"})
	require.NoError(t, err)

	assert.Equal(t, "sunset-boulevard", updated.NameSlug)
	assert.Equal(t, "art", updated.Theme)
}

func TestUpdateCityNotFound(t *testing.T) {
	svc := NewService(newMemStore())

	_, err := svc.Update(context.Background(), "ghost", CityInput{Name: "Valid Name", Theme: "tech", Vibe: "calm"})
	assert.ErrorIs(t, err, models.ErrCityNotFound)
}

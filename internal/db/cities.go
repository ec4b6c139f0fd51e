package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geocities-ai/backend/internal/models"
)

const uniqueViolation = "23505"

func (db *DB) CreateCity(ctx context.Context, city *models.City) error {
	city.ID = uuid.NewString()

	query := `
        INSERT INTO cities (id, name, name_slug, theme, vibe)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `

	err := db.Pool.QueryRow(ctx, query,
		city.ID,
		city.Name,
		city.NameSlug,
		city.Theme,
		city.Vibe,
	).Scan(&city.CreatedAt, &city.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateCity
	}

	return err
}

func (db *DB) ListCities(ctx context.Context) ([]models.City, error) {
	query := `
        SELECT id, name, name_slug, theme, vibe, created_at, updated_at
        FROM cities
        ORDER BY created_at DESC
    `

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.NameSlug, &c.Theme, &c.Vibe, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}

	return cities, rows.Err()
}

func (db *DB) GetCityByID(ctx context.Context, id string) (*models.City, error) {
	query := `
        SELECT id, name, name_slug, theme, vibe, created_at, updated_at
        FROM cities
        WHERE id = $1
    `

	var c models.City
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.NameSlug, &c.Theme, &c.Vibe, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCityNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (db *DB) UpdateCity(ctx context.Context, city *models.City) error {
	query := `
        UPDATE cities
        SET name = $2, name_slug = $3, theme = $4, vibe = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `

	err := db.Pool.QueryRow(ctx, query,
		city.ID, city.Name, city.NameSlug, city.Theme, city.Vibe,
	).Scan(&city.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrCityNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateCity
	}

	return err
}

func (db *DB) DeleteCity(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCityNotFound
	}
	return nil
}

package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/geocities-ai/backend/internal/models"
)

// LatestArtifact returns the freshest non-expired artifact for (city, kind),
// or nil if none exists. Expiry uses a strict comparison: a row exactly at
// its expiry timestamp is already stale.
func (db *DB) LatestArtifact(ctx context.Context, cityID, kind string) (*models.Artifact, error) {
	query := `
        SELECT id, city_id, kind, content, generated_at, expires_at
        FROM ai_generations
        WHERE city_id = $1 AND kind = $2 AND expires_at > NOW()
        ORDER BY expires_at DESC
        LIMIT 1
    `

	var a models.Artifact
	err := db.Pool.QueryRow(ctx, query, cityID, kind).Scan(
		&a.ID, &a.CityID, &a.Kind, &a.Content, &a.GeneratedAt, &a.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// InsertArtifact appends a new generation valid for 24 hours. Older rows for
// the same (city, kind) are left in place; reads resolve staleness by
// timestamp, so concurrent writers never coordinate.
func (db *DB) InsertArtifact(ctx context.Context, cityID, kind, content string) (*models.Artifact, error) {
	query := `
        INSERT INTO ai_generations (id, city_id, kind, content, generated_at, expires_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW() + INTERVAL '24 hours')
        RETURNING generated_at, expires_at
    `

	a := &models.Artifact{
		ID:      uuid.NewString(),
		CityID:  cityID,
		Kind:    kind,
		Content: content,
	}

	err := db.Pool.QueryRow(ctx, query, a.ID, cityID, kind, content).Scan(&a.GeneratedAt, &a.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return a, nil
}

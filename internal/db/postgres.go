package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	Pool *pgxpool.Pool
}

func NewDB(databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

// Init creates the schema if it does not exist yet.
func (db *DB) Init(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS cities (
            id         TEXT PRIMARY KEY,
            name       TEXT NOT NULL,
            name_slug  TEXT NOT NULL UNIQUE,
            theme      TEXT NOT NULL,
            vibe       TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );

        CREATE TABLE IF NOT EXISTS pages (
            id              TEXT PRIMARY KEY,
            city_id         TEXT NOT NULL REFERENCES cities(id) ON DELETE CASCADE,
            title           TEXT NOT NULL,
            title_slug      TEXT NOT NULL,
            type            TEXT NOT NULL,
            content_mode    TEXT NOT NULL,
            content_tag     TEXT NOT NULL,
            ai_confidence   DOUBLE PRECISION,
            original_prompt TEXT,
            content         TEXT NOT NULL,
            created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (city_id, title_slug)
        );
        CREATE INDEX IF NOT EXISTS idx_pages_city_created ON pages(city_id, created_at DESC);

        CREATE TABLE IF NOT EXISTS ai_generations (
            id           TEXT PRIMARY KEY,
            city_id      TEXT NOT NULL REFERENCES cities(id) ON DELETE CASCADE,
            kind         TEXT NOT NULL,
            content      TEXT NOT NULL,
            generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            expires_at   TIMESTAMPTZ NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_generations_lookup ON ai_generations(city_id, kind, expires_at DESC);
    `)
	return err
}

func (db *DB) Close() {
	db.Pool.Close()
}

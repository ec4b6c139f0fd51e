package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geocities-ai/backend/internal/models"
)

const pageColumns = `id, city_id, title, title_slug, type, content_mode, content_tag,
        ai_confidence, original_prompt, content, created_at, updated_at`

func scanPage(row pgx.Row) (*models.Page, error) {
	var p models.Page
	err := row.Scan(
		&p.ID, &p.CityID, &p.Title, &p.TitleSlug, &p.Type, &p.ContentMode,
		&p.ContentTag, &p.AIConfidence, &p.OriginalPrompt, &p.Content,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *DB) InsertPage(ctx context.Context, page *models.Page) error {
	page.ID = uuid.NewString()

	query := `
        INSERT INTO pages (id, city_id, title, title_slug, type, content_mode,
                           content_tag, ai_confidence, original_prompt, content)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at, updated_at
    `

	err := db.Pool.QueryRow(ctx, query,
		page.ID, page.CityID, page.Title, page.TitleSlug, page.Type,
		page.ContentMode, page.ContentTag, page.AIConfidence,
		page.OriginalPrompt, page.Content,
	).Scan(&page.CreatedAt, &page.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateTitle
	}

	return err
}

func (db *DB) GetPage(ctx context.Context, cityID, pageID string) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE city_id = $1 AND id = $2`

	page, err := scanPage(db.Pool.QueryRow(ctx, query, cityID, pageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrPageNotFound
	}
	return page, err
}

func (db *DB) ListPages(ctx context.Context, cityID string, limit int) ([]models.Page, error) {
	query := `
        SELECT ` + pageColumns + `
        FROM pages
        WHERE city_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	rows, err := db.Pool.Query(ctx, query, cityID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []models.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}

	return pages, rows.Err()
}

func (db *DB) CountPages(ctx context.Context, cityID string) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pages WHERE city_id = $1`, cityID).Scan(&count)
	return count, err
}

func (db *DB) PageSlugExists(ctx context.Context, cityID, titleSlug string) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pages WHERE city_id = $1 AND title_slug = $2)`,
		cityID, titleSlug,
	).Scan(&exists)
	return exists, err
}

// SetPageTag records the classification verdict for a page. A vanished page
// is not an error: the verdict is simply discarded.
func (db *DB) SetPageTag(ctx context.Context, cityID, pageID, tag string, confidence *float64) error {
	query := `
        UPDATE pages
        SET content_tag = $3, ai_confidence = $4, updated_at = NOW()
        WHERE city_id = $1 AND id = $2
    `

	_, err := db.Pool.Exec(ctx, query, cityID, pageID, tag, confidence)
	return err
}

func (db *DB) UpdatePage(ctx context.Context, page *models.Page) error {
	query := `
        UPDATE pages
        SET title = $3, title_slug = $4, original_prompt = $5, content = $6, updated_at = NOW()
        WHERE city_id = $1 AND id = $2
        RETURNING updated_at
    `

	err := db.Pool.QueryRow(ctx, query,
		page.CityID, page.ID, page.Title, page.TitleSlug, page.OriginalPrompt, page.Content,
	).Scan(&page.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrPageNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateTitle
	}

	return err
}

func (db *DB) DeletePage(ctx context.Context, cityID, pageID string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM pages WHERE city_id = $1 AND id = $2`, cityID, pageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPageNotFound
	}
	return nil
}

// RecentPageSummaries returns the newest pages trimmed down for prompt
// assembly, newest first.
func (db *DB) RecentPageSummaries(ctx context.Context, cityID string, limit int) ([]models.PageSummary, error) {
	query := `
        SELECT title, type, LEFT(content, 300)
        FROM pages
        WHERE city_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	rows, err := db.Pool.Query(ctx, query, cityID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.PageSummary{}
	for rows.Next() {
		var s models.PageSummary
		if err := rows.Scan(&s.Title, &s.Type, &s.Excerpt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

const portfolioColumns = `
	id, title, description, niche, video_url, thumbnail_url,
	is_published, display_order, created_at, updated_at`

type PortfolioRepository struct {
	DB *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (id, title, description, niche, video_url, thumbnail_url, is_published, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Niche,
		item.VideoURL,
		item.ThumbnailURL,
		item.IsPublished,
		item.DisplayOrder,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id string) (*entity.PortfolioItem, error) {
	query := `SELECT` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`

	var item entity.PortfolioItem
	err := scanPortfolioItem(r.DB.QueryRowContext(ctx, query, id), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) List(ctx context.Context, filter entity.PortfolioFilter) ([]entity.PortfolioItem, error) {
	query := `SELECT` + portfolioColumns + ` FROM portfolio_items WHERE 1=1`
	args := []any{}

	if filter.OnlyPublished {
		query += ` AND is_published`
	}
	if filter.Niche != "" {
		args = append(args, filter.Niche)
		query += ` AND LOWER(niche) = LOWER($1)`
	}
	query += ` ORDER BY display_order, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entity.PortfolioItem{}
	for rows.Next() {
		var item entity.PortfolioItem
		if err := scanPortfolioItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PortfolioRepository) Update(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, description = $3, niche = $4, video_url = $5,
			thumbnail_url = $6, is_published = $7, display_order = $8, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Niche,
		item.VideoURL,
		item.ThumbnailURL,
		item.IsPublished,
		item.DisplayOrder,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PortfolioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func scanPortfolioItem(row rowScanner, item *entity.PortfolioItem) error {
	return row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Niche,
		&item.VideoURL,
		&item.ThumbnailURL,
		&item.IsPublished,
		&item.DisplayOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

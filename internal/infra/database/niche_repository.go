package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

const nicheColumns = `
	id, name, slug, description, cover_image, display_order, is_active,
	created_at, updated_at`

type NicheRepository struct {
	DB *sql.DB
}

func NewNicheRepository(db *sql.DB) *NicheRepository {
	return &NicheRepository{DB: db}
}

func (r *NicheRepository) Create(ctx context.Context, niche *entity.Niche) error {
	query := `
		INSERT INTO niches (id, name, slug, description, cover_image, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		niche.ID,
		niche.Name,
		niche.Slug,
		niche.Description,
		niche.CoverImage,
		niche.DisplayOrder,
		niche.IsActive,
		niche.CreatedAt,
		niche.UpdatedAt,
	)
	return translateUniqueViolation(err, entity.ErrSlugTaken)
}

func (r *NicheRepository) FindByID(ctx context.Context, id string) (*entity.Niche, error) {
	query := `SELECT` + nicheColumns + ` FROM niches WHERE id = $1`

	var niche entity.Niche
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&niche.ID,
		&niche.Name,
		&niche.Slug,
		&niche.Description,
		&niche.CoverImage,
		&niche.DisplayOrder,
		&niche.IsActive,
		&niche.CreatedAt,
		&niche.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &niche, nil
}

func (r *NicheRepository) List(ctx context.Context, onlyActive bool) ([]entity.Niche, error) {
	query := `SELECT` + nicheColumns + ` FROM niches`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	niches := []entity.Niche{}
	for rows.Next() {
		var niche entity.Niche
		if err := rows.Scan(
			&niche.ID,
			&niche.Name,
			&niche.Slug,
			&niche.Description,
			&niche.CoverImage,
			&niche.DisplayOrder,
			&niche.IsActive,
			&niche.CreatedAt,
			&niche.UpdatedAt,
		); err != nil {
			return nil, err
		}
		niches = append(niches, niche)
	}
	return niches, rows.Err()
}

func (r *NicheRepository) Update(ctx context.Context, niche *entity.Niche) error {
	query := `
		UPDATE niches
		SET name = $2, slug = $3, description = $4, cover_image = $5,
			display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		niche.ID,
		niche.Name,
		niche.Slug,
		niche.Description,
		niche.CoverImage,
		niche.DisplayOrder,
		niche.IsActive,
	)
	if err != nil {
		return translateUniqueViolation(err, entity.ErrSlugTaken)
	}
	return requireAffected(result)
}

func (r *NicheRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM niches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// 23505 = unique_violation no Postgres.
func translateUniqueViolation(err error, domainErr error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domainErr
	}
	return err
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, logo_url, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.LogoURL,
		client.IsActive,
		client.DisplayOrder,
		client.CreatedAt,
		client.UpdatedAt,
	)
	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, name, logo_url, is_active, display_order, created_at, updated_at
		FROM clients WHERE id = $1
	`
	var client entity.Client
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.LogoURL,
		&client.IsActive,
		&client.DisplayOrder,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, onlyActive bool) ([]entity.Client, error) {
	query := `
		SELECT id, name, logo_url, is_active, display_order, created_at, updated_at
		FROM clients
	`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []entity.Client{}
	for rows.Next() {
		var client entity.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.LogoURL,
			&client.IsActive,
			&client.DisplayOrder,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, logo_url = $3, is_active = $4, display_order = $5, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.LogoURL,
		client.IsActive,
		client.DisplayOrder,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

package entity

import (
	"context"
	"time"
)

// Niche é um nicho de atuação do estúdio (casamento, eventos, marcas...).
// O slug identifica o nicho nos leads e no portfólio.
type Niche struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	CoverImage   *string   `json:"cover_image,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NicheRepositoryInterface interface {
	Create(ctx context.Context, niche *Niche) error
	FindByID(ctx context.Context, id string) (*Niche, error)
	List(ctx context.Context, onlyActive bool) ([]Niche, error)
	Update(ctx context.Context, niche *Niche) error
	Delete(ctx context.Context, id string) error
}

package entity

import (
	"context"
	"time"
)

type PortfolioItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Niche        string    `json:"niche"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PortfolioFilter struct {
	Niche         string
	OnlyPublished bool
}

type PortfolioRepositoryInterface interface {
	Create(ctx context.Context, item *PortfolioItem) error
	FindByID(ctx context.Context, id string) (*PortfolioItem, error)
	List(ctx context.Context, filter PortfolioFilter) ([]PortfolioItem, error)
	Update(ctx context.Context, item *PortfolioItem) error
	Delete(ctx context.Context, id string) error
}

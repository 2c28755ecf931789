package entity

import (
	"context"
	"time"
)

// Client é um logo de cliente exibido na vitrine do site.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context, onlyActive bool) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
}

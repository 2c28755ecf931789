package usecase

import (
	"context"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// Interfaces estreitas: cada use case declara só o que consome.

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error)
	UpdateDetails(ctx context.Context, id, status string, notes *string) (*entity.Lead, error)
}

// LeadEventProducerInterface publica eventos de ciclo de vida na fila.
// Falha de publicação nunca derruba a mutação que a originou.
type LeadEventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, event webhook.Event, lead *entity.Lead, previousStatus string) error
}

// LeadNotifierInterface avisa a equipe sobre leads novos (e-mail).
type LeadNotifierInterface interface {
	NotifyNewLead(lead *entity.Lead) error
}

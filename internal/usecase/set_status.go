package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// SetLeadStatusUseCase move um lead entre colunas do funil.
// Qualquer status pode virar qualquer outro: a ordem das colunas é só
// exibição, não uma progressão obrigatória.
type SetLeadStatusUseCase struct {
	Repo     LeadRepositoryInterface
	Producer LeadEventProducerInterface
}

func NewSetLeadStatusUseCase(
	repo LeadRepositoryInterface,
	producer LeadEventProducerInterface,
) *SetLeadStatusUseCase {
	return &SetLeadStatusUseCase{Repo: repo, Producer: producer}
}

func (uc *SetLeadStatusUseCase) Execute(ctx context.Context, leadID, newStatus string) (*entity.Lead, error) {
	if !entity.IsValidLeadStatus(newStatus) {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "status inválido: " + newStatus,
		}
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, NotFoundError("lead")
		}
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "erro ao buscar lead: " + err.Error(),
		}
	}

	// O status anterior precisa ser capturado aqui: depois do UPDATE
	// o valor antigo não existe mais.
	previous := lead.CurrentStatus()
	if previous == newStatus {
		// No-op: sem escrita e, principalmente, sem evento.
		return lead, nil
	}

	updated, err := uc.Repo.UpdateStatus(ctx, leadID, newStatus)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, NotFoundError("lead")
		}
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "erro ao atualizar status: " + err.Error(),
		}
	}

	if err := uc.Producer.PublishLeadEvent(ctx, webhook.EventStatusChanged, updated, previous); err != nil {
		log.Printf("⚠️ [LEAD] Falha ao publicar status_changed para %s: %v", leadID, err)
	}

	return updated, nil
}

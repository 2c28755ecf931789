package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// UpdateLeadUseCase é a edição de staff na tela de detalhe do lead:
// status + anotações numa escrita só. Emite lead_updated sempre e
// status_changed quando a edição também mudou o status.
type UpdateLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Producer LeadEventProducerInterface
}

func NewUpdateLeadUseCase(
	repo LeadRepositoryInterface,
	producer LeadEventProducerInterface,
) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo, Producer: producer}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, leadID string, input UpdateLeadInput) (*entity.Lead, error) {
	if !entity.IsValidLeadStatus(input.Status) {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "status inválido: " + input.Status,
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

	previous := lead.CurrentStatus()

	updated, err := uc.Repo.UpdateDetails(ctx, leadID, input.Status, input.Notes)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, NotFoundError("lead")
		}
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "erro ao atualizar lead: " + err.Error(),
		}
	}

	if err := uc.Producer.PublishLeadEvent(ctx, webhook.EventLeadUpdated, updated, ""); err != nil {
		log.Printf("⚠️ [LEAD] Falha ao publicar lead_updated para %s: %v", leadID, err)
	}

	if previous != input.Status {
		if err := uc.Producer.PublishLeadEvent(ctx, webhook.EventStatusChanged, updated, previous); err != nil {
			log.Printf("⚠️ [LEAD] Falha ao publicar status_changed para %s: %v", leadID, err)
		}
	}

	return updated, nil
}

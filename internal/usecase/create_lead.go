package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

type CreateLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Producer LeadEventProducerInterface
	Notifier LeadNotifierInterface
}

func NewCreateLeadUseCase(
	repo LeadRepositoryInterface,
	producer LeadEventProducerInterface,
	notifier LeadNotifierInterface,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:     repo,
		Producer: producer,
		Notifier: notifier,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	consent := input.Consent

	lead := &entity.Lead{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       input.Phone,
		PhoneE164:   optional(NormalizePhoneE164(input.Phone)),
		Niche:       input.Niche,
		City:        optional(input.City),
		Message:     strings.TrimSpace(input.Message),
		Status:      entity.StatusNew,
		SourcePage:  optional(input.SourcePage),
		UTMSource:   optional(input.UTMSource),
		UTMMedium:   optional(input.UTMMedium),
		UTMCampaign: optional(input.UTMCampaign),
		UTMContent:  optional(input.UTMContent),
		UTMTerm:     optional(input.UTMTerm),
		Consent:     &consent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "erro ao salvar lead: " + err.Error(),
		}
	}

	// Notificação é best effort: o lead já está salvo.
	if err := uc.Producer.PublishLeadEvent(ctx, webhook.EventLeadCreated, lead, ""); err != nil {
		log.Printf("⚠️ [LEAD] Falha ao publicar lead_created para %s: %v", lead.ID, err)
	}

	if uc.Notifier != nil {
		go func(l entity.Lead) {
			if err := uc.Notifier.NotifyNewLead(&l); err != nil {
				log.Printf("⚠️ [LEAD] Falha ao enviar e-mail de novo lead: %v", err)
			}
		}(*lead)
	}

	return lead, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

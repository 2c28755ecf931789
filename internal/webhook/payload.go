package webhook

import (
	"time"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

// Event é um evento do ciclo de vida de um lead.
type Event string

const (
	EventLeadCreated   Event = "lead_created"
	EventLeadUpdated   Event = "lead_updated"
	EventStatusChanged Event = "status_changed"
	EventTest          Event = "test"
)

// Source identifica o remetente no corpo do webhook.
const Source = "blackboy_films"

// LeadSnapshot é a foto do lead enviada no webhook. Campos opcionais
// saem como null explícito no JSON (sem omitempty): o destino conta
// com todas as chaves presentes.
type LeadSnapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	PhoneE164   *string `json:"phone_e164"`
	Niche       string  `json:"niche"`
	City        *string `json:"city"`
	Message     string  `json:"message"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	SourcePage  *string `json:"source_page"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
	Consent     *bool   `json:"consent"`
	CreatedAt   string  `json:"created_at"`
}

type Payload struct {
	Event          Event        `json:"event"`
	Timestamp      string       `json:"timestamp"`
	Source         string       `json:"source"`
	Data           LeadSnapshot `json:"data"`
	PreviousStatus string       `json:"previous_status,omitempty"`
}

func Snapshot(lead *entity.Lead) LeadSnapshot {
	var status *string
	if lead.Status != "" {
		s := lead.Status
		status = &s
	}
	return LeadSnapshot{
		ID:          lead.ID,
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		PhoneE164:   lead.PhoneE164,
		Niche:       lead.Niche,
		City:        lead.City,
		Message:     lead.Message,
		Status:      status,
		Notes:       lead.Notes,
		SourcePage:  lead.SourcePage,
		UTMSource:   lead.UTMSource,
		UTMMedium:   lead.UTMMedium,
		UTMCampaign: lead.UTMCampaign,
		UTMContent:  lead.UTMContent,
		UTMTerm:     lead.UTMTerm,
		Consent:     lead.Consent,
		CreatedAt:   lead.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewPayload monta o corpo do POST. previous_status só entra quando o
// evento é status_changed e um status anterior foi informado.
func NewPayload(event Event, lead *entity.Lead, previousStatus string, now time.Time) Payload {
	p := Payload{
		Event:     event,
		Timestamp: now.UTC().Format(time.RFC3339),
		Source:    Source,
		Data:      Snapshot(lead),
	}
	if event == EventStatusChanged && previousStatus != "" {
		p.PreviousStatus = previousStatus
	}
	return p
}
